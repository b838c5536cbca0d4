package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordUpstreamLabelsTransportFailures(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("testprov", "error"))
	RecordUpstream("testprov", 0, time.Millisecond)
	RecordUpstream("testprov", 404, time.Millisecond)

	require.Equal(t, before+1, testutil.ToFloat64(UpstreamRequests.WithLabelValues("testprov", "error")))
	require.Equal(t, 1.0, testutil.ToFloat64(UpstreamRequests.WithLabelValues("testprov", "404")))
}

func TestRecordHTTPRequestUnmatchedRoute(t *testing.T) {
	RecordHTTPRequest("GET", "", 404, time.Millisecond)
	require.GreaterOrEqual(t, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "unmatched", "404")), 1.0)
}
