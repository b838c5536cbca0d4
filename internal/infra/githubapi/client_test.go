package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/h0m10/citypulse-api/internal/domain/github"
	"github.com/h0m10/citypulse-api/pkg/upstream"
)

func TestSearchUsersSendsHeadersAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/users", r.URL.Path)
		require.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		require.Equal(t, "token abc", r.Header.Get("Authorization"))
		require.Equal(t, "citypulse-test", r.Header.Get("User-Agent"))
		q := r.URL.Query()
		require.Equal(t, "location:Tokyo", q.Get("q"))
		require.Equal(t, "followers", q.Get("sort"))
		require.Equal(t, "desc", q.Get("order"))
		require.Equal(t, "1", q.Get("page"))
		require.Equal(t, "12", q.Get("per_page"))
		fmt.Fprint(w, `{"total_count":1,"items":[{"id":9,"login":"octo","avatar_url":"a","html_url":"h"}]}`)
	}))
	defer srv.Close()

	client := NewClient("abc", srv.URL, "citypulse-test", time.Second)
	out, err := client.SearchUsers(context.Background(), github.SearchParams{Query: "location:Tokyo", Sort: "followers", Order: "desc", Page: 1, PerPage: 12})
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalCount)
	require.Equal(t, "octo", out.Items[0].Login)
}

func TestClientWithoutTokenOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		require.Equal(t, "/users/octo", r.URL.Path)
		fmt.Fprint(w, `{"id":9,"login":"octo","name":null,"bio":"hi","public_gists":2}`)
	}))
	defer srv.Close()

	client := NewClient("", srv.URL, "", time.Second)
	user, err := client.GetUser(context.Background(), "octo")
	require.NoError(t, err)
	require.Nil(t, user.Name)
	require.NotNil(t, user.Bio)
	require.Equal(t, "hi", *user.Bio)
	require.Equal(t, 2, user.PublicGists)
}

func TestSearchRepositoriesDecodesNullableFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/repositories", r.URL.Path)
		require.Equal(t, "Madrid in:description,readme", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"total_count":1,"items":[{"id":1,"name":"r","description":null,"language":"Go","topics":["x"],"owner":{"login":"o","avatar_url":"av"}}]}`)
	}))
	defer srv.Close()

	client := NewClient("", srv.URL, "", time.Second)
	out, err := client.SearchRepositories(context.Background(), github.SearchParams{Query: "Madrid in:description,readme"})
	require.NoError(t, err)
	require.Nil(t, out.Items[0].Description)
	require.Equal(t, "Go", *out.Items[0].Language)
	require.Equal(t, "o", out.Items[0].Owner.Login)
}

func TestGetUserForwardsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found","documentation_url":"https://docs.github.com"}`)
	}))
	defer srv.Close()

	client := NewClient("", srv.URL, "", time.Second)
	_, err := client.GetUser(context.Background(), "nobody")
	require.Equal(t, http.StatusNotFound, upstream.StatusOf(err))
	require.Equal(t, "Not Found", upstream.DetailOf(err))
}
