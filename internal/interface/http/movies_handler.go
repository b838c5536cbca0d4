package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/h0m10/citypulse-api/internal/domain/movies"
)

const defaultMoviesLang = "es-ES"

// MovieSearch searches movies by title.
func (h *Handler) MovieSearch(c *gin.Context) {
	resp, err := h.moviesSvc.Search(c.Request.Context(), movies.SearchQuery{
		Query: c.Param("query"),
		Page:  queryPositiveInt(c, "page", 1),
		Lang:  queryString(c, "lang", defaultMoviesLang),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MoviePopular pages through the popular list.
func (h *Handler) MoviePopular(c *gin.Context) {
	resp, err := h.moviesSvc.Popular(c.Request.Context(), movies.PopularQuery{
		Page: queryPositiveInt(c, "page", 1),
		Lang: queryString(c, "lang", defaultMoviesLang),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MovieDetail serves a movie with its cast and trailer.
func (h *Handler) MovieDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_movie_id", "Identificador de película inválido", "el id debe ser un entero positivo", err))
		return
	}
	resp, err := h.moviesSvc.Detail(c.Request.Context(), movies.DetailQuery{
		ID:   id,
		Lang: queryString(c, "lang", defaultMoviesLang),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}
