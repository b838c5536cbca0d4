package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h0m10/citypulse-api/internal/domain/github"
)

// GitHubUsers searches developers by location and enriches their profiles.
func (h *Handler) GitHubUsers(c *gin.Context) {
	resp, err := h.githubSvc.SearchUsers(c.Request.Context(), github.SearchQuery{
		Location: c.Param("location"),
		Sort:     queryString(c, "sort", "followers"),
		Page:     queryPositiveInt(c, "page", 1),
		PerPage:  queryPerPage(c, 12),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GitHubRepos searches repositories that mention a location.
func (h *Handler) GitHubRepos(c *gin.Context) {
	resp, err := h.githubSvc.SearchRepos(c.Request.Context(), github.SearchQuery{
		Location: c.Param("location"),
		Sort:     queryString(c, "sort", "stars"),
		Page:     queryPositiveInt(c, "page", 1),
		PerPage:  queryPerPage(c, 10),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GitHubUser serves a single developer profile.
func (h *Handler) GitHubUser(c *gin.Context) {
	resp, err := h.githubSvc.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}
