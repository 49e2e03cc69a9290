package jobsearch

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the search client.
type Handler struct {
	Client *Client
}

// NewHandler constructs a Handler.
func NewHandler(client *Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches job search routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/search", h.search)
}

type searchRequest struct {
	Role string `json:"role"`
	City string `json:"city"`
	Page int    `json:"page"`
}

func (h *Handler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Role) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "role is required", nil)
		return
	}

	jobs, err := h.Client.Search(c.Request.Context(), req.Role, req.City, req.Page)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "not_configured", "job search is not configured", nil)
		case errors.Is(err, ErrUpstream):
			respond.Error(c, http.StatusBadGateway, "upstream_error", "job search provider is unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "job search failed", nil)
		}
		return
	}

	respond.OK(c, gin.H{"jobs": jobs})
}
