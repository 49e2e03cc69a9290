package roles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/shared/server/middleware"
	"careerpilot-backend/internal/shared/server/respond"
)

// Handler exposes the latest suggested-role set.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches role routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roles", h.get)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	set, err := h.Repo.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.OK(c, gin.H{"suggestedRoles": []string{}})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch roles", nil)
		return
	}

	respond.OK(c, gin.H{"suggestedRoles": set.Roles, "updatedAt": set.UpdatedAt})
}
