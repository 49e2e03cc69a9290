package analysis

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/llm"
	"careerpilot-backend/internal/shared/server/middleware"
	"careerpilot-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/analyze", h.analyze)
	rg.POST("/resumes/:id/ats", h.ats)
	rg.POST("/cover-letter", h.coverLetter)
}

type coverLetterRequest struct {
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	roleList, err := h.Svc.AnalyzeRoles(c.Request.Context(), userID, resumeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	respond.OK(c, gin.H{"suggestedRoles": roleList})
}

func (h *Handler) ats(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	report, err := h.Svc.ScoreATS(c.Request.Context(), userID, resumeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	respond.OK(c, report)
}

func (h *Handler) coverLetter(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req coverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.Company = strings.TrimSpace(req.Company)
	if req.JobTitle == "" || req.Company == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobTitle and company are required", nil)
		return
	}

	letter, err := h.Svc.GenerateCoverLetter(c.Request.Context(), userID, req.JobTitle, req.Company, req.JobDescription)
	if err != nil {
		h.writeError(c, err)
		return
	}

	respond.OK(c, gin.H{"coverLetter": letter})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDocumentUnavailable):
		respond.Error(c, http.StatusBadRequest, CodeDocumentUnavailable, "resume is not available; please upload it again", nil)
	case errors.Is(err, ErrNoDocument):
		respond.Error(c, http.StatusNotFound, CodeNoDocument, "no resume found; please upload one first", nil)
	case errors.Is(err, ErrAnalysisFailed):
		respond.Error(c, http.StatusBadGateway, CodeAnalysisFailed, "analysis response could not be interpreted", nil)
	case errors.Is(err, llm.ErrUpstream), errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusBadGateway, CodeUpstreamError, "generative service is unavailable", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
	}
}
