package plans

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jumpshot-backend/internal/catalog"
	"jumpshot-backend/internal/shared/server/respond"
	"jumpshot-backend/internal/shared/util"
)

// Handler wires HTTP handlers to the plans service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/plans", h.generatePlan)
	rg.GET("/plans", h.listPlans)
	rg.GET("/plans/:id", h.getPlan)
	rg.POST("/analyses", h.analyze)
	rg.GET("/videos", h.listVideos)
}

func (h *Handler) generatePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	playerName, err := util.SanitizePlayerName(req.PlayerName)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "player name contains invalid characters", []map[string]string{
			{"field": "playerName", "issue": "invalid"},
		})
		return
	}

	opts := GenerateOptions{IncludeRelatedIssues: req.IncludeRelatedIssues}
	plan, err := h.Svc.Generate(c.Request.Context(), playerName, req.Issues, req.SkillLevel, opts)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "describe at least one shooting issue", []map[string]string{
				{"field": "issues", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate plan", nil)
		}
		return
	}

	c.Set("planId", plan.ID)
	respond.JSON(c, http.StatusCreated, plan)
}

func (h *Handler) getPlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "plan id is required", nil)
		return
	}

	plan, err := h.Svc.Get(c.Request.Context(), planID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "plan not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch plan", nil)
		}
		return
	}

	respond.OK(c, plan)
}

func (h *Handler) listPlans(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	plans, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list plans", nil)
		return
	}

	respond.OK(c, gin.H{
		"plans":  plans,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	identified, related, details, err := h.Svc.Analyze(req.Issues)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "describe at least one shooting issue", []map[string]string{
				{"field": "issues", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze issues", nil)
		}
		return
	}

	respond.OK(c, AnalyzeResponse{
		Issues:        issueViews(identified, details),
		RelatedIssues: issueViews(related, nil),
	})
}

func (h *Handler) listVideos(c *gin.Context) {
	cat := h.Svc.Generator.Catalog
	videos := cat.Videos()
	if raw := c.Query("level"); raw != "" {
		videos = cat.VideosForLevel(catalog.NormalizeSkillLevel(raw))
	}
	respond.OK(c, gin.H{
		"videos": videos,
		"count":  len(videos),
	})
}

func issueViews(issues []catalog.Issue, details map[string]string) []IssueView {
	views := make([]IssueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, IssueView{
			ID:          issue.ID,
			Name:        issue.Name,
			Description: issue.Description,
			Detail:      details[issue.ID],
		})
	}
	return views
}
