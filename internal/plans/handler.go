package plans

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"growthplan-backend/internal/profiles"
	"growthplan-backend/internal/shared/server/middleware"
	"growthplan-backend/internal/shared/server/respond"
)

const maxDocumentBytes = 20 << 20

// Handler wires HTTP handlers to the plans service.
type Handler struct {
	Svc         *Service
	ProfileRepo profiles.Repo
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, profileRepo profiles.Repo) *Handler {
	return &Handler{Svc: svc, ProfileRepo: profileRepo}
}

// RegisterRoutes attaches plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/plans", h.createPlan)
	rg.GET("/plans", h.listPlans)
	rg.GET("/plans/:id", h.getPlan)
	rg.GET("/plans/:id/pages", h.getPages)
	rg.PUT("/plans/:id/document", h.attachDocument)
	rg.GET("/plans/:id/download", h.download)
}

type createPlanRequest struct {
	ProfileID string `json:"profileId"`
}

func (h *Handler) createPlan(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProfileID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "profileId is required", nil)
		return
	}

	if _, err := h.ProfileRepo.GetByID(c.Request.Context(), userID, req.ProfileID); err != nil {
		switch {
		case errors.Is(err, profiles.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start plan", nil)
		}
		return
	}

	plan, err := h.Svc.Create(c.Request.Context(), userID, req.ProfileID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start plan", nil)
		return
	}

	c.Set("planId", plan.ID)
	c.Set("profileId", plan.ProfileID)
	c.Set("statusTransition", "->"+plan.Status)

	respond.Accepted(c, gin.H{
		"planId": plan.ID,
		"status": plan.Status,
	})
}

func (h *Handler) getPlan(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	planID := c.Param("id")
	if planID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "plan id is required", nil)
		return
	}

	plan, err := h.Svc.Get(c.Request.Context(), userID, planID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "plan not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch plan", nil)
		}
		return
	}

	resp := gin.H{
		"id":        plan.ID,
		"profileId": plan.ProfileID,
		"status":    plan.Status,
		"createdAt": plan.CreatedAt,
	}
	if plan.Status == StatusCompleted {
		resp["scenario"] = plan.Scenario
		resp["steps"] = plan.Steps
		resp["pageCount"] = plan.PageCount
		if plan.DocumentPages > 0 {
			resp["documentPages"] = plan.DocumentPages
		}
	}
	if plan.Status == StatusFailed && plan.ErrorCode != "" {
		resp["errorCode"] = plan.ErrorCode
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) getPages(c *gin.Context) {
	// The rasterizer pulls pages with the render key before delivering
	// the PDF back.
	userID := middleware.UserIDFromContext(c)
	if middleware.IsRenderer(c) {
		userID = ""
	}
	planID := c.Param("id")
	if planID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "plan id is required", nil)
		return
	}

	pages, err := h.Svc.Pages(c.Request.Context(), userID, planID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "plan not found", nil)
		case errors.Is(err, ErrNotCompleted):
			respond.Error(c, http.StatusConflict, "not_ready", "plan is not completed yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch pages", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"planId":    planID,
		"pageCount": len(pages),
		"pages":     pages,
	})
}

func (h *Handler) attachDocument(c *gin.Context) {
	// The rasterizer authenticates with the shared render key and may
	// deliver documents for any plan; users only for their own.
	userID := middleware.UserIDFromContext(c)
	if middleware.IsRenderer(c) {
		userID = ""
	}
	planID := c.Param("id")
	if planID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "plan id is required", nil)
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentBytes)
	plan, err := h.Svc.AttachDocument(c.Request.Context(), userID, planID, body)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "plan not found", nil)
		case errors.Is(err, ErrNotCompleted):
			respond.Error(c, http.StatusConflict, "not_ready", "plan is not completed yet", nil)
		case errors.Is(err, ErrInvalidDocument):
			respond.Error(c, http.StatusBadRequest, "invalid_document", "body is not a readable PDF", nil)
		case errors.Is(err, ErrPageCountMismatch):
			respond.Error(c, http.StatusUnprocessableEntity, "page_count_mismatch", "document page count does not match the plan", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to attach document", nil)
		}
		return
	}

	c.Set("planId", plan.ID)
	respond.JSON(c, http.StatusOK, gin.H{
		"planId":        plan.ID,
		"documentPages": plan.DocumentPages,
	})
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	planID := c.Param("id")
	if planID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "plan id is required", nil)
		return
	}

	rc, plan, err := h.Svc.OpenDocument(c.Request.Context(), userID, planID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "plan not found", nil)
		case errors.Is(err, ErrNoDocument):
			respond.Error(c, http.StatusConflict, "not_ready", "document is not attached yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to download document", nil)
		}
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="plan-`+plan.ID+`.pdf"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) listPlans(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list plans", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"plans": list})
}
