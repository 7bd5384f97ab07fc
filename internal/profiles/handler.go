package profiles

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"growthplan-backend/internal/shared/server/middleware"
	"growthplan-backend/internal/shared/server/respond"
	"growthplan-backend/plan/model"
)

// Handler wires HTTP handlers to the profiles service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles", h.createProfile)
	rg.GET("/profiles", h.listProfiles)
	rg.GET("/profiles/current", h.currentProfile)
	rg.GET("/profiles/:id", h.getProfile)
}

func (h *Handler) currentProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no profile submitted yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, rec)
}

func (h *Handler) createProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var profile model.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid profile payload", nil)
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), userID, profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "workMode must be one of salon-only, hybrid, private-only", []map[string]string{
				{"field": "workMode", "issue": "invalid"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		}
		return
	}

	c.Set("profileId", rec.ID)
	respond.Created(c, rec)
}

func (h *Handler) getProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profileID := c.Param("id")
	if profileID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "profile id is required", nil)
		return
	}

	rec, err := h.Svc.Get(c.Request.Context(), userID, profileID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "profile id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, rec)
}

func (h *Handler) listProfiles(c *gin.Context) {
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

	recs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list profiles", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"profiles": recs})
}
