package handler

import (
	"net/http"
	"strconv"

	"wedding-rsvp/internal/model"
	"wedding-rsvp/internal/service"
	apperrors "wedding-rsvp/pkg/app_errors"
	"wedding-rsvp/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RSVPHandler struct {
	service service.RSVPService
}

func NewRSVPHandler(service service.RSVPService) *RSVPHandler {
	return &RSVPHandler{service: service}
}

func (h *RSVPHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/rsvp", h.Create)
	r.GET("/rsvp", h.List)
	r.GET("/rsvp/:id", h.GetByID)
	r.PUT("/rsvp/:id", h.Update)
	r.DELETE("/rsvp/:id", h.Delete)
	r.GET("/stats", h.Stats)
}

func (h *RSVPHandler) Create(c *gin.Context) {
	var req model.CreateRSVPRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if req.Name == "" || req.Email == "" || req.Attendance == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and attendance are required"})
		return
	}
	if !req.Attendance.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attendance must be yes, no, or maybe"})
		return
	}

	created, err := h.service.Create(c, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RSVPHandler) List(c *gin.Context) {
	rsvps, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, rsvps)
}

func (h *RSVPHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rsvp, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, rsvp)
}

func (h *RSVPHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateRSVPRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Attendance != nil && !req.Attendance.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attendance must be yes, no, or maybe"})
		return
	}

	params := model.UpdateRSVPParams{
		Name:                req.Name,
		Email:               req.Email,
		Attendance:          req.Attendance,
		GuestCount:          req.GuestCount,
		DietaryRestrictions: req.DietaryRestrictions,
		Message:             req.Message,
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RSVPHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "RSVP deleted successfully"})
}

func (h *RSVPHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c)
	if err != nil {
		h.handleError(c, err, "Stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}

func (h *RSVPHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrRSVPNotFound:
		log.Warn("RSVP not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "RSVP not found"})
	case err == apperrors.ErrInvalidAttendance:
		log.Warn("Invalid attendance")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Attendance must be yes, no, or maybe"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case err == apperrors.ErrSchemaMissing:
		// Startup runs EnsureSchema, so this only happens if the table
		// is dropped at runtime. POST /init-db restores it.
		log.Error("Schema missing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
