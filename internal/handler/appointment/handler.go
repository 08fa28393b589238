package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medcore/hospital-api/internal/middleware"
	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/internal/service/appointment"
	"github.com/medcore/hospital-api/pkg/apperror"
	"github.com/medcore/hospital-api/pkg/httputil"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	group := r.Group("/appointments", auth.Authenticate(), auth.RequireRole(model.RolePatient))
	{
		group.POST("", h.Book)
		group.GET("/my", h.ListMine)
		group.GET("/profile", h.Profile)
		group.PUT("/profile", h.UpdateProfile)
	}
}

func (h *Handler) Book(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httputil.Message{Message: "unauthenticated"})
		return
	}

	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.Message{Message: err.Error()})
		return
	}

	booked, err := h.svc.Book(c.Request.Context(), identity.UserID, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": booked.ID, "message": "Appointment booked"})
}

func (h *Handler) ListMine(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httputil.Message{Message: "unauthenticated"})
		return
	}

	views, err := h.svc.ListMine(c.Request.Context(), identity.UserID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code != apperror.CodeInternal {
			httputil.Error(c, err)
			return
		}
		// Development helper: this endpoint exposes the underlying
		// error so the client can show details on fetch failures.
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch appointments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *Handler) Profile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httputil.Message{Message: "unauthenticated"})
		return
	}

	view, err := h.svc.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httputil.Message{Message: "unauthenticated"})
		return
	}

	var req model.UpdatePatientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.Message{Message: err.Error()})
		return
	}

	result, err := h.svc.UpdateProfile(c.Request.Context(), identity.UserID, &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "applied": result.Applied})
}
