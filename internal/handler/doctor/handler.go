package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medcore/hospital-api/internal/middleware"
	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/internal/service/doctor"
	"github.com/medcore/hospital-api/pkg/httputil"
)

type Handler struct {
	svc *doctor.Service
}

func NewHandler(svc *doctor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	group := r.Group("/doctor", auth.Authenticate())
	{
		// Patients browse the directory to pick a doctor; admins use it
		// for management.
		group.GET("/list", auth.RequireRole(model.RolePatient, model.RoleAdmin), h.List)

		doctorOnly := group.Group("", auth.RequireRole(model.RoleDoctor))
		{
			doctorOnly.GET("/appointments", h.Appointments)
			doctorOnly.POST("/prescription", h.AttachPrescription)
			doctorOnly.GET("/profile", h.Profile)
			doctorOnly.PUT("/profile", h.UpdateProfile)
		}
	}
}

func (h *Handler) Appointments(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httputil.Message{Message: "unauthenticated"})
		return
	}

	views, err := h.svc.Appointments(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *Handler) AttachPrescription(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httputil.Message{Message: "unauthenticated"})
		return
	}

	var req model.AttachPrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.Message{Message: err.Error()})
		return
	}

	if err := h.svc.AttachPrescription(c.Request.Context(), identity.UserID, &req); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, httputil.Message{Message: "Prescription added"})
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

	var req model.UpdateDoctorProfileRequest
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

func (h *Handler) List(c *gin.Context) {
	doctors, err := h.svc.Directory(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doctors)
}
