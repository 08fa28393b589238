package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medcore/hospital-api/internal/middleware"
	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/internal/service/admin"
	"github.com/medcore/hospital-api/pkg/httputil"
)

type Handler struct {
	svc *admin.Service
}

func NewHandler(svc *admin.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	group := r.Group("/admin", auth.Authenticate(), auth.RequireRole(model.RoleAdmin))
	{
		group.POST("/doctor", h.CreateDoctor)
		group.GET("/stats", h.Stats)
		group.GET("/doctors", h.Doctors)
		group.GET("/patients", h.Patients)
		group.GET("/activity", h.Activity)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.Message{Message: err.Error()})
		return
	}

	user, err := h.svc.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "message": "Doctor created successfully"})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Doctors(c *gin.Context) {
	doctors, err := h.svc.Doctors(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) Patients(c *gin.Context) {
	patients, err := h.svc.Patients(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, patients)
}

func (h *Handler) Activity(c *gin.Context) {
	entries, err := h.svc.Activity(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
