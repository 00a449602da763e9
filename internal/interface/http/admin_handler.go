package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/fgcplatform/identity/internal/application"
	"github.com/fgcplatform/identity/internal/interface/middleware"
	"github.com/fgcplatform/identity/pkg/response"
	"github.com/fgcplatform/identity/pkg/validation"
)

// AdminHandler exposes the admin-only operations. The acting admin is the
// authenticated caller; the use cases re-verify it against storage.
type AdminHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewAdminHandler(svc *userapp.Service, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type createAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,max=100"`
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	uid, err := uuid.Parse(c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "invalid token subject", nil)
		return uuid.Nil, false
	}
	return uid, true
}

func targetID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid user id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// CreateAdmin POST /api/admin/users
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.CreateAdmin(c.Request.Context(), actor, req.Email, req.Password, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "admin created")
}

// Promote POST /api/admin/users/:id/promote
func (h *AdminHandler) Promote(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	target, ok := targetID(c)
	if !ok {
		return
	}
	p, err := h.Svc.PromoteToAdmin(c.Request.Context(), actor, target)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "user promoted to admin")
}

// Demote POST /api/admin/users/:id/demote
func (h *AdminHandler) Demote(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	target, ok := targetID(c)
	if !ok {
		return
	}
	p, err := h.Svc.DemoteToUser(c.Request.Context(), actor, target)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "admin demoted to user")
}

// Deactivate POST /api/admin/users/:id/deactivate
func (h *AdminHandler) Deactivate(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	target, ok := targetID(c)
	if !ok {
		return
	}
	p, err := h.Svc.DeactivateUser(c.Request.Context(), actor, target)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "user deactivated")
}

// Reactivate POST /api/admin/users/:id/reactivate
func (h *AdminHandler) Reactivate(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	target, ok := targetID(c)
	if !ok {
		return
	}
	p, err := h.Svc.ReactivateUser(c.Request.Context(), actor, target)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "user reactivated")
}
