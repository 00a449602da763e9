package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fgcplatform/identity/internal/interface/http"
	"github.com/fgcplatform/identity/internal/interface/middleware"
	"github.com/fgcplatform/identity/pkg/helpers"
)

// AdminModule wires admin-only user management under /api/admin.
type AdminModule struct {
	Handler *handlers.AdminHandler
	Tokens  *helpers.TokenService
}

func NewAdminModule(h *handlers.AdminHandler, tokens *helpers.TokenService) *AdminModule {
	return &AdminModule{Handler: h, Tokens: tokens}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.Tokens), middleware.RequireAdmin())
	{
		admin.POST("/users", m.Handler.CreateAdmin)
		admin.POST("/users/:id/promote", m.Handler.Promote)
		admin.POST("/users/:id/demote", m.Handler.Demote)
		admin.POST("/users/:id/deactivate", m.Handler.Deactivate)
		admin.POST("/users/:id/reactivate", m.Handler.Reactivate)
	}
}
