package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fgcplatform/identity/internal/interface/http"
	"github.com/fgcplatform/identity/internal/interface/middleware"
	"github.com/fgcplatform/identity/pkg/helpers"
)

// UserModule wires the authenticated profile routes.
// Protected: GET /api/profile
// Admin: GET /api/users/search
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenService
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenService) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.GET("/profile", m.Handler.GetProfile)

		admin := auth.Group("/")
		admin.Use(middleware.RequireAdmin())
		admin.GET("/users/search", m.Handler.Search)
	}
}
