package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fgcplatform/identity/internal/interface/http"
	"github.com/fgcplatform/identity/internal/interface/middleware"
	"github.com/fgcplatform/identity/pkg/helpers"
)

// AuthModule wires registration, login, and password change.
// Public: POST /api/register, POST /api/login
// Protected: PUT /api/password
type AuthModule struct {
	Handler *handlers.AuthHandler
	Tokens  *helpers.TokenService
}

func NewAuthModule(h *handlers.AuthHandler, tokens *helpers.TokenService) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tokens}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.PUT("/password", m.Handler.ChangePassword)
	}
}
