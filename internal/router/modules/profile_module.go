package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightsmile/clinic-api/internal/container"
	handlers "github.com/brightsmile/clinic-api/internal/interface/http"
	"github.com/brightsmile/clinic-api/internal/interface/middleware"
	"github.com/brightsmile/clinic-api/pkg/helpers"
)

// ProfileModule wires the token-gated routes behind the Bearer auth
// middleware, with a soft per-user limiter.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetLogger()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/profile", m.Handler.Profile)
		auth.GET("/payment", m.Handler.Payment)
	}
}
