package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightsmile/clinic-api/internal/container"
	handlers "github.com/brightsmile/clinic-api/internal/interface/http"
	"github.com/brightsmile/clinic-api/internal/interface/middleware"
)

// AccountModule wires registration and login with per-IP rate limits on the
// credential endpoints. Private addresses bypass the limiter.
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	allowLocal := middleware.AllowPrivateIP()
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), allowLocal)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), allowLocal)

	rg.POST("/user", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
