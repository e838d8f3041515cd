package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brightsmile/clinic-api/pkg/helpers"
	"github.com/brightsmile/clinic-api/pkg/response"
)

// Context keys populated by Auth on success.
const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
	CtxClaimsKey = "claims"
)

// Auth gates protected routes on a Bearer token in the Authorization header.
// A missing header and an invalid token both answer 400; the verification
// error itself is only logged, never sent to the client.
func Auth(jwt *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusBadRequest, "login required to access this route")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" || token == header {
			response.Abort(c, http.StatusBadRequest, "invalid access token")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			if logger != nil {
				logger.WithError(err).Debug("token verification failed")
			}
			response.Abort(c, http.StatusBadRequest, "invalid access token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxEmailKey, claims.Email)
		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}
