package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightsmile/clinic-api/internal/interface/middleware"
	"github.com/brightsmile/clinic-api/pkg/helpers"
)

// ProfileHandler serves the token-gated routes. No store access: the payload
// comes entirely from the verified token.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler { return &ProfileHandler{} }

// Profile GET /profile
func (h *ProfileHandler) Profile(c *gin.Context) {
	payload := gin.H{}
	if claims, ok := c.Get(middleware.CtxClaimsKey); ok {
		if cl, ok := claims.(*helpers.Claims); ok {
			payload = gin.H{"user_id": cl.UserID, "email": cl.Email, "exp": cl.ExpiresAt}
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success in accessing protected route",
		"payload": payload,
	})
}

// Payment GET /payment
func (h *ProfileHandler) Payment(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "accessing protected payment route"})
}
