package response

import "github.com/gin-gonic/gin"

// Error writes the single error shape this API uses everywhere.
// Internal detail never reaches the client; callers log it instead.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// Abort is Error for middleware: it also stops the handler chain.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
