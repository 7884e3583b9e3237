// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError writes a JSON error body. The panel reads the "message"
// field, so every error path goes through here to keep the shape uniform.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}
