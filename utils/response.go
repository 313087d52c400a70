package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError writes the uniform failure envelope.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
