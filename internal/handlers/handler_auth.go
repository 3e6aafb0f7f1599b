package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// authInfoMessage is returned on /api/auth; sign-in happens with the identity provider directly.
const authInfoMessage = "Authentication is handled by the identity provider"

// RegisterAuthRoutes registers the informational /auth catch-all.
func RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.GET("/*any", getAuthInfo)
	auth.POST("/*any", getAuthInfo)
}

// getAuthInfo godoc
// @Summary Authentication info
// @Description Sessions are issued by the external identity provider; this route only reports that.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /auth/{any} [get]
// @Router /auth/{any} [post]
func getAuthInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": authInfoMessage})
}
