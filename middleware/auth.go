package middleware

import (
	"net/http"
	"strings"

	"pos-client/models"
	"pos-client/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware only lets requests through for workspaces holding a live
// session token. Browsers are sent back to the login screen; JSON clients get
// a 401.
func AuthMiddleware(pos *services.PosService) gin.HandlerFunc {
	return func(c *gin.Context) {
		workspace := Workspace(c)
		if pos.CheckSession(workspace) {
			c.Next()
			return
		}

		if wantsJSON(c) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authentication required",
			})
			c.Abort()
			return
		}

		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		strings.HasSuffix(c.FullPath(), "/state")
}
