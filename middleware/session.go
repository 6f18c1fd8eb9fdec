package middleware

import (
	"net/http"

	"pos-client/repositories"
	"pos-client/services"

	"github.com/gin-gonic/gin"
)

const (
	workspaceKey = "workspace"
	sessionIDKey = "session_id"
)

// SessionCookie describes the cookie carrying the browser's session id.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (sc SessionCookie) Set(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, id, 0, "/", "", sc.Secure, true)
}

// SessionMiddleware binds the request to the browser's workspace, issuing a
// new session cookie when the browser has none. The workspace stays locked
// until the handler chain returns.
func SessionMiddleware(sessions *repositories.SessionRepository, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, _ := c.Cookie(cookie.Name)

		id, workspace, created := sessions.FindOrCreate(value)
		if created {
			cookie.Set(c, id)
		}

		workspace.Lock()
		defer workspace.Unlock()

		c.Set(workspaceKey, workspace)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// Workspace returns the workspace bound by SessionMiddleware.
func Workspace(c *gin.Context) *services.Workspace {
	return c.MustGet(workspaceKey).(*services.Workspace)
}

// SessionID returns the id of the session bound by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
