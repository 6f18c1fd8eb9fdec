package controllers

import (
	"log"
	"net/http"

	"pos-client/middleware"
	"pos-client/models"
	"pos-client/repositories"
	"pos-client/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth     *services.AuthService
	Pos      *services.PosService
	Sessions *repositories.SessionRepository
	Cookie   middleware.SessionCookie
}

// ShowLogin godoc
// @Summary Login screen
// @Description Render the login/register form. Authenticated sessions are sent to the POS screen.
// @Tags Authentication
// @Produce html
// @Success 200 {string} string "HTML page"
// @Success 303 {string} string "Redirect to /"
// @Router /login [get]
func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	workspace := middleware.Workspace(c)
	if ctrl.Pos.CheckSession(workspace) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "auth.html", gin.H{"Form": workspace.Auth})
}

// Submit godoc
// @Summary Submit credentials
// @Description Log in or register, depending on the current form mode. A successful login loads products and sales.
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 {string} string "Redirect to / on login, back to /login otherwise"
// @Router /login [post]
func (ctrl *AuthController) Submit(c *gin.Context) {
	workspace := middleware.Workspace(c)

	var req models.AuthFormRequest
	if err := c.ShouldBind(&req); err != nil {
		workspace.Auth.Error = "Usuario y contraseña son obligatorios."
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	token, err := ctrl.Auth.Submit(c.Request.Context(), &workspace.Auth, req)
	if err != nil || token == "" {
		if err != nil {
			log.Printf("Authentication for %q rejected: %v", req.Username, err)
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	ctrl.Pos.StartSession(c.Request.Context(), workspace, token)
	c.Redirect(http.StatusSeeOther, "/")
}

// Toggle godoc
// @Summary Toggle login/register
// @Description Switch the form between login and register mode, clearing fields and errors.
// @Tags Authentication
// @Produce html
// @Success 303 {string} string "Redirect to /login"
// @Router /login/toggle [post]
func (ctrl *AuthController) Toggle(c *gin.Context) {
	services.ToggleMode(&middleware.Workspace(c).Auth)
	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout godoc
// @Summary Log out
// @Description Forget the session token, cart, catalog and history and start a fresh session. No server call is made.
// @Tags Authentication
// @Produce html
// @Success 303 {string} string "Redirect to /login"
// @Router /logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.Pos.Logout(middleware.Workspace(c))
	ctrl.Sessions.Delete(middleware.SessionID(c))

	id, _ := ctrl.Sessions.Create()
	ctrl.Cookie.Set(c, id)
	c.Redirect(http.StatusSeeOther, "/login")
}
