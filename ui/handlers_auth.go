package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"equipviz/models"
)

// handleOpenPanel switches the visible auth form, e.g. /auth/panel?show=login.
// "none" closes both forms.
func (s *Server) handleOpenPanel(c *gin.Context) {
	sess := currentSession(c)

	switch c.Query("show") {
	case "login":
		sess.OpenPanel(models.PanelLogin)
	case "register":
		sess.OpenPanel(models.PanelRegister)
	default:
		sess.ClosePanel()
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleLogin(c *gin.Context) {
	sess := currentSession(c)

	username := c.PostForm("username")
	password := c.PostForm("password")
	if err := sess.SubmitLogin(c.Request.Context(), username, password); err != nil {
		log.Printf("[Auth] Login failed for %q: %v", username, err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleRegister(c *gin.Context) {
	sess := currentSession(c)

	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if err := sess.SubmitRegister(c.Request.Context(), username, email, password); err != nil {
		log.Printf("[Auth] Registration failed for %q: %v", username, err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleLogout(c *gin.Context) {
	sess := currentSession(c)
	sess.Logout()
	log.Printf("[Auth] Session %s logged out", sess.ID)
	c.Redirect(http.StatusSeeOther, "/")
}
