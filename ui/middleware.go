package ui

import (
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"equipviz/internal/session"
)

const sessionKey = "session"

// setupMiddleware configures gin middleware: static files plus the session
// cookie. Every request gets a session; a missing or unknown cookie creates
// a fresh one so the handlers never deal with an absent session.
func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		log.Printf("[setupMiddleware] Error creating static filesystem: %v", err)
	} else {
		s.router.StaticFS("/static", http.FS(staticFS))
	}

	s.router.Use(s.ensureSession)
}

func (s *Server) ensureSession(c *gin.Context) {
	if id, err := c.Cookie(session.CookieName); err == nil {
		if sess, ok := s.sessions.Lookup(id); ok {
			c.Set(sessionKey, sess)
			c.Next()
			return
		}
	}

	sess := s.sessions.Create()
	ttlSeconds := int(s.cfg.Session.TTL.Seconds())
	c.SetCookie(session.CookieName, sess.ID, ttlSeconds, "/", "", false, true)
	c.Set(sessionKey, sess)
	c.Next()
}

// currentSession returns the request's session, set by ensureSession.
func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
