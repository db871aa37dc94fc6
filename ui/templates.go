package ui

import (
	"bytes"
	"log"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a template into a buffer first so a mid-render
// failure produces a clean 500 instead of a truncated page.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("Template error for %s: %v", templateName, err)
		c.AbortWithStatusJSON(500, gin.H{"error": "Template rendering failed"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(200)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		log.Printf("Error writing template response: %v", err)
	}
}
