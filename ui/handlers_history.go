package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equipviz/internal/charts"
	"equipviz/models"
)

// handleHistoryJSON re-fetches and returns the session's upload history.
func (s *Server) handleHistoryJSON(c *gin.Context) {
	sess := currentSession(c)
	if !sess.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login first"})
		return
	}

	sess.RefreshHistory(c.Request.Context())
	snap := sess.Snapshot()
	c.JSON(http.StatusOK, gin.H{"datasets": snap.History})
}

// handleChartsJSON returns the chart bundle for the active view, or null
// when no dataset is active.
func (s *Server) handleChartsJSON(c *gin.Context) {
	sess := currentSession(c)
	if !sess.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login first"})
		return
	}

	snap := sess.Snapshot()
	bundle := charts.Project(snap.View)
	if bundle == nil {
		c.JSON(http.StatusOK, gin.H{"charts": nil, "view": models.ViewEmpty})
		return
	}
	c.JSON(http.StatusOK, gin.H{"charts": bundle, "view": snap.View.Kind})
}
