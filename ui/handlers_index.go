package ui

import (
	"encoding/json"
	"html/template"
	"log"

	"github.com/gin-gonic/gin"

	"equipviz/internal/analytics"
	"equipviz/internal/charts"
	"equipviz/models"
)

// indexPage is everything index.html needs for one render.
type indexPage struct {
	Authenticated bool
	Username      string
	Panel         models.AuthPanel
	Alert         string
	View          models.ActiveView
	History       []models.HistoryEntry
	Preview       *models.ParameterStatistics
	ChartsJSON    template.JS
	MaxUploadMB   int64
}

// handleIndex renders the whole page for the session's current state. Which
// of the three screens shows is decided here, not client-side.
func (s *Server) handleIndex(c *gin.Context) {
	sess := currentSession(c)
	snap := sess.Snapshot()

	page := indexPage{
		Authenticated: snap.Authenticated,
		Username:      snap.Username,
		Panel:         snap.Panel,
		Alert:         sess.TakeAlert(),
		View:          snap.View,
		History:       snap.History,
		ChartsJSON:    chartsJSON(snap.View),
		MaxUploadMB:   s.cfg.Upload.MaxSizeMB,
	}
	if snap.View.Kind == models.ViewLive {
		page.Preview = analytics.Preview(snap.View.Rows())
	}

	s.renderTemplate(c, "index.html", page)
}

// chartsJSON projects the view's chart bundle to inline JSON, or "null" when
// there is nothing to draw.
func chartsJSON(view models.ActiveView) template.JS {
	bundle := charts.Project(view)
	if bundle == nil {
		return template.JS("null")
	}
	raw, err := json.Marshal(bundle)
	if err != nil {
		log.Printf("[Index] Chart bundle marshal failed: %v", err)
		return template.JS("null")
	}
	return template.JS(raw)
}
