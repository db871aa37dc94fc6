package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"equipviz/adapters/excel"
	"equipviz/models"
)

// handleUpload receives a CSV and hands it to the backend. Size is enforced
// here so an oversized file never leaves the browser's network hop.
func (s *Server) handleUpload(c *gin.Context) {
	sess := currentSession(c)

	header, err := c.FormFile("file")
	if err != nil {
		log.Printf("[Upload] No file in request: %v", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	maxBytes := s.cfg.Upload.MaxSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		log.Printf("[Upload] Rejected %s (%d bytes, limit %d)", header.Filename, header.Size, maxBytes)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Printf("[Upload] Failed to open %s: %v", header.Filename, err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	defer file.Close()

	if err := sess.Upload(c.Request.Context(), header.Filename, file); err != nil {
		log.Printf("[Upload] %s rejected: %v", header.Filename, err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// handleOpenDataset makes a history entry the active view.
func (s *Server) handleOpenDataset(c *gin.Context) {
	sess := currentSession(c)

	id := models.DatasetID(c.Param("id"))
	if err := sess.SelectHistoryEntry(c.Request.Context(), id); err != nil {
		log.Printf("[Dataset] Open %s failed: %v", id, err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// handleCloseDataset returns from the historical view to the empty one.
func (s *Server) handleCloseDataset(c *gin.Context) {
	sess := currentSession(c)
	sess.CloseHistoricalView()
	c.Redirect(http.StatusSeeOther, "/")
}

// handleReport streams the backend-generated PDF as a download.
func (s *Server) handleReport(c *gin.Context) {
	sess := currentSession(c)

	id := models.DatasetID(c.Param("id"))
	pdf, err := sess.GenerateReport(c.Request.Context(), id)
	if err != nil {
		log.Printf("[Report] Dataset %s failed: %v", id, err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// handleExport downloads the active dataset as an xlsx workbook.
func (s *Server) handleExport(c *gin.Context) {
	sess := currentSession(c)

	snap := sess.Snapshot()
	buf, err := excel.Export(snap.View)
	if err != nil {
		log.Printf("[Export] %v", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\"equipment_data.xlsx\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
