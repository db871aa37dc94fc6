// Package ui serves the equipment analytics dashboard: a server-rendered
// gin application with one page per screen state and a handful of JSON
// endpoints the page polls for charts and history.
package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"equipviz/internal/config"
	"equipviz/internal/session"
)

// Server is the web server for the EquipViz UI.
type Server struct {
	router    *gin.Engine
	sessions  *session.Manager
	cfg       *config.Config
	templates *template.Template
}

// NewServer creates a new web server instance.
func NewServer() *Server {
	return &Server{
		router: gin.Default(),
	}
}

// Initialize parses templates and wires middleware and routes.
func (s *Server) Initialize(cfg *config.Config, sessions *session.Manager) error {
	s.cfg = cfg
	s.sessions = sessions

	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "—"
			}
			return t.Format("Jan 2, 2006 15:04")
		},
		"printf1": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		"printf2": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"add": func(a, b int) int { return a + b },
	}

	templatesFS, err := fs.Sub(embeddedFiles, "templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	files, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to glob templates: %w", err)
	}
	log.Printf("[TemplateInit] Found %d template files: %v", len(files), files)

	s.templates = template.New("").Funcs(funcMap)
	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}

	s.setupMiddleware()
	s.setupRoutes()
	return nil
}

// setupRoutes configures the application routes.
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)

	auth := s.router.Group("/auth")
	{
		auth.GET("/panel", s.handleOpenPanel)
		auth.POST("/login", s.handleLogin)
		auth.POST("/register", s.handleRegister)
		auth.POST("/logout", s.handleLogout)
	}

	s.router.POST("/upload", s.handleUpload)

	datasets := s.router.Group("/datasets")
	{
		datasets.POST("/:id/open", s.handleOpenDataset)
		datasets.POST("/close", s.handleCloseDataset)
		datasets.POST("/:id/report", s.handleReport)
	}

	s.router.GET("/export", s.handleExport)

	api := s.router.Group("/api")
	{
		api.GET("/history", s.handleHistoryJSON)
		api.GET("/charts", s.handleChartsJSON)
	}
}

// Start starts the web server.
func (s *Server) Start(addr string) error {
	log.Printf("Starting EquipViz UI on http://%s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for in-process serving.
func (s *Server) Handler() http.Handler {
	return s.router
}
