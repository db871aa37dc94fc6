// Package session holds the per-browser client state machine: auth status,
// open auth panel, active dataset view and the cached upload history. All
// backend calls run outside the session lock so the UI stays responsive;
// their results are applied in a single locked step, so a renderer always
// observes a whole view, never a half-updated one.
package session

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"equipviz/internal/errors"
	"equipviz/models"
	"equipviz/ports"
)

// Session is one browser session's client state. Mutations happen under the
// lock; the credential pair lives only here and is replayed per call.
type Session struct {
	ID string

	backend ports.Backend

	mu       sync.Mutex
	creds    *models.Credentials
	panel    models.AuthPanel
	view     models.ActiveView
	history  []models.HistoryEntry
	alert    string
	lastSeen time.Time

	// fetchSeq fences overlapping dataset fetches: each select bumps it at
	// issue time and a response is applied only while its sequence is still
	// the latest. Any other view mutation bumps it too, so a stale response
	// can never overwrite newer state.
	fetchSeq uint64

	// flight collapses concurrent history refreshes into one backend call.
	flight singleflight.Group
}

// Snapshot is an immutable copy of the session state for rendering.
type Snapshot struct {
	Authenticated bool
	Username      string
	Panel         models.AuthPanel
	View          models.ActiveView
	History       []models.HistoryEntry
}

func newSession(id string, backend ports.Backend) *Session {
	return &Session{
		ID:       id,
		backend:  backend,
		panel:    models.PanelNone,
		view:     models.EmptyView(),
		lastSeen: time.Now(),
	}
}

// Snapshot returns a consistent copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Authenticated: s.creds != nil,
		Panel:         s.panel,
		View:          s.view,
		History:       append([]models.HistoryEntry(nil), s.history...),
	}
	if s.creds != nil {
		snap.Username = s.creds.Username
	}
	return snap
}

// TakeAlert pops the pending one-shot alert, if any.
func (s *Session) TakeAlert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	alert := s.alert
	s.alert = ""
	return alert
}

func (s *Session) setAlert(msg string) {
	s.mu.Lock()
	s.alert = msg
	s.mu.Unlock()
}

// Authenticated reports whether credentials are held.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds != nil
}

func (s *Session) credentials() (models.Credentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return models.Credentials{}, false
	}
	return *s.creds, true
}

// OpenPanel switches the visible auth form. Each open re-initializes the
// form empty; nothing is carried between login and register. Ignored while
// logged in.
func (s *Session) OpenPanel(panel models.AuthPanel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds != nil {
		return
	}
	s.panel = panel
}

// ClosePanel hides the auth forms.
func (s *Session) ClosePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panel = models.PanelNone
}

// SubmitLogin verifies the credentials with the backend. Success stores them
// and refreshes the history cache; failure surfaces the backend's message and
// leaves the panel untouched.
func (s *Session) SubmitLogin(ctx context.Context, username, password string) error {
	creds := models.Credentials{Username: username, Password: password}

	if err := s.backend.Login(ctx, creds); err != nil {
		s.setAlert("Login failed: " + errors.UserMessage(err))
		return err
	}

	s.mu.Lock()
	s.creds = &creds
	s.panel = models.PanelNone
	s.mu.Unlock()

	s.RefreshHistory(ctx)
	return nil
}

// SubmitRegister creates an account. Success switches to the login panel;
// failure stays on the register panel with the backend's message.
func (s *Session) SubmitRegister(ctx context.Context, username, email, password string) error {
	req := ports.RegisterRequest{Username: username, Password: password, Email: email}

	if err := s.backend.Register(ctx, req); err != nil {
		s.setAlert("Registration failed: " + errors.UserMessage(err))
		return err
	}

	s.mu.Lock()
	s.panel = models.PanelLogin
	s.alert = "Registration successful! Please login."
	s.mu.Unlock()
	return nil
}

// Logout clears credentials, dataset selection and history in one step.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	s.panel = models.PanelNone
	s.view = models.EmptyView()
	s.history = nil
	s.alert = ""
	s.fetchSeq++
}

// Upload sends a CSV to the backend and, on success, atomically replaces the
// active view with the live dataset from the response. On failure the prior
// view is left unchanged.
func (s *Session) Upload(ctx context.Context, filename string, file io.Reader) error {
	creds, ok := s.credentials()
	if !ok {
		err := errors.NotAuthenticated()
		s.setAlert(err.Message)
		return err
	}

	result, err := s.backend.Upload(ctx, creds, filename, file)
	if err != nil {
		s.setAlert("Upload failed: " + errors.UserMessage(err))
		return err
	}

	s.mu.Lock()
	s.view = models.NewLiveView(result.Data, result.Summary)
	s.fetchSeq++
	s.mu.Unlock()

	s.RefreshHistory(ctx)
	return nil
}

// SelectHistoryEntry fetches a stored dataset with its analytics and makes it
// the active view, discarding any live dataset display. Overlapping selects
// are fenced: only the most recently issued request's response is applied.
func (s *Session) SelectHistoryEntry(ctx context.Context, id models.DatasetID) error {
	creds, ok := s.credentials()
	if !ok {
		err := errors.NotAuthenticated()
		s.setAlert(err.Message)
		return err
	}

	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	detail, err := s.backend.Dataset(ctx, creds, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		log.Printf("[Session] Discarding stale dataset response for %s (superseded)", id)
		return nil
	}

	if err != nil {
		s.alert = "Failed to load analytics: " + errors.UserMessage(err)
		return err
	}

	s.view = models.NewHistoricalView(id, detail.Data, detail.Summary, detail.Analytics)
	return nil
}

// CloseHistoricalView returns to the empty authenticated view. The live
// dataset is not restored; it was discarded when the historical view opened.
// Idempotent under repeated calls.
func (s *Session) CloseHistoricalView() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.Kind != models.ViewHistorical {
		return
	}
	s.view = models.EmptyView()
	s.fetchSeq++
}

// RefreshHistory replaces the cached history list wholesale. Failure is
// non-fatal: it is logged and the stale list stays displayed. Concurrent
// refreshes collapse into a single backend call.
func (s *Session) RefreshHistory(ctx context.Context) {
	creds, ok := s.credentials()
	if !ok {
		return
	}

	_, err, _ := s.flight.Do("history", func() (interface{}, error) {
		entries, err := s.backend.History(ctx, creds)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.history = entries
		s.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		log.Printf("[Session] History refresh failed: %v", err)
	}
}

// GenerateReport fetches the PDF report for a stored dataset.
func (s *Session) GenerateReport(ctx context.Context, id models.DatasetID) ([]byte, error) {
	creds, ok := s.credentials()
	if !ok {
		err := errors.NotAuthenticated()
		s.setAlert(err.Message)
		return nil, err
	}

	pdf, err := s.backend.Report(ctx, creds, id)
	if err != nil {
		s.setAlert("Report generation failed")
		return nil, err
	}
	return pdf, nil
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
