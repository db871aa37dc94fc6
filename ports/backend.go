package ports

import (
	"context"
	"io"

	"equipviz/models"
)

// RegisterRequest is the payload for account creation. Email is optional.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// UploadResult is the atomic upload response: rows and summary arrive
// together or not at all.
type UploadResult struct {
	Data    []models.EquipmentRow `json:"data"`
	Summary models.Summary        `json:"summary"`
}

// DatasetDetail is the full dataset payload for one history entry.
type DatasetDetail struct {
	Data      []models.EquipmentRow   `json:"data"`
	Summary   models.Summary          `json:"summary"`
	Analytics models.DatasetAnalytics `json:"analytics"`
}

// Backend defines the analytics backend operations the client consumes.
// Every authenticated call re-supplies the credentials; the backend issues
// no session token. Implementations convert failure bodies into errors
// carrying the backend's human-readable message, with a generic fallback
// when the body has no error field.
type Backend interface {
	// Login verifies the credentials. A nil error means the pair is valid.
	Login(ctx context.Context, creds models.Credentials) error

	// Register creates a new account.
	Register(ctx context.Context, req RegisterRequest) error

	// Upload sends a CSV for parsing and persistence and returns the parsed
	// rows with their summary.
	Upload(ctx context.Context, creds models.Credentials, filename string, file io.Reader) (*UploadResult, error)

	// History lists the caller's prior uploads, newest first.
	History(ctx context.Context, creds models.Credentials) ([]models.HistoryEntry, error)

	// Dataset fetches rows, summary and analytics for one history entry.
	Dataset(ctx context.Context, creds models.Credentials, id models.DatasetID) (*DatasetDetail, error)

	// Report generates a PDF report for a stored dataset and returns the
	// raw bytes.
	Report(ctx context.Context, creds models.Credentials, id models.DatasetID) ([]byte, error)
}
