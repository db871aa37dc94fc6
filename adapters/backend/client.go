package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"equipviz/internal/errors"
	"equipviz/models"
	"equipviz/ports"
)

// Client consumes the analytics backend REST contract over HTTP. Credentials
// are replayed as basic auth on every authenticated call.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client for the given base URL, e.g.
// "http://localhost:8000/api".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

var _ ports.Backend = (*Client)(nil)

// Login verifies the credentials against POST /login/.
func (c *Client) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := c.postJSON(ctx, "/login/", creds, nil)
	if err != nil {
		return errors.AuthFailed("Invalid credentials")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.AuthFailed(errorMessage(resp, "Invalid credentials"))
	}
	return nil
}

// Register creates an account via POST /register/.
func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) error {
	resp, err := c.postJSON(ctx, "/register/", req, nil)
	if err != nil {
		return errors.AuthFailed("Unknown error")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.AuthFailed(errorMessage(resp, "Unknown error"))
	}
	return nil
}

// Upload sends the CSV as multipart form data to POST /upload/.
func (c *Client) Upload(ctx context.Context, creds models.Credentials, filename string, file io.Reader) (*ports.UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.UploadFailed("Unknown error")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.UploadFailed("Unknown error")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.UploadFailed("Unknown error")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/", &body)
	if err != nil {
		return nil, errors.UploadFailed("Unknown error")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[Backend] Upload request failed: %v", err)
		return nil, errors.UploadFailed("Unknown error")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.UploadFailed(errorMessage(resp, "Unknown error"))
	}

	var result ports.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[Backend] Upload response decode failed: %v", err)
		return nil, errors.UploadFailed("Unknown error")
	}
	return &result, nil
}

// History lists prior uploads via GET /history/.
func (c *Client) History(ctx context.Context, creds models.Credentials) ([]models.HistoryEntry, error) {
	resp, err := c.get(ctx, "/history/", creds)
	if err != nil {
		return nil, errors.HistoryFetchFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.HistoryFetchFailed(fmt.Errorf("status=%d", resp.StatusCode))
	}

	var entries []models.HistoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.HistoryFetchFailed(err)
	}
	return entries, nil
}

// Dataset fetches one stored dataset with analytics via GET /dataset/{id}/.
func (c *Client) Dataset(ctx context.Context, creds models.Credentials, id models.DatasetID) (*ports.DatasetDetail, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/dataset/%s/", id), creds)
	if err != nil {
		return nil, errors.AnalyticsFetchFailed("Failed to load dataset")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.AnalyticsFetchFailed(errorMessage(resp, "Failed to load dataset"))
	}

	var detail ports.DatasetDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		log.Printf("[Backend] Dataset response decode failed: %v", err)
		return nil, errors.AnalyticsFetchFailed("Failed to load dataset")
	}
	return &detail, nil
}

// Report requests a PDF via POST /report/ and returns the byte stream.
func (c *Client) Report(ctx context.Context, creds models.Credentials, id models.DatasetID) ([]byte, error) {
	payload := map[string]string{"dataset_id": string(id)}
	resp, err := c.postJSON(ctx, "/report/", payload, &creds)
	if err != nil {
		return nil, errors.ReportFailed("Report generation failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ReportFailed(errorMessage(resp, "Report generation failed"))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ReportFailed("Report generation failed")
	}
	return pdf, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, creds *models.Credentials) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[Backend] POST %s failed: %v", path, err)
		return nil, err
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, creds models.Credentials) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[Backend] GET %s failed: %v", path, err)
		return nil, err
	}
	return resp, nil
}

// errorMessage extracts the backend's human-readable error field from a
// failure body. Bodies without the field fall back to the given generic
// message; the raw body is never surfaced.
func errorMessage(resp *http.Response, fallback string) string {
	blob, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fallback
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(blob, &payload); err != nil || payload.Error == "" {
		return fallback
	}
	return payload.Error
}
