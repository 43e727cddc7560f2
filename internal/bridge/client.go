package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/familybiz/backend/internal/models"
)

// Client talks to the cloud copy of the ledger. The remote endpoint
// serves the full state on GET with action=getAll and replaces it on
// POST; both answer with a status field.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// Pull fetches the remote ledger.
func (c *Client) Pull(ctx context.Context) (models.Ledger, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?action=getAll", nil)
	if err != nil {
		return models.Ledger{}, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return models.Ledger{}, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return models.Ledger{}, err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return models.Ledger{}, fmt.Errorf("cloud replied with HTTP %d", response.StatusCode)
	}

	var p payload
	if err := json.Unmarshal(trimBOM(body), &p); err != nil {
		return models.Ledger{}, fmt.Errorf("could not decode cloud payload: %w", err)
	}

	if p.Status == "error" {
		return models.Ledger{}, fmt.Errorf("cloud replied with an error: %s", p.Message)
	}

	return p.ledger(), nil
}

// Push replaces the remote ledger with the local one.
func (c *Client) Push(ctx context.Context, ledger models.Ledger) error {
	body, err := json.Marshal(ledger)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("cloud replied with HTTP %d", response.StatusCode)
	}

	var reply struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(trimBOM(raw), &reply); err != nil {
		return fmt.Errorf("could not decode cloud reply: %w", err)
	}

	if reply.Status == "error" {
		return fmt.Errorf("cloud rejected the push: %s", reply.Message)
	}

	return nil
}
