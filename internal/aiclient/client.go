// Package aiclient is the thin transport to a remote AI planning backend.
// It only moves bytes; making sense of the reply payload is aiparse's job.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"TRAVELMATE_BACK-END/internal/config"
)

// Client calls the remote backend's /run endpoint.
type Client struct {
	baseURL    string
	appName    string
	userID     string
	httpClient *http.Client
}

// New creates a client for the configured backend.
func New(cfg *config.AIBackendConfig) *Client {
	return &Client{
		baseURL:    cfg.URL,
		appName:    cfg.AppName,
		userID:     cfg.UserID,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type runMessage struct {
	Role  string    `json:"role"`
	Parts []runPart `json:"parts"`
}

type runPart struct {
	Text string `json:"text"`
}

type runRequest struct {
	AppName    string     `json:"appName"`
	UserID     string     `json:"userId"`
	SessionID  string     `json:"sessionId"`
	NewMessage runMessage `json:"newMessage"`
	Streaming  bool       `json:"streaming"`
}

// Run sends one user message and returns the decoded reply payload as an
// arbitrary JSON value. The backend's envelope shape is not guaranteed.
func (c *Client) Run(ctx context.Context, sessionID, message string) (any, error) {
	payload := runRequest{
		AppName:   c.appName,
		UserID:    c.userID,
		SessionID: sessionID,
		NewMessage: runMessage{
			Role:  "user",
			Parts: []runPart{{Text: message}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	// noCompress avoids gzip envelopes some backend builds emit regardless
	// of Accept-Encoding.
	url := c.baseURL + "/run?noCompress=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ai backend returned %d: %s", resp.StatusCode, detail)
	}

	var data any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode ai backend response: %w", err)
	}
	return data, nil
}
