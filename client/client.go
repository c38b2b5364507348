// Package client is the HTTP implementation of the remote operations the
// form controllers depend on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/seerwright/daggle/forms"
)

// Client talks to a Daggle API server. The zero Timeout falls back to a
// 30 second default.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New returns a client for the given server. token may be empty for
// unauthenticated calls.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope mirrors the server's uniform response shape.
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// CreateCompetition implements forms.CreateClient. Business failures are
// returned as *forms.RemoteError carrying the server's msg as detail.
func (c *Client) CreateCompetition(ctx context.Context, draft forms.CompetitionDraft) (forms.CreateResult, error) {
	var created struct {
		Slug string `json:"slug"`
	}
	if err := c.post(ctx, "/api/v1/competitions", draft, &created); err != nil {
		return forms.CreateResult{}, err
	}
	return forms.CreateResult{Slug: created.Slug}, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Code != 0 {
		return &forms.RemoteError{Detail: env.Msg}
	}
	if resp.StatusCode >= 400 {
		return &forms.RemoteError{Detail: env.Msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}
