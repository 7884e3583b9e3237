// Package client is the Go client for the salon admin API. It carries the
// pieces every admin surface needs: the JSON request wrapper, the persisted
// session token, remote collections with local reconciliation, and the
// dashboard derivations.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RequestError is returned for any non-2xx response. Message carries the
// server's text when the body had one; callers decide how to present it.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// Client issues JSON requests against a configured base URL, attaching the
// stored token when present. No retries and no timeout beyond the
// http.Client default.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenStore
}

func New(baseURL string, tokens *TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// Tokens exposes the session store, so the shell can gate on it and clear
// it on logout.
func (c *Client) Tokens() *TokenStore {
	return c.tokens
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). Cancelling ctx abandons the call, so a response that lands
// after the caller is gone is dropped instead of applied.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// serverMessage pulls the error text out of a {"message": ...} or
// {"error": ...} body.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
