// Package bff wraps the upstream backend-for-frontend service. Non-2xx
// responses become APIError with status and message preserved; there is no
// retry anywhere — a failed call surfaces to the caller as-is.
package bff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"slotifyme-admin/models"
)

// APIError carries the upstream status code and message verbatim.
type APIError struct {
	Status  int
	Message string
	Data    map[string]interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bff: %d %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Do forwards a raw request to the upstream, preserving method, path, query
// and body, with the session token as bearer. The caller owns the response
// body.
func (c *Client) Do(method, path, query string, body io.Reader, contentType, token string) (*http.Response, error) {
	url := c.BaseURL + "/" + strings.TrimLeft(path, "/")
	if query != "" {
		url += "?" + query
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.HTTP.Do(req)
}

// ListTenants fetches and normalizes the tenants list. The upstream has
// returned both a bare array and an {items: ...} envelope over time; either
// decodes to the same envelope here.
func (c *Client) ListTenants(token string) (*models.TenantsEnvelope, error) {
	resp, err := c.Do(http.MethodGet, "admin/tenants", "", nil, "", token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, data)
	}

	var envelope models.TenantsEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("bff: tenants response shape mismatch: %w", err)
	}
	return &envelope, nil
}

// GetJSON fetches a path and decodes the 2xx body into out.
func (c *Client) GetJSON(path, token string, out interface{}) error {
	resp, err := c.Do(http.MethodGet, path, "", nil, "", token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}
	return json.Unmarshal(data, out)
}

// PostJSON sends a JSON body and decodes the 2xx response into out.
func (c *Client) PostJSON(path, token string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	resp, err := c.Do(http.MethodPost, path, "", bytes.NewReader(payload), "application/json", token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func decodeError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}

	var data map[string]interface{}
	if json.Unmarshal(body, &data) == nil {
		apiErr.Data = data
		if msg, ok := data["message"].(string); ok && msg != "" {
			apiErr.Message = msg
		} else if msg, ok := data["error"].(string); ok && msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}
