// Package api implements the HTTP client for the IrisAuth backend REST API:
// the four JSON verbs plus a multipart upload path, bearer-token injection,
// and normalization of non-success responses into *Error values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/irisrec/irisctl/internal/common"
)

// TokenSource supplies the bearer token attached to authorized requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client issues requests against a fixed base URL. Construct it with New;
// the zero value is not usable.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New returns a Client for baseURL (e.g. "http://localhost:8080/api").
// A nil tokens source disables the authorization header.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// Get performs an authorized GET and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.doJSON(ctx, http.MethodGet, endpoint, nil, out)
}

// Post performs an authorized POST with a JSON body and decodes the JSON
// response into out.
func (c *Client) Post(ctx context.Context, endpoint string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPost, endpoint, body, out)
}

// Put performs an authorized PUT with a JSON body and decodes the JSON
// response into out.
func (c *Client) Put(ctx context.Context, endpoint string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPut, endpoint, body, out)
}

// Delete performs an authorized DELETE and decodes the JSON body into out.
func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, out)
}

// doJSON builds the request, attaches JSON content-type/accept headers and
// the bearer header when a token is available, and runs it. A non-success
// status yields the generic *Error without reading the body; a success
// status decodes the body into out (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpError(resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// authorize attaches the bearer header when a token is stored.
func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return nil
}
