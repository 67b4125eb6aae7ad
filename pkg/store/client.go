// Package store is the remote side of the fronts client: an HTTP client for
// the authoritative document plus a local snapshot archive.
//
// The server is the single source of truth. FetchAll and SaveAll move the
// whole document; the toggle calls are server-authoritative because revealing
// a secret awards XP, and a naive client-side flip would duplicate that side
// effect on a retry.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/grimportent/fronts/pkg/front"
)

// Remote is the request/response contract with the fronts server. There are
// no retries anywhere; every failure is terminal for that one operation.
type Remote interface {
	FetchAll(ctx context.Context) (*front.Document, error)
	SaveAll(ctx context.Context, doc *front.Document) error
	ToggleSecret(ctx context.Context, dangerID, secretID string) (*front.Secret, error)
	TogglePortent(ctx context.Context, dangerID, portentID string) (*front.GrimPortent, error)
}

// New builds a Remote backed by the configured server.
func New(cfg Config) (Remote, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &client{base: cfg.ServerURL(), http: http.DefaultClient}, nil
}

type client struct {
	base string
	http *http.Client
}

// FetchAll GETs the full document. On failure nothing is partially
// populated; the caller keeps whatever document it already had.
func (c *client) FetchAll(ctx context.Context) (*front.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/fronts", nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	var doc front.Document
	if err := c.do(req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// SaveAll POSTs the full fronts array, replacing server state wholesale.
// Last writer wins; there is no optimistic-concurrency token.
func (c *client) SaveAll(ctx context.Context, doc *front.Document) error {
	return c.post(ctx, "/api/fronts/save", front.Document{Fronts: doc.Fronts}, nil)
}

// ToggleSecret asks the server to flip revealed and set or clear revealedAt.
// The returned secret is authoritative; the client never computes the flip.
func (c *client) ToggleSecret(ctx context.Context, dangerID, secretID string) (*front.Secret, error) {
	body := map[string]string{"dangerId": dangerID, "secretId": secretID}
	var out struct {
		Secret front.Secret `json:"secret"`
	}
	if err := c.post(ctx, "/api/fronts/secret/toggle", body, &out); err != nil {
		return nil, err
	}
	return &out.Secret, nil
}

// TogglePortent is the completed-flag analog of ToggleSecret.
func (c *client) TogglePortent(ctx context.Context, dangerID, portentID string) (*front.GrimPortent, error) {
	body := map[string]string{"dangerId": dangerID, "portentId": portentID}
	var out struct {
		Portent front.GrimPortent `json:"portent"`
	}
	if err := c.post(ctx, "/api/fronts/portent/toggle", body, &out); err != nil {
		return nil, err
	}
	return &out.Portent, nil
}

func (c *client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &NetworkError{Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Err: err}
	}
	return nil
}
