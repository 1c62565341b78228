// Package store implements a minimal client for a CouchDB-compatible document
// store reached over HTTP. It covers the four calls the administration engines
// need: fetch a document by id, query a design view by key, put a document
// carrying its revision, and delete a document at a revision.
//
// The store's revision token is the only concurrency-control mechanism: every
// update or delete must carry the most recently fetched revision, and a stale
// revision is surfaced as ErrConflict without retrying.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
)

// Config holds the connection parameters for the document store.
type Config struct {
	// BaseURL is the store endpoint, e.g. "http://localhost:5984".
	BaseURL string
	// Username is the basic-auth username (empty disables authentication).
	Username string
	// Password is the basic-auth password.
	Password string
	// HTTPClient is the underlying HTTP client. A timeout is expected to be
	// set by the caller; nil falls back to http.DefaultClient.
	HTTPClient *http.Client
}

// Client talks to one document store endpoint.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a document store client from the given configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: httpClient,
	}
}

// Row is one entry of a view or index query result.
type Row struct {
	ID    string          `json:"id"`
	Key   json.RawMessage `json:"key"`
	Value json.RawMessage `json:"value"`
	Doc   json.RawMessage `json:"doc,omitempty"`
}

type viewResult struct {
	Rows []Row `json:"rows"`
}

type writeResult struct {
	OK  bool   `json:"ok"`
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

// Get fetches the document with the given id into doc and returns its revision.
// Returns ErrNotFound when the document is absent or deleted.
func (c *Client) Get(ctx context.Context, database, id string, doc any) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, database, url.PathEscape(id))

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	var rev struct {
		Rev string `json:"_rev"`
	}
	if err := json.Unmarshal(body, &rev); err != nil {
		return "", apperrors.Wrap(apperrors.ErrStore, "failed to decode document revision")
	}
	if doc != nil {
		if err := json.Unmarshal(body, doc); err != nil {
			return "", apperrors.Wrap(apperrors.ErrStore, fmt.Sprintf("failed to decode document: %v", err))
		}
	}
	return rev.Rev, nil
}

// Put stores the document and returns the new revision. The document must
// carry its current revision (as "_rev") when updating an existing document;
// the store rejects stale revisions with ErrConflict.
func (c *Client) Put(ctx context.Context, database string, doc any) (string, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, database)

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode document")
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return "", err
	}

	var result writeResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", apperrors.Wrap(apperrors.ErrStore, "failed to decode write result")
	}
	return result.Rev, nil
}

// Delete removes the document at the given revision.
func (c *Client) Delete(ctx context.Context, database, id, rev string) error {
	endpoint := fmt.Sprintf("%s/%s/%s?rev=%s", c.baseURL, database, url.PathEscape(id), url.QueryEscape(rev))

	_, err := c.do(ctx, http.MethodDelete, endpoint, nil)
	return err
}

// View queries a design document view with the given key and returns its rows.
// A nil key queries the whole view.
func (c *Client) View(ctx context.Context, database, designDoc, view string, key any) ([]Row, error) {
	endpoint := fmt.Sprintf(
		"%s/%s/_design/%s/_view/%s",
		c.baseURL, database, url.PathEscape(designDoc), url.PathEscape(view),
	)
	if key != nil {
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to encode view key")
		}
		endpoint += "?key=" + url.QueryEscape(string(encodedKey))
	}

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var result viewResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to decode view result")
	}
	return result.Rows, nil
}

// Dump fetches the raw contents of a database, either through its primary
// index or through a named design view, optionally including full documents.
func (c *Client) Dump(ctx context.Context, database, designDoc, view string, includeDocs bool) (json.RawMessage, error) {
	var endpoint string
	if designDoc != "" {
		endpoint = fmt.Sprintf(
			"%s/%s/_design/%s/_view/%s?reduce=false&include_docs=%t",
			c.baseURL, database, url.PathEscape(designDoc), url.PathEscape(view), includeDocs,
		)
	} else {
		endpoint = fmt.Sprintf("%s/%s/_all_docs?include_docs=%t", c.baseURL, database, includeDocs)
	}

	return c.do(ctx, http.MethodGet, endpoint, nil)
}

// do performs one HTTP round trip and maps the response status to the error
// taxonomy: 404 to ErrNotFound, 409 to ErrConflict, any other non-2xx to
// ErrStore carrying the raw response body.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build store request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err.Error())
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, "failed to read store response")
	}

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return body, nil
	case res.StatusCode == http.StatusNotFound:
		return nil, apperrors.Wrap(apperrors.ErrNotFound, strings.TrimSpace(string(body)))
	case res.StatusCode == http.StatusConflict:
		return nil, apperrors.Wrap(apperrors.ErrConflict, strings.TrimSpace(string(body)))
	default:
		return nil, apperrors.Wrap(
			apperrors.ErrStore,
			fmt.Sprintf("unexpected status %d: %s", res.StatusCode, strings.TrimSpace(string(body))),
		)
	}
}
