package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com"

	// apiVersion pins the wire format the adapter was written against
	apiVersion = "2022-06-28"
)

// RecordAPI is the slice of the hosted API the adapter depends on. The
// implementation is selected once at construction: Transport is the
// default, tests and alternative bindings inject their own.
type RecordAPI interface {
	GetDatabase(ctx context.Context, databaseID string) (*Database, error)
	QueryDatabase(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error)
	CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error)
	UpdatePage(ctx context.Context, pageID string, properties PropertyMap) (*Page, error)
}

// Transport talks to the hosted API directly over HTTP
type Transport struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *APILogger
}

// TransportOption configures a Transport
type TransportOption func(*Transport)

// WithBaseURL points the transport at a different API host
func WithBaseURL(baseURL string) TransportOption {
	return func(t *Transport) {
		t.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient swaps the underlying HTTP client
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *Transport) {
		t.httpClient = client
	}
}

// WithAPILogger attaches a call logger
func WithAPILogger(logger *APILogger) TransportOption {
	return func(t *Transport) {
		t.logger = logger
	}
}

// NewTransport constructs a transport with sane defaults
func NewTransport(token string, opts ...TransportOption) *Transport {
	t := &Transport{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: NewAPILogger(false),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetDatabase fetches collection metadata
func (t *Transport) GetDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := t.do(ctx, http.MethodGet, "/v1/databases/"+databaseID, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// QueryDatabase returns one page of collection records
func (t *Transport) QueryDatabase(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
	var resp QueryResponse
	if err := t.do(ctx, http.MethodPost, "/v1/databases/"+databaseID+"/query", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePage writes a new record into a collection
func (t *Transport) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	var page Page
	if err := t.do(ctx, http.MethodPost, "/v1/pages", req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdatePage patches selected properties of an existing record
func (t *Transport) UpdatePage(ctx context.Context, pageID string, properties PropertyMap) (*Page, error) {
	body := struct {
		Properties PropertyMap `json:"properties"`
	}{
		Properties: properties,
	}

	var page Page
	if err := t.do(ctx, http.MethodPatch, "/v1/pages/"+pageID, body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// do performs one authenticated round trip. Calls are single-attempt;
// failures surface to the caller immediately.
func (t *Transport) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		t.logger.LogError(method, path, duration, err)
		observeRequest(method, outcomeError, duration)
		return fmt.Errorf("notion: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	t.logger.LogCall(method, path, duration, resp.StatusCode)

	if resp.StatusCode >= 300 {
		observeRequest(method, outcomeError, duration)
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notion: %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	observeRequest(method, outcomeOK, duration)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("notion: decoding %s %s response: %w", method, path, err)
	}
	return nil
}
