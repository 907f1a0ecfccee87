package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const searchPath = "/shopping/flight-offers"

// HTTPTransport posts search payloads to the provider endpoint.
// A zero client timeout preserves the engine's unbounded-wait
// behavior; deployments bound it through config.
type HTTPTransport struct {
	baseURL    string
	apiKey     string
	client     *http.Client
	maxRetries int
}

type HTTPTransportOptions struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

func NewHTTPTransport(opts HTTPTransportOptions) *HTTPTransport {
	return &HTTPTransport{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		client:     &http.Client{Timeout: opts.Timeout},
		maxRetries: opts.MaxRetries,
	}
}

func (t *HTTPTransport) Search(ctx context.Context, payload SearchPayload) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode search payload: %w", err)
	}

	backoff := 200 * time.Millisecond
	for attempt := 0; ; attempt++ {
		resp, err := t.post(ctx, body)
		if err == nil {
			return resp, nil
		}
		if attempt == t.maxRetries || !isTemporary(err) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
			backoff *= 2
		}
	}
}

func (t *HTTPTransport) post(ctx context.Context, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	httpResp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemporary, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	if httpResp.StatusCode == http.StatusTooManyRequests || httpResp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", ErrTemporary, httpResp.StatusCode)
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	if resp.StatusCode == 0 {
		resp.StatusCode = httpResp.StatusCode
	}
	return &resp, nil
}

func isTemporary(err error) bool {
	return errors.Is(err, ErrTemporary)
}
