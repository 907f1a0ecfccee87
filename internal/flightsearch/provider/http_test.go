package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestHTTPTransportSearch(t *testing.T) {
	var gotPayload SearchPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != searchPath {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(Response{
			StatusCode: 200,
			Data:       json.RawMessage(`[]`),
		})
	}))
	defer server.Close()

	transport := NewHTTPTransport(HTTPTransportOptions{BaseURL: server.URL})
	resp, err := transport.Search(context.Background(), SearchPayload{CurrencyCode: "USD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if gotPayload.CurrencyCode != "USD" {
		t.Fatalf("payload not delivered: %+v", gotPayload)
	}
}

func TestHTTPTransportRetriesTemporaryFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(Response{StatusCode: 200, Data: json.RawMessage(`[]`)})
	}))
	defer server.Close()

	transport := NewHTTPTransport(HTTPTransportOptions{BaseURL: server.URL, MaxRetries: 2})
	if _, err := transport.Search(context.Background(), SearchPayload{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestHTTPTransportFillsStatusFromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"code": 1797, "detail": "no offers found"}},
		})
	}))
	defer server.Close()

	transport := NewHTTPTransport(HTTPTransportOptions{BaseURL: server.URL})
	resp, err := transport.Search(context.Background(), SearchPayload{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 envelope status, got %d", resp.StatusCode)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Detail != "no offers found" {
		t.Fatalf("provider errors not decoded: %+v", resp.Errors)
	}
}

func TestHTTPTransportGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	transport := NewHTTPTransport(HTTPTransportOptions{BaseURL: server.URL, MaxRetries: 1})
	if _, err := transport.Search(context.Background(), SearchPayload{}); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}
