package hss

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/config"
)

// newTestClient はテスト用HSSサーバーとクライアントを生成するヘルパー
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		RedisHost: "localhost",
		RedisPort: "6379",
		HSSAPIURL: ts.URL,
		Realm:     "example.com",
	}
	return NewClient(cfg)
}

func TestFetchDigestVector(t *testing.T) {
	var gotTraceID string
	var gotReq FetchRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get(HeaderTraceID)
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("request decode failed: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"digest":{"realm":"example.com","qop":"auth","ha1":"d41d8cd98f00b204e9800998ecf8427e"}}`))
	})

	ctx := WithTraceID(context.Background(), "trace-123")
	vec, err := client.Fetch(ctx, &FetchRequest{
		IMPI:   "alice@example.com",
		IMPU:   "sip:alice@example.com",
		Resync: "XYZ",
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if vec.IsAKA() {
		t.Error("IsAKA: got true, want false")
	}
	if vec.Digest.HA1 != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("HA1: got %v", vec.Digest.HA1)
	}
	if gotTraceID != "trace-123" {
		t.Errorf("trace id header: got %v, want trace-123", gotTraceID)
	}
	if gotReq.Resync != "XYZ" {
		t.Errorf("resync forwarded: got %v, want XYZ", gotReq.Resync)
	}
}

func TestFetchAKAVector(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"aka":{"challenge":"abc123","cryptkey":"ck","integritykey":"ik","response":"xres"}}`))
	})

	ctx := WithTraceID(context.Background(), "trace-123")
	vec, err := client.Fetch(ctx, &FetchRequest{IMPI: "alice@example.com", IMPU: "sip:alice@example.com"})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !vec.IsAKA() {
		t.Fatal("IsAKA: got false, want true")
	}
	if vec.AKA.Challenge != "abc123" {
		t.Errorf("Challenge: got %v, want abc123", vec.AKA.Challenge)
	}
}

func TestFetchNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type":"about:blank","title":"Not Found","status":404}`))
	})

	ctx := WithTraceID(context.Background(), "trace-123")
	_, err := client.Fetch(ctx, &FetchRequest{IMPI: "unknown@example.com"})
	if !errors.Is(err, ErrNoVector) {
		t.Errorf("Fetch: got %v, want ErrNoVector", err)
	}
}

func TestFetchServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx := WithTraceID(context.Background(), "trace-123")
	_, err := client.Fetch(ctx, &FetchRequest{IMPI: "alice@example.com"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Fetch: got %T, want *APIError", err)
	}
	if !apiErr.IsServerError() {
		t.Errorf("IsServerError: got false, want true (status %d)", apiErr.StatusCode)
	}
}

func TestFetchInvalidVector(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	ctx := WithTraceID(context.Background(), "trace-123")
	_, err := client.Fetch(ctx, &FetchRequest{IMPI: "alice@example.com"})
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Fetch: got %v, want ErrInvalidResponse", err)
	}
}

func TestFetchTraceIDMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be reached without trace id")
	})

	_, err := client.Fetch(context.Background(), &FetchRequest{IMPI: "alice@example.com"})
	if !errors.Is(err, ErrTraceIDMissing) {
		t.Errorf("Fetch: got %v, want ErrTraceIDMissing", err)
	}
}
