package signer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tokens" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != ContentType {
			t.Errorf("Content-Type = %q, want %q", ct, ContentType)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if req.Alg != "HS384" || req.Key != "k" {
			t.Errorf("req = %+v", req)
		}
		_, _ = w.Write([]byte(`{"token":"a.b.c"}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	token, err := c.Submit(context.Background(), Request{
		Claims: map[string]any{"sub": "x"},
		Key:    "k",
		Alg:    "HS384",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if token != "a.b.c" {
		t.Errorf("token = %q", token)
	}
}

func TestSubmit_NonSuccessReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_code":11001,"message":"Unsupported algorithm"}`))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Submit(context.Background(), Request{Alg: "RS256"})

	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("Submit() error = %v, want *ResponseError", err)
	}
	if respErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", respErr.StatusCode)
	}
	if respErr.Body != `{"error_code":11001,"message":"Unsupported algorithm"}` {
		t.Errorf("Body = %q", respErr.Body)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrMissingBaseURL) {
		t.Errorf("New() error = %v, want ErrMissingBaseURL", err)
	}
}
