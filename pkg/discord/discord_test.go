package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantID    string
		wantToken string
		wantErr   bool
	}{
		{"valid", "https://discord.com/api/webhooks/123/abc", "123", "abc", false},
		{"surrounding spaces", "  https://discord.com/api/webhooks/123/abc ", "123", "abc", false},
		{"wrong host", "https://example.com/api/webhooks/123/abc", "", "", true},
		{"missing token", "https://discord.com/api/webhooks/123", "", "", true},
		{"empty id", "https://discord.com/api/webhooks//abc", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := parseWebhookURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWebhookURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if id != tt.wantID || token != tt.wantToken {
				t.Errorf("parseWebhookURL() = (%q, %q), want (%q, %q)", id, token, tt.wantID, tt.wantToken)
			}
		})
	}
}

func TestReportBug_RetriesUntilSuccess(t *testing.T) {
	var calls int32
	var got WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.RetryDelay = time.Millisecond
	d, err := newImpl(nil, "id", "token", srv.URL+"/%s/%s", cfg)
	if err != nil {
		t.Fatalf("newImpl() error = %v", err)
	}
	defer d.Close()

	if err := d.ReportBug(context.Background(), "panic: boom"); err != nil {
		t.Fatalf("ReportBug() error = %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if len(got.Embeds) != 1 || !strings.Contains(got.Embeds[0].Description, "panic: boom") {
		t.Errorf("payload = %+v", got)
	}
	if got.Embeds[0].Color != ColorError {
		t.Errorf("color = %d, want %d", got.Embeds[0].Color, ColorError)
	}
}

func TestNewFromParts_RequiresBoth(t *testing.T) {
	if _, err := NewFromParts(nil, "", "token"); err == nil {
		t.Error("NewFromParts() with empty id should fail")
	}
}
