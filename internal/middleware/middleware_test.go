package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vaultpass/pwstrength/internal/auth"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := RateLimit(ctx, 0.001, 2)(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("second client status = %d, want 200", rec.Code)
	}
}

func TestEvictIdle(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	now := time.Now()
	rl.getLimiter("old", now.Add(-time.Hour))
	rl.getLimiter("new", now)

	if n := rl.evictIdle(now.Add(-visitorIdleTimeout)); n != 1 {
		t.Errorf("evictIdle() = %d, want 1", n)
	}
	if _, ok := rl.visitors["new"]; !ok {
		t.Error("recent visitor was evicted")
	}
	if _, ok := rl.visitors["old"]; ok {
		t.Error("idle visitor was kept")
	}
}

func TestBearerAuth(t *testing.T) {
	secret := "test-secret"
	valid, err := auth.GenerateToken("client-a", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	h := BearerAuth(secret)(okHandler)

	tests := []struct {
		name    string
		header  string
		want    int
		wantErr string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "missing authorization header"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "invalid authorization format"},
		{"no token", "Bearer", http.StatusUnauthorized, "invalid authorization format"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "invalid authorization format"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.wantErr != "" && !strings.Contains(rec.Body.String(), tt.wantErr) {
				t.Errorf("body = %q, want error %q", rec.Body.String(), tt.wantErr)
			}
		})
	}
}

func TestLoggerRecordsSubject(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken("client-a", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := Logger(logger)(BearerAuth(secret)(okHandler))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if out := buf.String(); !strings.Contains(out, "subject=client-a") || !strings.Contains(out, "status=200") {
		t.Errorf("log output missing subject: %s", out)
	}

	buf.Reset()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil))
	if out := buf.String(); strings.Contains(out, "subject=") || !strings.Contains(out, "status=401") {
		t.Errorf("unauthenticated log line = %s", out)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", strings.NewReader(`{"password":"hunter2"}`))
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{"method=POST", "path=/api/v1/classify", "status=418"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
	if strings.Contains(out, "hunter2") {
		t.Errorf("log output leaked request body: %s", out)
	}
}
