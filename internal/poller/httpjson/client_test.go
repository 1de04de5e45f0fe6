// internal/poller/httpjson/client_test.go
package httpjson

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGet_SendsSessionCookieAndPlainGET(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 5}`))
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL:     srv.URL,
		CookieName:  "sessionid",
		CookieValue: "abc123",
		Timeout:     time.Second,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	body, err := c.Get(context.Background(), "/warehouse/api/seller/order-notifications/")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(body) != `{"count": 5}` {
		t.Fatalf("unexpected body %q", body)
	}

	if got.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", got.Method)
	}
	if got.URL.Path != "/warehouse/api/seller/order-notifications/" {
		t.Fatalf("unexpected path %q", got.URL.Path)
	}
	if got.ContentLength > 0 {
		t.Fatalf("GET must not carry a body")
	}
	ck, err := got.Cookie("sessionid")
	if err != nil || ck.Value != "abc123" {
		t.Fatalf("session cookie not sent: %v", err)
	}
	for k := range got.Header {
		if strings.HasPrefix(k, "X-") {
			t.Fatalf("unexpected custom header %s", k)
		}
	}
}

func TestGet_NoCookieWhenValueEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.Cookies()) != 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, CookieName: "sessionid"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Get(context.Background(), "/"); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestGet_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.Get(context.Background(), "/warehouse/dashboard/order_counts/")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected code %d", se.Code)
	}
}

func TestGet_BodyTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat(" ", MaxBodyBytes+1)))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Get(context.Background(), "/"); err == nil {
		t.Fatalf("expected size error")
	}
}

func TestGet_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Get(ctx, "/"); err == nil {
		t.Fatalf("expected error on cancelled context")
	}
}

func TestGet_HTTP2TransportStillServesPlainHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, HTTP2: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := c.Get(context.Background(), "/"); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestNew_RejectsRelativeBase(t *testing.T) {
	if _, err := New(Config{BaseURL: "/warehouse"}); err == nil {
		t.Fatalf("expected error for relative base url")
	}
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}

func TestResolve(t *testing.T) {
	c, err := New(Config{BaseURL: "https://shop.example.com/app/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		endpoint string
		want     string
	}{
		{"/warehouse/dashboard/order_counts/", "https://shop.example.com/warehouse/dashboard/order_counts/"},
		{"counts/", "https://shop.example.com/app/counts/"},
		{"https://other.example.com/x/", "https://other.example.com/x/"},
	}

	for _, tt := range tests {
		u, err := c.Resolve(tt.endpoint)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.endpoint, err)
		}
		if u.String() != tt.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tt.endpoint, u, tt.want)
		}
	}
}
