package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cnk-ceneka/cnk/internal/retry"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
		want    string
	}{
		{"empty", "", true, ""},
		{"blank", "   ", true, ""},
		{"relative", "not a url", true, ""},
		{"trailing slash", "https://api.example.com/", false, "https://api.example.com"},
		{"plain", "http://localhost:3000", false, "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.baseURL, Options{})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.BaseURL() != tt.want {
				t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), tt.want)
			}
		})
	}
}

func TestListProperties(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/properties" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q, want 2", got)
		}
		if got := r.URL.Query().Get("limit"); got != "9" {
			t.Errorf("limit = %q, want 9", got)
		}
		if got := r.Header.Get("User-Agent"); got != "cnk/test" {
			t.Errorf("User-Agent = %q", got)
		}
		writeResponse(t, w, `{
			"data": [
				{"id": 7, "title": "Casa Lomas", "sale_value": "2500000", "bedrooms": 3,
				 "property_type_id": "1", "sale_type_id": 2, "sale_status": "disponible",
				 "images": [{"url": "https://img/a.jpg"}]},
				{"id": 8, "title": "Terreno", "sale_value": 900000, "sale_status": "vendida"}
			],
			"pagination": {"total": 19, "pages": 3}
		}`)
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	resp, err := c.ListProperties(context.Background(), 2, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("got %d records, want 2", len(resp.Data))
	}
	first := resp.Data[0]
	if first.ID != 7 || first.Title != "Casa Lomas" {
		t.Errorf("first = %d %q", first.ID, first.Title)
	}
	if string(first.SaleValue) != "2500000" {
		t.Errorf("SaleValue = %q", first.SaleValue)
	}
	if first.SaleTypeID.String() != "2" {
		t.Errorf("SaleTypeID = %q, want 2", first.SaleTypeID)
	}
	if !first.Available() || resp.Data[1].Available() {
		t.Error("availability mismatch")
	}
	if string(resp.Data[1].SaleValue) != "900000" {
		t.Errorf("numeric SaleValue = %q", resp.Data[1].SaleValue)
	}
	if resp.Pagination.Total != 19 {
		t.Errorf("Total = %d, want 19", resp.Pagination.Total)
	}
	if resp.Pagination.Pages == nil || *resp.Pagination.Pages != 3 {
		t.Errorf("Pages = %v, want 3", resp.Pagination.Pages)
	}
}

func TestListPropertiesMissingPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeResponse(t, w, `{"data": [], "pagination": {"total": 0}}`)
	}))
	defer server.Close()

	resp, err := testClient(t, server.URL).ListProperties(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Pagination.Pages != nil {
		t.Errorf("Pages = %d, want nil", *resp.Pagination.Pages)
	}
	if resp.Data == nil {
		t.Error("empty data array decoded as nil")
	}
}

func TestListPropertiesErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"not found", http.StatusNotFound, `{"error":"nope"}`, "unexpected status 404"},
		{"malformed json", http.StatusOK, `{"data": [`, "decoding response"},
		{"missing data", http.StatusOK, `{"pagination": {"total": 3}}`, "no data array"},
		{"wrong shape", http.StatusOK, `{"data": {"id": 1}}`, "decoding response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				writeResponse(t, w, tt.body)
			}))
			defer server.Close()

			_, err := testClient(t, server.URL).ListProperties(context.Background(), 1, 9)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestStatusErrorAs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		writeResponse(t, w, "bad page")
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).ListProperties(context.Background(), 0, 9)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a StatusError", err)
	}
	if se.Code != http.StatusBadRequest || se.Body != "bad page" {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestServerErrorsAreRetried(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeResponse(t, w, `{"data": [{"id": 1}], "pagination": {"total": 1}}`)
	}))
	defer server.Close()

	resp, err := testClient(t, server.URL).ListProperties(context.Background(), 1, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Errorf("got %d records", len(resp.Data))
	}
	if hits.Load() != 3 {
		t.Errorf("hits = %d, want 3", hits.Load())
	}
}

func TestGalleryImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/properties/cloudinary/images" {
			t.Errorf("path = %q", r.URL.Path)
		}
		writeResponse(t, w, `{"success": true, "data": [{"secure_url": " https://res/a.jpg "}, {"secure_url": "https://res/b.jpg"}]}`)
	}))
	defer server.Close()

	resp, err := testClient(t, server.URL).GalleryImages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || len(resp.Data) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Data[0].SecureURL != " https://res/a.jpg " {
		t.Errorf("SecureURL = %q, client must not rewrite URLs", resp.Data[0].SecureURL)
	}
}

func TestGalleryRateLimited(t *testing.T) {
	tests := []struct {
		name   string
		header string
		body   string
		want   string
	}{
		{"body hint", "", `{"retryAt": "2026-10-15T12:00:00Z"}`, "2026-10-15T12:00:00Z"},
		{"header hint", "120", `{}`, "120"},
		{"body wins", "120", `{"retryAt": "later"}`, "later"},
		{"no hint", "", `too many`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				if tt.header != "" {
					w.Header().Set("Retry-After", tt.header)
				}
				w.WriteHeader(http.StatusTooManyRequests)
				writeResponse(t, w, tt.body)
			}))
			defer server.Close()

			_, err := testClient(t, server.URL).GalleryImages(context.Background())
			var rl *RateLimitError
			if !errors.As(err, &rl) {
				t.Fatalf("error %v is not a RateLimitError", err)
			}
			if rl.RetryAt != tt.want {
				t.Errorf("RetryAt = %q, want %q", rl.RetryAt, tt.want)
			}
			if !IsRateLimited(err) {
				t.Error("IsRateLimited = false")
			}
			if hits.Load() != 1 {
				t.Errorf("hits = %d, want 1", hits.Load())
			}
		})
	}
}

func TestOversizedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeResponse(t, w, `{"data": ["`+strings.Repeat("x", maxBodySize)+`"]}`)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).ListProperties(context.Background(), 1, 9)
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("error = %v, want size error", err)
	}
}

func writeResponse(t *testing.T, w http.ResponseWriter, s string) {
	t.Helper()
	if _, err := fmt.Fprint(w, s); err != nil {
		t.Errorf("write response: %v", err)
	}
}

// testClient creates a client with a millisecond retry ladder.
func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	p := retry.Default()
	p.BaseDelay = time.Millisecond
	c, err := NewClient(baseURL, Options{Policy: p, Timeout: time.Second, UserAgent: "cnk/test"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}
