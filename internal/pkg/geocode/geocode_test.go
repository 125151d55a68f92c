package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/reverse" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query")
		}
		if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
			t.Errorf("missing coordinates in query")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"Jalan Sudirman, Jakarta, Indonesia"}`))
	}))
	defer srv.Close()

	client := NewLocationIQClient(srv.URL, "test-key")
	addr, err := client.ReverseGeocode(context.Background(), -6.2, 106.8166)
	if err != nil {
		t.Fatalf("ReverseGeocode() error = %v", err)
	}
	if addr != "Jalan Sudirman, Jakarta, Indonesia" {
		t.Errorf("ReverseGeocode() = %q", addr)
	}
}

func TestReverseGeocode_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	client := NewLocationIQClient(srv.URL, "test-key")
	if _, err := client.ReverseGeocode(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error for API error body")
	}
}

func TestReverseGeocode_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewLocationIQClient(srv.URL, "test-key")
	if _, err := client.ReverseGeocode(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestNoop(t *testing.T) {
	addr, err := Noop{}.ReverseGeocode(context.Background(), -6.2, 106.8166)
	if err != nil || addr != "" {
		t.Errorf("Noop.ReverseGeocode() = (%q, %v), want empty", addr, err)
	}
}
