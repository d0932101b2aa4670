package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadAnimation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"v":1}`))
		case "/broken.json":
			w.Write([]byte(`{"v":`))
		case "/array.json":
			w.Write([]byte(`[1,2]`))
		case "/null.json":
			w.Write([]byte(`null`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	loader := NewLottieLoader(server.Client())
	ctx := context.Background()

	if diff := cmp.Diff(map[string]any{"v": float64(1)}, loader.LoadAnimation(ctx, server.URL+"/ok.json")); diff != "" {
		t.Errorf("Animation mismatch (-want +got):\n%s", diff)
	}
	if got := loader.LoadAnimation(ctx, server.URL+"/missing.json"); got != nil {
		t.Errorf("Expected nil for 404, got %v", got)
	}
	if got := loader.LoadAnimation(ctx, server.URL+"/broken.json"); got != nil {
		t.Errorf("Expected nil for invalid JSON, got %v", got)
	}
	if got := loader.LoadAnimation(ctx, server.URL+"/array.json"); got != nil {
		t.Errorf("Expected nil for top-level array, got %v", got)
	}
	if got := loader.LoadAnimation(ctx, server.URL+"/null.json"); got != nil {
		t.Errorf("Expected nil for null document, got %v", got)
	}
	if got := loader.LoadAnimation(ctx, "://not-a-url"); got != nil {
		t.Errorf("Expected nil for invalid URL, got %v", got)
	}
}
