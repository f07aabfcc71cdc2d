package imagery

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDogCEORandom(t *testing.T) {
	photo := pngBytes(t, 8, 6)

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/breeds/image/random":
			fmt.Fprintf(w, `{"message": %q, "status": "success"}`, server.URL+"/breeds/pug/1.png")
		case "/breeds/pug/1.png":
			w.Write(photo)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	source := NewDogCEO(server.URL+"/api/breeds/image/random", 0)
	data, err := source.Random(context.Background())
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if !bytes.Equal(data, photo) {
		t.Errorf("Expected the photo bytes, got %d bytes", len(data))
	}
}

func TestDogCEOErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status error", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"message": "Breed not found", "status": "error"}`))
		}},
		{"missing url", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "success"}`))
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		}},
		{"http 500", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			if _, err := NewDogCEO(server.URL, 0).Random(context.Background()); err == nil {
				t.Errorf("Expected an error for %s", tt.name)
			}
		})
	}
}

func TestDogCEOImageNotFound(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/random" {
			fmt.Fprintf(w, `{"message": %q, "status": "success"}`, server.URL+"/gone.jpg")
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := NewDogCEO(server.URL+"/random", 0).Random(context.Background()); err == nil {
		t.Error("Expected an error when the image download fails")
	}
}
