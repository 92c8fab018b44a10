package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"generate-video-api/application/ports/outbound"
	"generate-video-api/config"
)

func newRenderSubmitter(server *httptest.Server) outbound.RenderSubmitterPort {
	logger := NewZerologWrapper("error")
	fetcher := NewContentFetcher(server.Client(), logger)
	return NewCreatomateRenderSubmitter(fetcher, &config.CreatomateConfig{
		ApiKey:    "test-key",
		RenderURL: server.URL,
	}, logger)
}

func TestCreatomateRenderSubmitter_Submit(t *testing.T) {
	var gotAuth string
	var gotBody creatomateRenderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Error("Failed to decode the request body:", err)
		}
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`[{"url":"https://cdn.example.com/video.mp4","status":"planned"}]`))
	}))
	defer server.Close()

	submission, err := newRenderSubmitter(server).Submit(context.Background(), outbound.SubmitRenderRequest{
		TemplateID: "tpl-123",
		Modifications: map[string]interface{}{
			"Title.text":     "Neon Nights",
			"Image-1.source": "https://cdn.example.com/img1.png",
		},
	})
	if err != nil {
		t.Fatal("Failed to submit the render:", err)
	}

	if submission.URL != "https://cdn.example.com/video.mp4" {
		t.Errorf("unexpected url: %s", submission.URL)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected authorization header: %s", gotAuth)
	}
	if gotBody.TemplateID != "tpl-123" {
		t.Errorf("unexpected template id: %s", gotBody.TemplateID)
	}
	if gotBody.Modifications["Image-1.source"] != "https://cdn.example.com/img1.png" {
		t.Errorf("unexpected modifications: %v", gotBody.Modifications)
	}
}

func TestCreatomateRenderSubmitter_EndpointMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Template not found"}`))
	}))
	defer server.Close()

	_, err := newRenderSubmitter(server).Submit(context.Background(), outbound.SubmitRenderRequest{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Template not found" {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestCreatomateRenderSubmitter_EndpointMessageArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`[{"message":"Invalid modifications"}]`))
	}))
	defer server.Close()

	_, err := newRenderSubmitter(server).Submit(context.Background(), outbound.SubmitRenderRequest{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Invalid modifications" {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestCreatomateRenderSubmitter_FallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("oops"))
	}))
	defer server.Close()

	_, err := newRenderSubmitter(server).Submit(context.Background(), outbound.SubmitRenderRequest{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Failed to start the render job: 500 Internal Server Error" {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestCreatomateRenderSubmitter_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newRenderSubmitter(server).Submit(context.Background(), outbound.SubmitRenderRequest{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Creatomate render response contains no video URL" {
		t.Errorf("unexpected error message: %s", err)
	}
}
