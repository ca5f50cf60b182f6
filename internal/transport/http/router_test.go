package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"radio-quiz/internal/app"
	"radio-quiz/internal/domain"
	"radio-quiz/internal/infra/memory"
)

func TestRouterServesPageAndHealth(t *testing.T) {
	service := app.NewQuizService(app.NewQuiz(sampleQuestions(), false, nil), memory.NewProgressStore(domain.ProgressState{}))
	service.Start(context.Background())
	server := httptest.NewServer(NewRouter(service))
	defer server.Close()

	body := get(t, server.URL+"/healthz", http.StatusOK)
	if body != "ok" {
		t.Fatalf("unexpected health body %q", body)
	}
	if page := get(t, server.URL+"/", http.StatusOK); !strings.Contains(page, "new WebSocket") {
		t.Fatalf("expected quiz page, got %q", page)
	}
	get(t, server.URL+"/missing", http.StatusNotFound)
}

func get(t *testing.T, url string, status int) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != status {
		t.Fatalf("get %s: expected %d, got %d", url, status, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}
