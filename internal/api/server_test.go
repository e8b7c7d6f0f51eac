package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fourcast/app"
	"fourcast/domain/backtest"
	"fourcast/domain/draw"
	"fourcast/internal"
	"fourcast/internal/testkit"
)

type stubProvider struct {
	history *draw.History
}

func (p *stubProvider) History(ctx context.Context) (*draw.History, error) {
	return p.history, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	history, err := testkit.Generate(testkit.GeneratorConfig{Draws: 80, Seed: 11})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	logger := internal.NewLogger(internal.LogLevelError)
	return NewServer(app.NewSweepService(logger), &stubProvider{history: history}, nil, backtest.DefaultSweepConfig(), logger)
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestServer_Backtest(t *testing.T) {
	srv := newTestServer(t)

	body := `{"window_sizes":[12,24],"top_k":[1,3],"alpha":1.0}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backtest", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var result backtest.SweepResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(result.Outcomes))
	}
	if result.Outcomes[0].WindowSize != 12 || result.Outcomes[1].WindowSize != 24 {
		t.Errorf("outcome window sizes = %d,%d, want 12,24", result.Outcomes[0].WindowSize, result.Outcomes[1].WindowSize)
	}
	if result.Fingerprint.IsEmpty() {
		t.Error("fingerprint missing from response")
	}
}

func TestServer_BacktestMarkdownFormat(t *testing.T) {
	srv := newTestServer(t)

	body := `{"window_sizes":[12],"format":"markdown"}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backtest", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("content type = %q, want text/markdown", ct)
	}
	if !strings.Contains(rec.Body.String(), "# Backtest Results") {
		t.Errorf("markdown body missing report heading:\n%s", rec.Body.String())
	}
}

func TestServer_BacktestBadBody(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backtest", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestServer_SummariesWithoutRepo(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summaries", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestServer_Profile(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/history/profile", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var profile map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if profile["draws"] != float64(80) {
		t.Errorf("profile draws = %v, want 80", profile["draws"])
	}
}
