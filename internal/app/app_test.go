package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/matchcenter/internal/config"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:              config.EnvDev,
		HTTPAddr:            ":0",
		ReadTimeout:         time.Second,
		WriteTimeout:        time.Second,
		FootballDataBaseURL: "http://127.0.0.1:1",
		FootballDataTimeout: time.Second,
		DisplayTimezone:     "Europe/Madrid",
		KickoffLayout:       "02.01.2006 ob 15:04",
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	t.Parallel()

	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewHTTPServer_RejectsUnknownTimezone(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.DisplayTimezone = "Mars/Olympus"
	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}
