package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"posturecorrector/internal/config"
	"posturecorrector/internal/logger"
	"posturecorrector/internal/models"
	"posturecorrector/internal/repository/sqlite"
	"posturecorrector/internal/services/monitor"
)

func setupTestRepo(t *testing.T) (*sqlite.EventRepository, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "handlers_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	db, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create test database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tempDir)
	}

	return sqlite.NewEventRepository(db), cleanup
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.NewLogger(&config.Config{LogDirectory: t.TempDir()})
}

func TestGetEventsHandler(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	now := time.Now()
	repo.Insert(&models.PostureEvent{Type: models.EventCalibration, ShoulderThreshold: 70, CreatedAt: now})
	repo.Insert(&models.PostureEvent{Type: models.EventAlert, ShoulderAngle: 62, CreatedAt: now.Add(time.Minute)})

	handler := GetEventsHandler(repo, testLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var data EventsData
	if err := json.NewDecoder(rec.Body).Decode(&data); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if data.Length != 2 {
		t.Errorf("returned %d events, expected 2", data.Length)
	}
}

func TestGetEventsHandler_FilterByType(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	now := time.Now()
	repo.Insert(&models.PostureEvent{Type: models.EventCalibration, CreatedAt: now})
	repo.Insert(&models.PostureEvent{Type: models.EventAlert, CreatedAt: now})

	handler := GetEventsHandler(repo, testLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/events?type=alert", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	var data EventsData
	if err := json.NewDecoder(rec.Body).Decode(&data); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if data.Length != 1 || data.Events[0].Type != models.EventAlert {
		t.Errorf("type filter returned %+v", data.Events)
	}
}

func TestGetStatsHandler(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	now := time.Now()
	repo.Insert(&models.PostureEvent{Type: models.EventCalibration, CreatedAt: now})
	repo.Insert(&models.PostureEvent{Type: models.EventAlert, CreatedAt: now})
	repo.Insert(&models.PostureEvent{Type: models.EventAlert, CreatedAt: now})

	handler := GetStatsHandler(repo, testLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/events/stats", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var stats EventStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if stats.Alerts != 2 {
		t.Errorf("alerts = %d, expected 2", stats.Alerts)
	}
	if stats.Calibrations != 1 {
		t.Errorf("calibrations = %d, expected 1", stats.Calibrations)
	}
}

func TestClearEventsHandler(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	repo.Insert(&models.PostureEvent{Type: models.EventAlert, CreatedAt: time.Now()})

	handler := ClearEventsHandler(repo, testLogger(t))

	req := httptest.NewRequest(http.MethodPost, "/api/events/clear", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, expected 204", rec.Code)
	}

	events, _ := repo.GetRecent(10)
	if len(events) != 0 {
		t.Errorf("expected empty history, got %d events", len(events))
	}
}

func TestClearEventsHandler_RejectsGet(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	handler := ClearEventsHandler(repo, testLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/api/events/clear", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, expected 405", rec.Code)
	}
}

func TestGetStatusHandler(t *testing.T) {
	store := monitor.NewStatusStore()
	handler := GetStatusHandler(store, testLogger(t))

	// No frames processed yet
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d before any frame, expected 503", rec.Code)
	}

	store.Set(monitor.StatusUpdate{
		Calibrated:    true,
		Status:        "Good Posture",
		ShoulderAngle: 82.5,
		Timestamp:     time.Now(),
	})

	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var update monitor.StatusUpdate
	if err := json.NewDecoder(rec.Body).Decode(&update); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !update.Calibrated || update.Status != "Good Posture" {
		t.Errorf("unexpected snapshot: %+v", update)
	}
}
