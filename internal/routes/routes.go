package routes

import (
	"net/http"

	"posturecorrector/internal/config"
	"posturecorrector/internal/handlers"
	"posturecorrector/internal/logger"
	"posturecorrector/internal/repository"
	"posturecorrector/internal/services/monitor"
	wshub "posturecorrector/internal/services/websocket"
)

// SetupRoutes registers the API endpoints for live viewing, the current
// posture snapshot, the persisted event history and the log files.
func SetupRoutes(hub *wshub.HubService, store *monitor.StatusStore, events repository.EventRepository, cfg *config.Config, logger *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/view", handlers.ViewWebsocketHandler(hub, logger))
	mux.HandleFunc("/api/status", handlers.GetStatusHandler(store, logger))
	mux.HandleFunc("/api/events", handlers.GetEventsHandler(events, logger))
	mux.HandleFunc("/api/events/stats", handlers.GetStatsHandler(events, logger))
	mux.HandleFunc("/api/events/clear", handlers.ClearEventsHandler(events, logger))

	// Log endpoints
	mux.HandleFunc("/logs/info", handlers.ShowInfoLogsHandler(cfg))
	mux.HandleFunc("/logs/warning", handlers.ShowWarningLogsHandler(cfg))
	mux.HandleFunc("/logs/error", handlers.ShowErrorLogsHandler(cfg))
	mux.HandleFunc("/logs/alert", handlers.ShowAlertLogsHandler(cfg))

	return mux
}
