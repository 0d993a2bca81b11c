package handlers

import (
	"encoding/json"
	"net/http"

	"posturecorrector/internal/logger"
	"posturecorrector/internal/services/monitor"
)

// GetStatusHandler serves the latest frame's posture snapshot.
func GetStatusHandler(store *monitor.StatusStore, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		update, ok := store.Get()
		if !ok {
			http.Error(w, "No frames processed yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(update); err != nil {
			logger.Error("Error encoding status response: %v", err)
		}
	}
}
