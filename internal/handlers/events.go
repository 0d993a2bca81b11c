package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"posturecorrector/internal/logger"
	"posturecorrector/internal/models"
	"posturecorrector/internal/repository"
)

type EventsData struct {
	Events []models.PostureEvent `json:"events"`
	Length int                   `json:"length"`
	Limit  int                   `json:"limit"`
}

// GetEventsHandler serves stored posture events, optionally filtered by
// ?type=alert|calibration and bounded by ?limit=N.
func GetEventsHandler(events repository.EventRepository, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventType := r.URL.Query().Get("type")
		limitString := r.URL.Query().Get("limit")

		limit, err := strconv.Atoi(limitString)
		if limit <= 0 || err != nil { // przykladowa wartosc domyslna w przypadku bledow
			limit = 50
		}

		var stored []models.PostureEvent
		if eventType != "" {
			stored, err = events.GetByType(eventType, limit)
		} else {
			stored, err = events.GetRecent(limit)
		}
		if err != nil {
			logger.Error("Failed to load posture events: %v", err)
			http.Error(w, "Unable to load events", http.StatusInternalServerError)
			return
		}

		data := EventsData{
			Events: stored,
			Length: len(stored),
			Limit:  limit,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logger.Error("Error encoding JSON response: %v", err)
		}
	}
}

type EventStats struct {
	Alerts       int `json:"alerts"`
	Calibrations int `json:"calibrations"`
}

// GetStatsHandler serves per-type totals over the stored event history.
func GetStatsHandler(events repository.EventRepository, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := events.CountByType(models.EventAlert)
		if err != nil {
			logger.Error("Failed to count alert events: %v", err)
			http.Error(w, "Unable to load stats", http.StatusInternalServerError)
			return
		}

		calibrations, err := events.CountByType(models.EventCalibration)
		if err != nil {
			logger.Error("Failed to count calibration events: %v", err)
			http.Error(w, "Unable to load stats", http.StatusInternalServerError)
			return
		}

		stats := EventStats{
			Alerts:       alerts,
			Calibrations: calibrations,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.Error("Error encoding JSON response: %v", err)
		}
	}
}

// ClearEventsHandler deletes the stored event history.
func ClearEventsHandler(events repository.EventRepository, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodDelete {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if err := events.DeleteAll(); err != nil {
			logger.Error("Failed to clear posture events: %v", err)
			http.Error(w, "Unable to clear events", http.StatusInternalServerError)
			return
		}

		logger.Info("Posture event history cleared")
		w.WriteHeader(http.StatusNoContent)
	}
}
