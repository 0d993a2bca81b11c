package repository

import "posturecorrector/internal/models"

// EventRepository defines the interface for posture event persistence.
type EventRepository interface {
	// Create operations
	Insert(event *models.PostureEvent) (int64, error)

	// Read operations
	GetRecent(limit int) ([]models.PostureEvent, error)
	GetByType(eventType string, limit int) ([]models.PostureEvent, error)
	CountByType(eventType string) (int, error)

	// Delete operations
	DeleteAll() error
}
