package sqlite

import (
	"fmt"

	"posturecorrector/internal/models"
)

// EventRepository implements repository.EventRepository for SQLite.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new SQLite posture event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Insert adds a new posture event record to the database.
func (r *EventRepository) Insert(event *models.PostureEvent) (int64, error) {
	r.db.Lock()
	defer r.db.Unlock()

	result, err := r.db.Conn().Exec(`
		INSERT INTO posture_events (event_type, shoulder_angle, neck_angle, shoulder_threshold, neck_threshold, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, event.Type, event.ShoulderAngle, event.NeckAngle, event.ShoulderThreshold, event.NeckThreshold, event.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert posture event: %w", err)
	}

	return result.LastInsertId()
}

// GetRecent retrieves the newest events, most recent first.
func (r *EventRepository) GetRecent(limit int) ([]models.PostureEvent, error) {
	return r.query(`
		SELECT id, event_type, shoulder_angle, neck_angle, shoulder_threshold, neck_threshold, created_at
		FROM posture_events ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
}

// GetByType retrieves the newest events of one type, most recent first.
func (r *EventRepository) GetByType(eventType string, limit int) ([]models.PostureEvent, error) {
	return r.query(`
		SELECT id, event_type, shoulder_angle, neck_angle, shoulder_threshold, neck_threshold, created_at
		FROM posture_events WHERE event_type = ? ORDER BY created_at DESC, id DESC LIMIT ?
	`, eventType, limit)
}

// CountByType returns how many events of the given type are stored.
func (r *EventRepository) CountByType(eventType string) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	var count int
	err := r.db.Conn().QueryRow(`SELECT COUNT(*) FROM posture_events WHERE event_type = ?`, eventType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posture events: %w", err)
	}

	return count, nil
}

// DeleteAll removes every stored posture event.
func (r *EventRepository) DeleteAll() error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, err := r.db.Conn().Exec(`DELETE FROM posture_events`); err != nil {
		return fmt.Errorf("failed to delete posture events: %w", err)
	}

	return nil
}

func (r *EventRepository) query(query string, args ...interface{}) ([]models.PostureEvent, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	rows, err := r.db.Conn().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posture events: %w", err)
	}
	defer rows.Close()

	var events []models.PostureEvent
	for rows.Next() {
		var event models.PostureEvent
		if err := rows.Scan(&event.ID, &event.Type, &event.ShoulderAngle, &event.NeckAngle,
			&event.ShoulderThreshold, &event.NeckThreshold, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan posture event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}
