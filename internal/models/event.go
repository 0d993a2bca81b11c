package models

import "time"

// Event types stored in the posture_events table.
const (
	EventCalibration = "calibration"
	EventAlert       = "alert"
)

// PostureEvent is one persisted session event: either the calibration
// completing or a posture alert firing.
type PostureEvent struct {
	ID                int64     `json:"id"`
	Type              string    `json:"type"`
	ShoulderAngle     float64   `json:"shoulderAngle"`
	NeckAngle         float64   `json:"neckAngle"`
	ShoulderThreshold float64   `json:"shoulderThreshold"`
	NeckThreshold     float64   `json:"neckThreshold"`
	CreatedAt         time.Time `json:"createdAt"`
}
