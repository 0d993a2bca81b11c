package monitor

import (
	"sync"
	"time"
)

// StatusUpdate is the wire form of one processed frame, broadcast to
// websocket viewers and served from the status endpoint.
type StatusUpdate struct {
	Calibrated        bool      `json:"calibrated"`
	Calibrating       bool      `json:"calibrating"`
	CollectedSamples  int       `json:"collectedSamples"`
	CalibrationWindow int       `json:"calibrationWindow"`
	Status            string    `json:"status,omitempty"`
	ShoulderAngle     float64   `json:"shoulderAngle"`
	NeckAngle         float64   `json:"neckAngle"`
	ShoulderThreshold float64   `json:"shoulderThreshold"`
	NeckThreshold     float64   `json:"neckThreshold"`
	AlertFired        bool      `json:"alertFired"`
	BodyDetected      bool      `json:"bodyDetected"`
	Timestamp         time.Time `json:"timestamp"`
	Frame             string    `json:"frame,omitempty"` // annotated frame, base64 JPEG
}

// NewStatusUpdate flattens a frame result into its wire form.
func NewStatusUpdate(result FrameResult, bodyDetected bool, now time.Time) StatusUpdate {
	return StatusUpdate{
		Calibrated:        !result.Calibrating,
		Calibrating:       result.Calibrating,
		CollectedSamples:  result.CollectedSamples,
		CalibrationWindow: result.CalibrationWindow,
		Status:            string(result.Status),
		ShoulderAngle:     result.ShoulderAngle,
		NeckAngle:         result.NeckAngle,
		ShoulderThreshold: result.Thresholds.Shoulder,
		NeckThreshold:     result.Thresholds.Neck,
		AlertFired:        result.AlertFired,
		BodyDetected:      bodyDetected,
		Timestamp:         now,
	}
}

// StatusStore keeps the most recent update for the HTTP status endpoint.
type StatusStore struct {
	mu   sync.RWMutex
	last StatusUpdate
	set  bool
}

func NewStatusStore() *StatusStore {
	return &StatusStore{}
}

// Set replaces the stored update. The frame payload is not kept; it only
// travels over the websocket.
func (s *StatusStore) Set(update StatusUpdate) {
	update.Frame = ""
	s.mu.Lock()
	s.last = update
	s.set = true
	s.mu.Unlock()
}

// Get returns the latest update and whether one has been stored yet.
func (s *StatusStore) Get() (StatusUpdate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.set
}
