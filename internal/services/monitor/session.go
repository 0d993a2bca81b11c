package monitor

import (
	"time"

	"posturecorrector/internal/config"
	"posturecorrector/internal/logger"
	"posturecorrector/internal/models"
	"posturecorrector/internal/repository"
	"posturecorrector/internal/services/alert"
	"posturecorrector/internal/services/calibration"
	"posturecorrector/internal/services/geometry"
	"posturecorrector/internal/services/pose"
	"posturecorrector/internal/services/posture"
)

// Measurement is the per-frame geometry derived from a detected body:
// the three landmarks in pixel coordinates plus the two posture angles.
type Measurement struct {
	LeftShoulder  geometry.Point
	RightShoulder geometry.Point
	LeftEar       geometry.Point
	ShoulderMid   geometry.Point
	ShoulderAngle float64
	NeckAngle     float64
}

// Measure converts the body's normalized landmarks into pixel coordinates
// and computes both tilt angles against the vertical axis.
func Measure(body *pose.Body, frameWidth, frameHeight int) Measurement {
	toPixels := func(idx int) geometry.Point {
		return geometry.Point{
			X: body.Landmarks[idx].X * float64(frameWidth),
			Y: body.Landmarks[idx].Y * float64(frameHeight),
		}
	}

	m := Measurement{
		LeftShoulder:  toPixels(pose.LeftShoulder),
		RightShoulder: toPixels(pose.RightShoulder),
		LeftEar:       toPixels(pose.LeftEar),
	}
	m.ShoulderMid = geometry.Midpoint(m.LeftShoulder, m.RightShoulder)

	// Both angles are measured against a point straight up (y=0) from the
	// vertex; a slumped posture pulls them down toward zero.
	m.ShoulderAngle = geometry.Angle(m.LeftShoulder, m.ShoulderMid, geometry.Point{X: m.ShoulderMid.X, Y: 0})
	m.NeckAngle = geometry.Angle(m.LeftEar, m.LeftShoulder, geometry.Point{X: m.LeftShoulder.X, Y: 0})

	return m
}

// FrameResult is what one observed frame produced, for overlays and
// broadcast.
type FrameResult struct {
	Calibrating       bool
	CollectedSamples  int
	CalibrationWindow int
	JustCalibrated    bool
	Status            posture.Status
	ShoulderAngle     float64
	NeckAngle         float64
	Thresholds        calibration.Thresholds
	AlertFired        bool
}

// Session threads all mutable monitoring state through one object:
// the calibration buffer, the frozen thresholds and the alert cooldown.
// Classification and alerting only start once calibration has finished.
type Session struct {
	tracker    *calibration.Tracker
	classifier *posture.Classifier
	limiter    *alert.Limiter
	events     repository.EventRepository
	logger     *logger.Logger
}

// NewSession creates a monitoring session from the configured calibration
// window, threshold margin and alert cooldown.
func NewSession(cfg *config.Config, sink alert.Sink, events repository.EventRepository, logger *logger.Logger) *Session {
	return &Session{
		tracker: calibration.NewTracker(cfg.CalibrationFrames, cfg.ThresholdMargin),
		limiter: alert.NewLimiter(sink, time.Duration(cfg.AlertCooldown)*time.Second, logger),
		events:  events,
		logger:  logger,
	}
}

// Observe feeds one frame's angles through the pipeline: calibration while
// collecting, then classification and rate-limited alerting. Frames where
// no body was detected must not reach this method.
func (s *Session) Observe(shoulderAngle, neckAngle float64, now time.Time) FrameResult {
	result := FrameResult{
		ShoulderAngle: shoulderAngle,
		NeckAngle:     neckAngle,
	}

	if s.tracker.State() != calibration.Calibrated {
		finished := s.tracker.Add(shoulderAngle, neckAngle)
		result.CollectedSamples, result.CalibrationWindow = s.tracker.Progress()

		if !finished {
			result.Calibrating = true
			return result
		}

		thresholds := s.tracker.Thresholds()
		s.classifier = posture.NewClassifier(thresholds)
		s.logger.Info("Calibration complete. Shoulder threshold: %.1f, Neck threshold: %.1f",
			thresholds.Shoulder, thresholds.Neck)
		s.record(&models.PostureEvent{
			Type:              models.EventCalibration,
			ShoulderAngle:     shoulderAngle,
			NeckAngle:         neckAngle,
			ShoulderThreshold: thresholds.Shoulder,
			NeckThreshold:     thresholds.Neck,
			CreatedAt:         now,
		})

		result.JustCalibrated = true
		result.Thresholds = thresholds
		result.Status = s.classifier.Classify(shoulderAngle, neckAngle)
		return result
	}

	result.CollectedSamples, result.CalibrationWindow = s.tracker.Progress()
	result.Thresholds = s.classifier.Thresholds()
	result.Status = s.classifier.Classify(shoulderAngle, neckAngle)

	if s.limiter.Observe(result.Status == posture.Poor, now) {
		result.AlertFired = true
		s.record(&models.PostureEvent{
			Type:              models.EventAlert,
			ShoulderAngle:     shoulderAngle,
			NeckAngle:         neckAngle,
			ShoulderThreshold: result.Thresholds.Shoulder,
			NeckThreshold:     result.Thresholds.Neck,
			CreatedAt:         now,
		})
	}

	return result
}

// Calibrated reports whether thresholds have been frozen.
func (s *Session) Calibrated() bool {
	return s.tracker.State() == calibration.Calibrated
}

// Progress returns how far calibration has come.
func (s *Session) Progress() (collected, window int) {
	return s.tracker.Progress()
}

// Thresholds returns the frozen thresholds, or zeros while calibrating.
func (s *Session) Thresholds() calibration.Thresholds {
	if s.classifier == nil {
		return calibration.Thresholds{}
	}
	return s.classifier.Thresholds()
}

func (s *Session) record(event *models.PostureEvent) {
	if s.events == nil {
		return
	}
	if _, err := s.events.Insert(event); err != nil {
		s.logger.Error("Failed to store posture event: %v", err)
	}
}
