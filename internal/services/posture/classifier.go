package posture

import "posturecorrector/internal/services/calibration"

// Status is the per-frame posture verdict.
type Status string

const (
	Good Status = "Good Posture"
	Poor Status = "Poor Posture"
)

// Classifier compares live angles against the calibrated thresholds.
// Lower angle means more forward/downward tilt, hence the inverted
// comparison. There is no hysteresis; the alert path debounces by time.
type Classifier struct {
	thresholds calibration.Thresholds
}

func NewClassifier(thresholds calibration.Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Classify returns Poor if either angle has dropped below its threshold.
func (c *Classifier) Classify(shoulderAngle, neckAngle float64) Status {
	if shoulderAngle < c.thresholds.Shoulder || neckAngle < c.thresholds.Neck {
		return Poor
	}
	return Good
}

// Thresholds returns the thresholds the classifier was built with.
func (c *Classifier) Thresholds() calibration.Thresholds {
	return c.thresholds
}
