package calibration

// State describes where the tracker is in its one-shot lifecycle.
type State int

const (
	// Collecting means the tracker is still gathering baseline samples.
	Collecting State = iota
	// Calibrated means thresholds are frozen for the rest of the session.
	Calibrated
)

// Thresholds holds the per-metric alert thresholds derived from the
// baseline, in degrees.
type Thresholds struct {
	Shoulder float64
	Neck     float64
}

// Tracker accumulates baseline posture samples and freezes them into
// per-metric thresholds once the window is full. Calibration happens once
// per session; there is no recalibration path.
type Tracker struct {
	shoulderSamples []float64
	neckSamples     []float64
	window          int
	margin          float64
	state           State
	thresholds      Thresholds
}

// NewTracker creates a tracker that collects window samples and derives
// thresholds as mean minus margin degrees.
func NewTracker(window int, margin float64) *Tracker {
	return &Tracker{
		shoulderSamples: make([]float64, 0, window),
		neckSamples:     make([]float64, 0, window),
		window:          window,
		margin:          margin,
		state:           Collecting,
	}
}

// Add feeds one frame's (shoulder, neck) angle pair into the baseline.
// It returns true exactly once, on the sample that completes the window
// and freezes the thresholds. Calls after calibration are no-ops.
func (t *Tracker) Add(shoulderAngle, neckAngle float64) bool {
	if t.state == Calibrated {
		return false
	}

	t.shoulderSamples = append(t.shoulderSamples, shoulderAngle)
	t.neckSamples = append(t.neckSamples, neckAngle)

	if len(t.shoulderSamples) < t.window {
		return false
	}

	t.thresholds = Thresholds{
		Shoulder: mean(t.shoulderSamples) - t.margin,
		Neck:     mean(t.neckSamples) - t.margin,
	}
	t.state = Calibrated

	// Raw samples are only needed to derive the thresholds.
	t.shoulderSamples = nil
	t.neckSamples = nil

	return true
}

// State returns the tracker's current lifecycle state.
func (t *Tracker) State() State {
	return t.state
}

// Progress returns how many samples have been collected and the window size.
func (t *Tracker) Progress() (collected, window int) {
	if t.state == Calibrated {
		return t.window, t.window
	}
	return len(t.shoulderSamples), t.window
}

// Thresholds returns the frozen thresholds. Valid only once calibrated.
func (t *Tracker) Thresholds() Thresholds {
	return t.thresholds
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
