package calibration

import (
	"math"
	"testing"
)

func TestTracker_CollectsUntilWindowFull(t *testing.T) {
	tracker := NewTracker(30, 10)

	for i := 0; i < 29; i++ {
		if done := tracker.Add(80, 80); done {
			t.Fatalf("tracker finalized after %d samples, expected 30", i+1)
		}
		if tracker.State() != Collecting {
			t.Fatalf("state = %v after %d samples, expected Collecting", tracker.State(), i+1)
		}
	}

	collected, window := tracker.Progress()
	if collected != 29 || window != 30 {
		t.Errorf("Progress() = %d/%d, expected 29/30", collected, window)
	}
}

func TestTracker_FinalizesExactlyOnce(t *testing.T) {
	tracker := NewTracker(30, 10)

	finalized := 0
	for i := 0; i < 40; i++ {
		if tracker.Add(80, 75) {
			finalized++
		}
	}

	if finalized != 1 {
		t.Errorf("tracker finalized %d times, expected exactly once", finalized)
	}
	if tracker.State() != Calibrated {
		t.Errorf("state = %v, expected Calibrated", tracker.State())
	}
}

func TestTracker_ThresholdIsMeanMinusMargin(t *testing.T) {
	tracker := NewTracker(30, 10)

	for i := 0; i < 30; i++ {
		tracker.Add(80, 90)
	}

	th := tracker.Thresholds()
	if math.Abs(th.Shoulder-70.0) > 1e-9 {
		t.Errorf("shoulder threshold = %.4f, expected 70.0", th.Shoulder)
	}
	if math.Abs(th.Neck-80.0) > 1e-9 {
		t.Errorf("neck threshold = %.4f, expected 80.0", th.Neck)
	}
}

func TestTracker_ThresholdsAveragePerMetric(t *testing.T) {
	tracker := NewTracker(4, 5)

	samples := [][2]float64{{60, 100}, {70, 110}, {80, 120}, {90, 130}}
	for _, s := range samples {
		tracker.Add(s[0], s[1])
	}

	th := tracker.Thresholds()
	if math.Abs(th.Shoulder-70.0) > 1e-9 { // mean 75 - margin 5
		t.Errorf("shoulder threshold = %.4f, expected 70.0", th.Shoulder)
	}
	if math.Abs(th.Neck-110.0) > 1e-9 { // mean 115 - margin 5
		t.Errorf("neck threshold = %.4f, expected 110.0", th.Neck)
	}
}

func TestTracker_FrozenAfterCalibration(t *testing.T) {
	tracker := NewTracker(2, 10)
	tracker.Add(80, 80)
	tracker.Add(80, 80)

	before := tracker.Thresholds()

	// Samples after calibration must not move the thresholds.
	tracker.Add(10, 10)
	tracker.Add(170, 170)

	if tracker.Thresholds() != before {
		t.Errorf("thresholds changed after calibration: %v -> %v", before, tracker.Thresholds())
	}
}
