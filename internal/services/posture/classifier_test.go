package posture

import (
	"testing"

	"posturecorrector/internal/services/calibration"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(calibration.Thresholds{Shoulder: 70, Neck: 70})

	tests := []struct {
		name          string
		shoulderAngle float64
		neckAngle     float64
		expected      Status
	}{
		{"both above thresholds", 75, 75, Good},
		{"shoulder below threshold", 65, 75, Poor},
		{"neck below threshold", 75, 65, Poor},
		{"both below thresholds", 60, 60, Poor},
		{"exactly at thresholds", 70, 70, Good},
		{"just under shoulder threshold", 69.99, 75, Poor},
	}

	for _, tt := range tests {
		if got := classifier.Classify(tt.shoulderAngle, tt.neckAngle); got != tt.expected {
			t.Errorf("%s: Classify(%.2f, %.2f) = %q, expected %q",
				tt.name, tt.shoulderAngle, tt.neckAngle, got, tt.expected)
		}
	}
}

func TestClassifier_IndependentThresholds(t *testing.T) {
	classifier := NewClassifier(calibration.Thresholds{Shoulder: 80, Neck: 60})

	if got := classifier.Classify(75, 75); got != Poor {
		t.Errorf("shoulder 75 < 80 should be Poor, got %q", got)
	}
	if got := classifier.Classify(85, 65); got != Good {
		t.Errorf("85/65 against 80/60 should be Good, got %q", got)
	}
}
