package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.CalibrationFrames != 30 {
		t.Errorf("CalibrationFrames = %d, expected 30", cfg.CalibrationFrames)
	}
	if cfg.ThresholdMargin != 10 {
		t.Errorf("ThresholdMargin = %.1f, expected 10", cfg.ThresholdMargin)
	}
	if cfg.AlertCooldown != 10 {
		t.Errorf("AlertCooldown = %d, expected 10", cfg.AlertCooldown)
	}
	if cfg.CameraIndex != 0 {
		t.Errorf("CameraIndex = %d, expected 0", cfg.CameraIndex)
	}
	if cfg.SoundFile != "alert.wav" {
		t.Errorf("SoundFile = %q, expected alert.wav", cfg.SoundFile)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("POSTURE_TEST_INT", "42")
	t.Setenv("POSTURE_TEST_FLOAT", "7.5")
	t.Setenv("POSTURE_TEST_BAD", "abc")

	if got := getEnvAsInt("POSTURE_TEST_INT", 1); got != 42 {
		t.Errorf("getEnvAsInt = %d, expected 42", got)
	}
	if got := getEnvAsFloat("POSTURE_TEST_FLOAT", 1); got != 7.5 {
		t.Errorf("getEnvAsFloat = %f, expected 7.5", got)
	}
	if got := getEnvAsInt("POSTURE_TEST_BAD", 5); got != 5 {
		t.Errorf("getEnvAsInt with invalid value = %d, expected default 5", got)
	}
	if got := getEnv("POSTURE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv = %q, expected fallback", got)
	}
}
