package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Port              int
	CameraIndex       int
	ModelPath         string
	ConfigPath        string
	CalibrationFrames int     // Ile klatek zbierać podczas kalibracji
	ThresholdMargin   float64 // Margines w stopniach odejmowany od średniej z kalibracji
	AlertCooldown     int     // Minimalny odstęp między alertami w sekundach
	SoundFile         string
	SoundPlayer       string
	MinConfidence     float64 // Minimalna pewność detekcji punktu ciała
	DatabasePath      string
	SnapshotDirectory string
	SnapshotLimit     int
	SnapshotInterval  int // Co ile sekund zapisywać bufor migawek na dysk
	LogDirectory      string
}

func Load() *Config {
	return &Config{
		Port:              getEnvAsInt("PORT", 8080),
		CameraIndex:       getEnvAsInt("CAMERA_INDEX", 0),
		ModelPath:         getEnv("MODEL_PATH", filepath.Join(".", "internal", "services", "pose", "pose_iter_440000.caffemodel")),
		ConfigPath:        getEnv("CONFIG_PATH", filepath.Join(".", "internal", "services", "pose", "pose_deploy_linevec.prototxt")),
		CalibrationFrames: getEnvAsInt("CALIBRATION_FRAMES", 30),
		ThresholdMargin:   getEnvAsFloat("THRESHOLD_MARGIN", 10),
		AlertCooldown:     getEnvAsInt("ALERT_COOLDOWN", 10), // 10 sekund między alertami
		SoundFile:         getEnv("SOUND_FILE", "alert.wav"),
		SoundPlayer:       getEnv("SOUND_PLAYER", "aplay"),
		MinConfidence:     getEnvAsFloat("MIN_CONFIDENCE", 0.5),
		DatabasePath:      getEnv("DB_PATH", filepath.Join(".", "data", "posture.db")),
		SnapshotDirectory: getEnv("SNAPSHOT_DIR", filepath.Join(".", "snapshots")),
		SnapshotLimit:     getEnvAsInt("SNAPSHOT_LIMIT", 7),
		SnapshotInterval:  getEnvAsInt("SNAPSHOT_INTERVAL", 30),
		LogDirectory:      getEnv("LOG_DIR", filepath.Join(".", "logs")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
