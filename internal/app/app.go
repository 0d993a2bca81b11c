package app

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gocv.io/x/gocv"

	"posturecorrector/internal/config"
	"posturecorrector/internal/logger"
	"posturecorrector/internal/repository"
	"posturecorrector/internal/repository/sqlite"
	"posturecorrector/internal/routes"
	"posturecorrector/internal/services/alert"
	"posturecorrector/internal/services/capture"
	"posturecorrector/internal/services/monitor"
	"posturecorrector/internal/services/overlay"
	"posturecorrector/internal/services/pose"
	"posturecorrector/internal/services/storage"
	wshub "posturecorrector/internal/services/websocket"
)

type App struct {
	config    *config.Config
	logger    *logger.Logger
	db        *sqlite.DB
	events    repository.EventRepository
	estimator *pose.EstimatorService
	session   *monitor.Session
	renderer  *overlay.Renderer
	hub       *wshub.HubService
	store     *monitor.StatusStore
	snapshots *storage.SnapshotService
}

// NewApp wires the whole pipeline. Pose-model load failure and an
// unopenable database are startup errors.
func NewApp() (*App, error) {
	cfg := config.Load()
	log := logger.NewLogger(cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %v", err)
	}
	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	events := sqlite.NewEventRepository(db)

	estimator, err := pose.NewEstimatorService(cfg, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	sink := alert.NewSoundSink(cfg.SoundFile, cfg.SoundPlayer)

	return &App{
		config:    cfg,
		logger:    log,
		db:        db,
		events:    events,
		estimator: estimator,
		session:   monitor.NewSession(cfg, sink, events, log),
		renderer:  overlay.NewRenderer(cfg.MinConfidence),
		hub:       wshub.NewHubService(log),
		store:     monitor.NewStatusStore(),
		snapshots: storage.NewSnapshotService(cfg.SnapshotDirectory, cfg.SnapshotLimit, log),
	}, nil
}

// Run starts the background services and drives the frame loop until the
// quit key is pressed or the camera stream ends.
func (a *App) Run() error {
	defer a.db.Close()
	defer a.estimator.Close()

	go a.hub.Run()
	go a.snapshots.Run(a.config.SnapshotInterval)
	defer a.snapshots.Flush()

	router := routes.SetupRoutes(a.hub, a.store, a.events, a.config, a.logger)
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", a.config.Port), router); err != nil {
			a.logger.Error("HTTP server stopped: %v", err)
		}
	}()

	fmt.Printf("🧍 Posture Corrector\n")
	fmt.Printf("📍 URL: http://localhost:%d\n", a.config.Port)
	fmt.Printf("📷 Camera index: %d\n", a.config.CameraIndex)
	fmt.Printf("🤖 Pose model: %s\n", a.config.ModelPath)
	fmt.Printf("🔊 Alert sound: %s\n", a.config.SoundFile)

	device, err := capture.Open(a.config, a.logger)
	if err != nil {
		return err
	}
	defer device.Close()

	return a.frameLoop(device)
}

// maxFailedReads is how many consecutive failed reads count as the
// stream being exhausted rather than a transient glitch.
const maxFailedReads = 100

func (a *App) frameLoop(device *capture.Device) error {
	frame := gocv.NewMat()
	defer frame.Close()

	failedReads := 0
	for {
		if !device.ReadMirrored(&frame) {
			// Odczyt klatki nie powiódł się - spróbuj ponownie
			failedReads++
			if failedReads >= maxFailedReads {
				return fmt.Errorf("camera stream exhausted after %d failed reads", failedReads)
			}
			continue
		}
		failedReads = 0

		now := time.Now()
		update := a.processFrame(&frame, now)

		a.store.Set(update)
		a.broadcast(update, frame)

		if update.AlertFired {
			a.saveAlertSnapshot(frame)
		}

		if quit := device.Show(frame); quit {
			a.logger.Info("Quit key pressed, shutting down")
			return nil
		}
	}
}

// processFrame runs pose estimation and the posture pipeline over one
// frame, annotating it in place.
func (a *App) processFrame(frame *gocv.Mat, now time.Time) monitor.StatusUpdate {
	body, detected, err := a.estimator.EstimateBody(*frame)
	if err != nil {
		a.logger.Error("Pose estimation failed: %v", err)
	}

	if !detected {
		// No body in frame: no overlays, no calibration sample.
		collected, window := a.session.Progress()
		return monitor.StatusUpdate{
			Calibrated:        a.session.Calibrated(),
			Calibrating:       !a.session.Calibrated(),
			CollectedSamples:  collected,
			CalibrationWindow: window,
			Timestamp:         now,
		}
	}

	m := monitor.Measure(body, frame.Cols(), frame.Rows())
	result := a.session.Observe(m.ShoulderAngle, m.NeckAngle, now)
	a.renderer.Draw(frame, body, m, result)

	return monitor.NewStatusUpdate(result, true, now)
}

// saveAlertSnapshot buffers the annotated frame that triggered an alert.
func (a *App) saveAlertSnapshot(frame gocv.Mat) {
	buf, err := gocv.IMEncode(".jpg", frame)
	if err != nil {
		a.logger.Error("Failed to encode alert snapshot: %v", err)
		return
	}
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	a.snapshots.Add(data)
}

// broadcast sends the update to websocket viewers, attaching the
// annotated frame only when someone is watching.
func (a *App) broadcast(update monitor.StatusUpdate, frame gocv.Mat) {
	if a.hub.GetClientCount() == 0 {
		return
	}

	buf, err := gocv.IMEncode(".jpg", frame)
	if err != nil {
		a.logger.Error("Failed to encode frame: %v", err)
	} else {
		update.Frame = base64.StdEncoding.EncodeToString(buf.GetBytes())
		buf.Close()
	}

	msg, err := json.Marshal(update)
	if err != nil {
		a.logger.Error("Failed to marshal status update: %v", err)
		return
	}
	a.hub.Broadcast(msg)
}
