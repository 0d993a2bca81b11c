package capture

import (
	"fmt"

	"gocv.io/x/gocv"

	"posturecorrector/internal/config"
	"posturecorrector/internal/logger"
)

const windowTitle = "Posture Corrector"

// Device bundles the camera handle and the display window. Both are
// process-wide resources: acquired once at startup, released once on
// shutdown through Close.
type Device struct {
	capture *gocv.VideoCapture
	window  *gocv.Window
	logger  *logger.Logger
}

// Open acquires the configured camera and creates the display window.
// A camera that fails to open is fatal for the session.
func Open(cfg *config.Config, logger *logger.Logger) (*Device, error) {
	capture, err := gocv.VideoCaptureDevice(cfg.CameraIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to open camera %d: %v", cfg.CameraIndex, err)
	}

	logger.Info("Camera %d opened", cfg.CameraIndex)

	return &Device{
		capture: capture,
		window:  gocv.NewWindow(windowTitle),
		logger:  logger,
	}, nil
}

// ReadMirrored reads the next frame and mirrors it horizontally, so the
// display behaves like a mirror. Returns false on a failed read; the
// caller retries on the next iteration.
func (d *Device) ReadMirrored(frame *gocv.Mat) bool {
	if ok := d.capture.Read(frame); !ok || frame.Empty() {
		return false
	}
	gocv.Flip(*frame, frame, 1)
	return true
}

// Show displays the frame and polls the keyboard. It returns true when
// the quit key was pressed.
func (d *Device) Show(frame gocv.Mat) (quit bool) {
	d.window.IMShow(frame)
	return d.window.WaitKey(1) == 'q'
}

// Close releases the camera and the window.
func (d *Device) Close() {
	if err := d.capture.Close(); err != nil {
		d.logger.Error("Failed to close camera: %v", err)
	}
	if err := d.window.Close(); err != nil {
		d.logger.Error("Failed to close window: %v", err)
	}
}
