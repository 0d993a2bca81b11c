package pose

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"

	"posturecorrector/internal/config"
	"posturecorrector/internal/logger"
)

const (
	// Input side length expected by the OpenPose COCO body model.
	netInputSize = 368
)

// EstimatorService runs DNN pose estimation on camera frames and extracts
// per-keypoint heatmap maxima as named body landmarks.
type EstimatorService struct {
	net           gocv.Net
	minConfidence float64
	logger        *logger.Logger
}

// NewEstimatorService loads the pose network from the model and config
// files. A missing or unloadable model is fatal for the session, so the
// error propagates to the caller instead of degrading silently.
func NewEstimatorService(cfg *config.Config, logger *logger.Logger) (*EstimatorService, error) {
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", cfg.ModelPath)
	}
	if _, err := os.Stat(cfg.ConfigPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", cfg.ConfigPath)
	}

	net := gocv.ReadNet(cfg.ModelPath, cfg.ConfigPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load pose network")
	}

	errBackend := net.SetPreferableBackend(gocv.NetBackendDefault)
	errTarget := net.SetPreferableTarget(gocv.NetTargetCPU)
	if errBackend != nil || errTarget != nil {
		return nil, fmt.Errorf("failed to set preferable backend or target")
	}

	logger.Info("Pose network initialized successfully")

	return &EstimatorService{
		net:           net,
		minConfidence: cfg.MinConfidence,
		logger:        logger,
	}, nil
}

// Close releases the network.
func (s *EstimatorService) Close() {
	s.net.Close()
}

// EstimateBody runs one inference over the frame and returns the detected
// body. The second return is false when no body cleared the confidence
// gate on the landmarks the posture pipeline needs; callers skip the frame.
func (s *EstimatorService) EstimateBody(frame gocv.Mat) (*Body, bool, error) {
	if frame.Empty() {
		return nil, false, fmt.Errorf("frame is empty")
	}

	blob := gocv.BlobFromImage(frame, 1.0/255.0, image.Pt(netInputSize, netInputSize), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	s.net.SetInput(blob, "")

	output := s.net.Forward("")
	defer output.Close()

	// Output layout: [1, parts, heatmapH, heatmapW]. Reshape to one row
	// per part, each row a flattened heatmap.
	sz := output.Size()
	if len(sz) < 4 {
		return nil, false, fmt.Errorf("unexpected network output shape %v", sz)
	}
	parts, heatmapH, heatmapW := sz[1], sz[2], sz[3]

	heatmaps := output.Reshape(1, parts)
	defer heatmaps.Close()

	body := &Body{}
	for part := 0; part < NumKeypoints && part < parts; part++ {
		var best float32
		bestIdx := 0
		for i := 0; i < heatmapH*heatmapW; i++ {
			if conf := heatmaps.GetFloatAt(part, i); conf > best {
				best = conf
				bestIdx = i
			}
		}

		body.Landmarks[part] = Landmark{
			X:          float64(bestIdx%heatmapW) / float64(heatmapW),
			Y:          float64(bestIdx/heatmapW) / float64(heatmapH),
			Confidence: float64(best),
		}
	}

	// The posture pipeline needs both shoulders and the left ear; if any
	// of them is missing there is effectively no body in the frame.
	detected := body.Visible(LeftShoulder, s.minConfidence) &&
		body.Visible(RightShoulder, s.minConfidence) &&
		body.Visible(LeftEar, s.minConfidence)

	return body, detected, nil
}
