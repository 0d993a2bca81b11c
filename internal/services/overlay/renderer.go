package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"posturecorrector/internal/services/geometry"
	"posturecorrector/internal/services/monitor"
	"posturecorrector/internal/services/pose"
	"posturecorrector/internal/services/posture"
)

var (
	yellow = color.RGBA{R: 255, G: 255, B: 0, A: 0}
	green  = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	red    = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	blue   = color.RGBA{R: 0, G: 0, B: 255, A: 0}
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 0}
)

// Renderer draws the per-frame feedback onto the mirrored camera frame:
// skeleton, measured angles and the calibration or posture status.
type Renderer struct {
	minConfidence float64
}

func NewRenderer(minConfidence float64) *Renderer {
	return &Renderer{minConfidence: minConfidence}
}

// Draw annotates the frame in place.
func (r *Renderer) Draw(frame *gocv.Mat, body *pose.Body, m monitor.Measurement, result monitor.FrameResult) {
	r.drawSkeleton(frame, body)

	r.drawAngle(frame, m.LeftShoulder, m.ShoulderMid,
		geometry.Point{X: m.ShoulderMid.X, Y: 0}, m.ShoulderAngle, blue)
	r.drawAngle(frame, m.LeftEar, m.LeftShoulder,
		geometry.Point{X: m.LeftShoulder.X, Y: 0}, m.NeckAngle, green)

	if result.Calibrating {
		text := fmt.Sprintf("Calibrating... %d/%d", result.CollectedSamples, result.CalibrationWindow)
		gocv.PutText(frame, text, image.Pt(10, 30), gocv.FontHersheySimplex, 1, yellow, 2)
		return
	}

	statusColor := green
	if result.Status == posture.Poor {
		statusColor = red
	}
	gocv.PutText(frame, string(result.Status), image.Pt(10, 30), gocv.FontHersheySimplex, 1, statusColor, 2)

	shoulderText := fmt.Sprintf("Shoulder Angle: %.1f/%.1f", m.ShoulderAngle, result.Thresholds.Shoulder)
	neckText := fmt.Sprintf("Neck Angle: %.1f/%.1f", m.NeckAngle, result.Thresholds.Neck)
	gocv.PutText(frame, shoulderText, image.Pt(10, 60), gocv.FontHersheySimplex, 0.6, white, 1)
	gocv.PutText(frame, neckText, image.Pt(10, 90), gocv.FontHersheySimplex, 0.6, white, 1)
}

// drawSkeleton draws limb lines and joint circles for every landmark that
// cleared the confidence gate.
func (r *Renderer) drawSkeleton(frame *gocv.Mat, body *pose.Body) {
	width := float64(frame.Cols())
	height := float64(frame.Rows())

	toPixels := func(idx int) image.Point {
		return image.Pt(int(body.Landmarks[idx].X*width), int(body.Landmarks[idx].Y*height))
	}

	for _, pair := range pose.Skeleton {
		if !body.Visible(pair[0], r.minConfidence) || !body.Visible(pair[1], r.minConfidence) {
			continue
		}
		gocv.Line(frame, toPixels(pair[0]), toPixels(pair[1]), green, 2)
	}

	for idx := 0; idx < pose.NumKeypoints; idx++ {
		if !body.Visible(idx, r.minConfidence) {
			continue
		}
		gocv.Circle(frame, toPixels(idx), 3, red, -1)
	}
}

// drawAngle draws the two rays of the angle and its readout at the vertex.
func (r *Renderer) drawAngle(frame *gocv.Mat, a, vertex, c geometry.Point, angle float64, clr color.RGBA) {
	ptA := image.Pt(int(a.X), int(a.Y))
	ptB := image.Pt(int(vertex.X), int(vertex.Y))
	ptC := image.Pt(int(c.X), int(c.Y))

	gocv.Line(frame, ptA, ptB, clr, 2)
	gocv.Line(frame, ptC, ptB, clr, 2)
	gocv.PutText(frame, fmt.Sprintf("%d", int(angle)), ptB, gocv.FontHersheySimplex, 0.5, clr, 2)
}
