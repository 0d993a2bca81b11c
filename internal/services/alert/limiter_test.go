package alert

import (
	"testing"
	"time"

	"posturecorrector/internal/config"
	"posturecorrector/internal/logger"
)

// recordingSink counts notifications through a channel so tests can wait
// for the async playback goroutine.
type recordingSink struct {
	notified chan string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{notified: make(chan string, 16)}
}

func (s *recordingSink) Notify(message string) error {
	s.notified <- message
	return nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.NewLogger(&config.Config{LogDirectory: t.TempDir()})
}

func TestLimiter_CooldownWindow(t *testing.T) {
	sink := newRecordingSink()
	limiter := NewLimiter(sink, 10*time.Second, testLogger(t))

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	if !limiter.Observe(true, base) {
		t.Error("first poor-posture frame at t=0 should fire")
	}
	if limiter.Observe(true, base.Add(5*time.Second)) {
		t.Error("frame at t=5 is inside the 10s cooldown and must not fire")
	}
	if !limiter.Observe(true, base.Add(11*time.Second)) {
		t.Error("frame at t=11 is past the cooldown and should fire again")
	}

	for i := 0; i < 2; i++ {
		select {
		case <-sink.notified:
		case <-time.After(2 * time.Second):
			t.Fatalf("sink received %d notifications, expected 2", i)
		}
	}
	select {
	case msg := <-sink.notified:
		t.Errorf("unexpected extra notification: %q", msg)
	default:
	}
}

func TestLimiter_GoodPostureNeverFires(t *testing.T) {
	sink := newRecordingSink()
	limiter := NewLimiter(sink, 10*time.Second, testLogger(t))

	now := time.Now()
	for i := 0; i < 50; i++ {
		if limiter.Observe(false, now.Add(time.Duration(i)*time.Second)) {
			t.Fatal("good-posture frames must never fire an alert")
		}
	}

	if !limiter.LastAlertTime().IsZero() {
		t.Error("last alert time should remain zero when nothing fired")
	}
}

func TestLimiter_ConsecutivePoorFramesFireOnce(t *testing.T) {
	sink := newRecordingSink()
	limiter := NewLimiter(sink, 10*time.Second, testLogger(t))

	base := time.Now()
	fired := 0
	// 30 fps worth of poor posture for ~9 seconds
	for i := 0; i < 270; i++ {
		if limiter.Observe(true, base.Add(time.Duration(i)*33*time.Millisecond)) {
			fired++
		}
	}

	if fired != 1 {
		t.Errorf("fired %d alerts inside one cooldown window, expected 1", fired)
	}
}
