package alert

import (
	"sync"
	"time"

	"posturecorrector/internal/logger"
)

// Limiter rate-limits alert side effects to at most one per cooldown
// window. The last-alert timestamp is shared behind a mutex, so firing
// the sink on a goroutine keeps the global at-most-once guarantee.
type Limiter struct {
	sink          Sink
	cooldown      time.Duration
	lastAlertTime time.Time
	logger        *logger.Logger
	mu            sync.Mutex
}

func NewLimiter(sink Sink, cooldown time.Duration, logger *logger.Logger) *Limiter {
	return &Limiter{
		sink:     sink,
		cooldown: cooldown,
		logger:   logger,
	}
}

// Observe reports one frame's verdict at the given timestamp. It returns
// true when an alert actually fired; consecutive poor-posture frames
// inside the cooldown window are suppressed silently.
func (l *Limiter) Observe(poorPosture bool, now time.Time) bool {
	if !poorPosture {
		return false
	}

	l.mu.Lock()
	if !l.lastAlertTime.IsZero() && now.Sub(l.lastAlertTime) <= l.cooldown {
		l.mu.Unlock()
		return false
	}
	l.lastAlertTime = now
	l.mu.Unlock()

	l.logger.Alert("Poor posture detected! Please sit up straight.")

	// Sound playback can block for the clip's duration; keep it off the
	// frame loop. The timestamp is already claimed above.
	go func() {
		if err := l.sink.Notify("Poor posture detected! Please sit up straight."); err != nil {
			l.logger.Error("Alert sink failed: %v", err)
		}
	}()

	return true
}

// LastAlertTime returns when the limiter last fired.
func (l *Limiter) LastAlertTime() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastAlertTime
}
