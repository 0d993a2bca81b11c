package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"posturecorrector/internal/logger"
)

// Snapshot is one annotated frame captured when a posture alert fired.
type Snapshot struct {
	Timestamp string
	Sequence  int
	Data      []byte
}

// SnapshotService buffers alert snapshots in memory and flushes them to
// disk on an interval, so the frame loop never blocks on file I/O.
type SnapshotService struct {
	snapshotsDir string
	snapshots    []Snapshot
	bufferLimit  int
	sequence     int // rosnący numer w nazwie pliku, żeby uniknąć kolizji w tej samej sekundzie
	logger       *logger.Logger
	mu           sync.Mutex
}

func NewSnapshotService(snapshotsDir string, bufferLimit int, logger *logger.Logger) *SnapshotService {
	return &SnapshotService{
		snapshotsDir: snapshotsDir,
		bufferLimit:  bufferLimit,
		snapshots:    make([]Snapshot, 0),
		logger:       logger,
	}
}

func (s *SnapshotService) Run(flushInterval int) {
	ticker := time.NewTicker(time.Duration(flushInterval) * time.Second)

	defer ticker.Stop()
	for {
		<-ticker.C
		s.Flush()
	}
}

// Add buffers an alert snapshot. Once the buffer is full, snapshots are
// dropped until the next flush.
func (s *SnapshotService) Add(imageData []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.snapshots) >= s.bufferLimit {
		return
	}

	s.sequence++
	s.snapshots = append(s.snapshots, Snapshot{
		Timestamp: time.Now().Format("2006-01-02_15-04-05"),
		Sequence:  s.sequence,
		Data:      imageData,
	})
	s.logger.Info("Snapshot buffered: %d/%d", len(s.snapshots), s.bufferLimit)
}

// Flush writes every buffered snapshot to the snapshots directory.
func (s *SnapshotService) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.snapshots) == 0 {
		return
	}

	if err := os.MkdirAll(s.snapshotsDir, 0755); err != nil {
		s.logger.Error("Error creating snapshots directory: %v", err)
		return
	}

	for _, snapshot := range s.snapshots {
		filename := fmt.Sprintf("%s_%04d_poor_posture.jpg", snapshot.Timestamp, snapshot.Sequence)
		fullpath := filepath.Join(s.snapshotsDir, filename)

		if err := os.WriteFile(fullpath, snapshot.Data, 0644); err != nil {
			s.logger.Error("Error saving snapshot %s: %v", filename, err)
			continue
		}
	}

	s.logger.Info("Flushed %d snapshots to disk", len(s.snapshots))
	s.snapshots = s.snapshots[:0]
}
