package alert

import (
	"fmt"
	"os"
	"os/exec"
)

// Sink receives alert side effects. Implementations decide what "notify"
// means; tests substitute a recording sink.
type Sink interface {
	Notify(message string) error
}

// SoundSink plays a short sound file through an external player binary.
// A missing sound file is tolerated: the alert is skipped, not an error.
type SoundSink struct {
	soundFile string
	player    string
}

func NewSoundSink(soundFile, player string) *SoundSink {
	return &SoundSink{
		soundFile: soundFile,
		player:    player,
	}
}

// Notify plays the configured sound if it exists in the working directory.
func (s *SoundSink) Notify(message string) error {
	if _, err := os.Stat(s.soundFile); os.IsNotExist(err) {
		// Brak pliku dźwiękowego - alert tylko w logu i na ekranie
		return nil
	}

	if err := exec.Command(s.player, s.soundFile).Run(); err != nil {
		return fmt.Errorf("failed to play %s: %v", s.soundFile, err)
	}
	return nil
}
