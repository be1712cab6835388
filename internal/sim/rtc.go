package sim

import (
	"sync"
	"time"

	"github.com/hmolin/clockos/internal/model"
)

// SystemRTC adapts the host clock to the real-time-clock boundary.
// Writes are kept as an offset from the host clock, so the simulated
// clock can be set from the menu without touching the system time.
type SystemRTC struct {
	mu     sync.Mutex
	offset time.Duration
}

// Read returns the current simulated time.
func (r *SystemRTC) Read() (model.TimeSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := time.Now().Add(r.offset)
	return model.TimeSample{
		Hours:   t.Hour(),
		Minutes: t.Minute(),
		Seconds: t.Second(),
		Year:    t.Year() % 100,
		Month:   int(t.Month()),
		Day:     t.Day(),
		Weekday: uint8(t.Weekday()) + 1,
	}, nil
}

// Write moves the simulated clock to the given sample.
func (r *SystemRTC) Write(s model.TimeSample) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	target := time.Date(2000+s.Year, time.Month(s.Month), s.Day, s.Hours, s.Minutes, s.Seconds, 0, time.Local)
	r.offset = target.Sub(now)
	return nil
}
