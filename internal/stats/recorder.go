// internal/stats/recorder.go
package stats

import (
	"log/slog"

	"go-chicken-run/internal/event"
)

// Counter is the part of Store the recorder needs.
type Counter interface {
	Increment(key string, delta int) error
}

// Recorder turns gameplay events into counter updates. Write failures are
// logged and dropped.
type Recorder struct {
	counter Counter
	logger  *slog.Logger
}

func NewRecorder(counter Counter, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{counter: counter, logger: logger}
}

// Attach subscribes the recorder to the events it counts.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.Subscribe(event.EnemyKilled, r)
}

func (r *Recorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		r.Add(Kills, 1)
	}
}

// Add increments key and logs on failure.
func (r *Recorder) Add(key string, delta int) {
	if r.counter == nil {
		return
	}
	if err := r.counter.Increment(key, delta); err != nil {
		r.logger.Warn("failed to update stats", "key", key, "error", err)
	}
}
