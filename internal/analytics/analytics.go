// Package analytics records product events. The reporting backend is not
// part of this module; events are written to the application log.
package analytics

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Event names.
const (
	EventLikelyPurchaser = "likely_purchaser"
)

// Event is a named occurrence with string parameters.
type Event struct {
	Name   string
	Params map[string]string
	At     time.Time
}

// Tracker receives events.
type Tracker interface {
	Track(ctx context.Context, name string, params map[string]string)
}

// LogTracker logs every event and keeps the most recent ones in memory.
type LogTracker struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	logger *zap.SugaredLogger
	recent []Event
	limit  int
}

// NewLogTracker returns a tracker keeping up to limit recent events.
func NewLogTracker(clock clockwork.Clock, logger *zap.SugaredLogger, limit int) *LogTracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if limit <= 0 {
		limit = 50
	}
	return &LogTracker{clock: clock, logger: logger, limit: limit}
}

func (t *LogTracker) Track(ctx context.Context, name string, params map[string]string) {
	ev := Event{Name: name, Params: make(map[string]string, len(params)), At: t.clock.Now()}
	keys := make([]string, 0, len(params))
	for k, v := range params {
		ev.Params[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]interface{}, 0, 2+2*len(keys))
	fields = append(fields, "at", ev.At)
	for _, k := range keys {
		fields = append(fields, k, ev.Params[k])
	}
	t.logger.Infow("analytics: "+name, fields...)

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.recent) == t.limit {
		copy(t.recent, t.recent[1:])
		t.recent = t.recent[:t.limit-1]
	}
	t.recent = append(t.recent, ev)
}

// Recent returns the retained events, oldest first.
func (t *LogTracker) Recent() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.recent))
	copy(out, t.recent)
	return out
}
