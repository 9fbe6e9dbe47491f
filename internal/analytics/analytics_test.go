package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTrackRecordsEvent(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	core, logs := observer.New(zap.InfoLevel)

	tr := NewLogTracker(clock, zap.New(core).Sugar(), 10)
	params := map[string]string{"user_id": "abc", "language": "English"}
	tr.Track(context.Background(), EventLikelyPurchaser, params)

	params["user_id"] = "mutated"

	recent := tr.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, EventLikelyPurchaser, recent[0].Name)
	assert.Equal(t, "abc", recent[0].Params["user_id"], "params are copied on track")
	assert.Equal(t, start, recent[0].At)

	entries := logs.FilterMessage("analytics: likely_purchaser").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "English", entries[0].ContextMap()["language"])
}

func TestTrackKeepsLimit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tr := NewLogTracker(clock, nil, 2)

	for _, name := range []string{"a", "b", "c"} {
		tr.Track(context.Background(), name, nil)
		clock.Advance(time.Second)
	}

	recent := tr.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "b", recent[0].Name)
	assert.Equal(t, "c", recent[1].Name)
	assert.True(t, recent[1].At.After(recent[0].At))
}
