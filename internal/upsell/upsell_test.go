package upsell

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stigoleg/safedot/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOpener struct {
	urls []string
	err  error
}

func (r *recordingOpener) OpenURL(ctx context.Context, url string) error {
	r.urls = append(r.urls, url)
	return r.err
}

func TestOffer(t *testing.T) {
	d := NewFlow(nil, nil, "", Locale{}).Offer()
	assert.Equal(t, "Requires Upgrade", d.Title)
	assert.Contains(t, d.Message, "PRO version")
	assert.Equal(t, "Get Premium", d.Accept)
	assert.Equal(t, "Never Mind", d.Decline)
}

func TestAccept(t *testing.T) {
	tracker := analytics.NewLogTracker(clockwork.NewFakeClock(), nil, 10)
	opener := &recordingOpener{}
	f := NewFlow(tracker, opener, "install-1", Locale{Language: "English", Country: "US"})

	require.NoError(t, f.Accept(context.Background()))

	events := tracker.Recent()
	require.Len(t, events, 1)
	assert.Equal(t, analytics.EventLikelyPurchaser, events[0].Name)
	assert.Equal(t, map[string]string{
		"user_id":  "install-1",
		"language": "English",
		"location": "US",
	}, events[0].Params)
	assert.Equal(t, []string{StoreURL}, opener.urls)
}

func TestAcceptOpenFailure(t *testing.T) {
	tracker := analytics.NewLogTracker(nil, nil, 10)
	opener := &recordingOpener{err: errors.New("no browser")}

	err := NewFlow(tracker, opener, "id", Locale{}).Accept(context.Background())
	require.Error(t, err)
	assert.Len(t, tracker.Recent(), 1, "intent is tracked even if the store cannot open")
}

func TestLocaleFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  Locale
	}{
		{value: "en_US.UTF-8", want: Locale{Language: "English", Country: "US"}},
		{value: "de_DE", want: Locale{Language: "Deutsch", Country: "DE"}},
		{value: "fr", want: Locale{Language: "français"}},
		{value: "C", want: Locale{}},
		{value: "", want: Locale{}},
		{value: "!!", want: Locale{}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, LocaleFromEnv(tt.value))
		})
	}
}
