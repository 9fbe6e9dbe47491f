package toggle

import (
	"testing"

	"github.com/stigoleg/safedot/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedsAutoStart(t *testing.T) {
	tests := []struct {
		manufacturer string
		want         bool
	}{
		{"xiaomi", true},
		{"Xiaomi", true},
		{"OPPO", true},
		{"vivo", true},
		{"Honor", true},
		{" honor ", true},
		{"samsung", false},
		{"Google", false},
		{"", false},
		{"xiaomi-fork", false},
	}

	for _, tt := range tests {
		t.Run(tt.manufacturer, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsAutoStart(tt.manufacturer))
		})
	}
}

func TestAutoStartPromptFiresOnce(t *testing.T) {
	c, store, _ := newController(prefs.DefaultSettings(), &fakeOracle{})

	first, err := c.MaybeShowAutoStartPrompt("xiaomi")
	require.NoError(t, err)
	assert.True(t, first.Has(AutoStartPromptNeeded))
	assert.True(t, store.Bool(prefs.KeyFirstLaunchSeen))

	second, err := c.MaybeShowAutoStartPrompt("xiaomi")
	require.NoError(t, err)
	assert.Empty(t, second.Signals)
}

func TestAutoStartPromptOtherManufacturer(t *testing.T) {
	c, store, _ := newController(prefs.DefaultSettings(), &fakeOracle{})

	for i := 0; i < 2; i++ {
		res, err := c.MaybeShowAutoStartPrompt("samsung")
		require.NoError(t, err)
		assert.Empty(t, res.Signals)
	}
	assert.False(t, store.Bool(prefs.KeyFirstLaunchSeen))
	assert.Zero(t, store.Writes())
}

func TestAutoStartPromptAlreadySeen(t *testing.T) {
	s := prefs.DefaultSettings()
	s.FirstLaunchSeen = true
	c, _, _ := newController(s, &fakeOracle{})

	res, err := c.MaybeShowAutoStartPrompt("vivo")
	require.NoError(t, err)
	assert.Empty(t, res.Signals)
}

func TestAutoStartPromptPersistFailure(t *testing.T) {
	store := failingStore{prefs.NewMemoryStore(prefs.DefaultSettings())}
	c := New(store, &fakeOracle{}, &fakeLauncher{}, nil)

	res, err := c.MaybeShowAutoStartPrompt("oppo")
	assert.Error(t, err)
	assert.Empty(t, res.Signals, "prompt is only shown once it is recorded")
}
