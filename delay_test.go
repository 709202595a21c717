package relay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDelay(t *testing.T) {
	t.Parallel()

	valid := map[string]time.Duration{
		"0":       0,
		"5":       5 * time.Second,
		" 65535 ": 65535 * time.Second,
		"90s":     90 * time.Second,
		"1m30s":   90 * time.Second,
		"250ms":   250 * time.Millisecond,
		"0s":      0,
	}
	for s, want := range valid {
		got, err := ParseDelay(s)
		require.NoError(t, err, s)
		require.Equal(t, want, got, s)
	}

	invalid := []string{"", "  ", "-1", "-5s", "soon", "1.5", "10 s", "99999999999999999999"}
	for _, s := range invalid {
		_, err := ParseDelay(s)
		require.ErrorIs(t, err, ErrInvalidArgument, "%q", s)
	}
}
