package relay

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDelay parses a timed_start/timed_stop delay. A bare integer is a
// number of seconds; anything else must be a time.ParseDuration string.
// Negative and malformed values return ErrInvalidArgument.
func ParseDelay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty delay", ErrInvalidArgument)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative delay %q", ErrInvalidArgument, s)
		}
		if n > math.MaxInt64/int64(time.Second) {
			return 0, fmt.Errorf("%w: delay %q out of range", ErrInvalidArgument, s)
		}
		return time.Duration(n) * time.Second, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: delay %q is neither seconds nor a duration", ErrInvalidArgument, s)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: negative delay %q", ErrInvalidArgument, s)
	}
	return d, nil
}
