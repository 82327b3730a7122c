package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxSeconds bounds finish times to a thousand hours
const maxSeconds = 1000 * 3600

// ParseDuration reads a finish time written as H:M:S, M:S or S. Fields
// after the first must be below 60
func ParseDuration(text string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q is not a time", ErrMalformedSubmission, text)
	}

	var total int64
	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return 0, fmt.Errorf("%w: %q is not a time", ErrMalformedSubmission, text)
		}

		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a time", ErrMalformedSubmission, text)
		}
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("%w: %q has a field over 59", ErrMalformedSubmission, text)
		}

		total = total*60 + n
		if total > maxSeconds {
			return 0, fmt.Errorf("%w: %q is too long", ErrMalformedSubmission, text)
		}
	}

	if total == 0 {
		return 0, fmt.Errorf("%w: time cannot be zero", ErrMalformedSubmission)
	}

	return time.Duration(total) * time.Second, nil
}
