package utils

import (
	"fmt"
	"time"

	"github.com/adityagv/homework-hub/internal/constants"
)

// deadlineLayouts are the encodings a deadline may arrive in: the
// datetime-local form value, plus the RFC 3339 shapes older slot payloads and
// API clients use.
var deadlineLayouts = []string{
	constants.DeadlineInputFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDeadline parses a deadline string, trying each known layout in order.
// Malformed values are rejected; nothing downstream ever sees an unparsed
// deadline.
func ParseDeadline(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("deadline is empty")
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized deadline %q", value)
}
