package services

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// TimestampPolicy selects the time recorded in a new header
type TimestampPolicy string

const (
	// TimestampNow records the current time
	TimestampNow TimestampPolicy = "now"

	// TimestampModTime records the source file's modification time
	TimestampModTime TimestampPolicy = "mtime"
)

// ParseTimestampPolicy validates a policy name, ignoring case
func ParseTimestampPolicy(s string) (TimestampPolicy, error) {
	switch p := TimestampPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case TimestampNow, TimestampModTime:
		return p, nil
	case "":
		return TimestampModTime, nil
	default:
		return "", fmt.Errorf("unknown timestamp policy %q (valid: now, mtime)", s)
	}
}

// ResolveTimestamp returns the time to record for a source. A nil source
// (standard input) always records now, as does a source whose modification
// time cannot be read.
func ResolveTimestamp(policy TimestampPolicy, source *os.File, now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	if policy == TimestampNow || source == nil {
		return now()
	}
	info, err := source.Stat()
	if err != nil {
		return now()
	}
	return info.ModTime()
}
