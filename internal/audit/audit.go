package audit

import (
	"context"
	"time"
)

// Entry is one submission outcome. Only outcome metadata is recorded; field
// values and file contents are never written anywhere.
type Entry struct {
	RequestID string
	Outcome   string // "accepted" or the failure reason tag
	Detail    string
	FileCount int
	CreatedAt time.Time
}

// Recorder is an opaque outcome log. The orchestrator calls it after every
// submission; a Recorder error is logged by the caller and never fails the
// submission itself.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Noop discards entries, used when no audit database is configured.
type Noop struct{}

func (Noop) Record(context.Context, Entry) error { return nil }
