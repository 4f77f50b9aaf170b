package core

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a globally unique opaque identifier. Task and agent ids are
// generated with it unless the caller supplies its own id source.
func NewID() string {
	return uuid.NewString()
}

// IDFunc produces identifiers. Implementations must be safe for concurrent
// use.
type IDFunc func() string

// Clock abstracts time reads so components can be tested with deterministic
// timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }
