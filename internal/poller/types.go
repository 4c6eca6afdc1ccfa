// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/smcctl/internal/status"
)

// Target is one controller slot in the session.
// A nil Reader means the device could not be opened.
type Target struct {
	Device string
	Reader Reader
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	At          time.Time
	Controllers []status.Snapshot // one per target, in target order
}

// Healthy reports whether every present controller answered every read.
func (r PollResult) Healthy() bool {
	for _, s := range r.Controllers {
		if s.Present && s.Health() != status.HealthOK {
			return false
		}
	}
	return true
}
