// internal/writer/types.go
package writer

import "github.com/tamzrod/smcctl/internal/poller"

// Plan is the fully-built mirror plan.
// Controller i lands at BaseAddress + i*status.SlotsPerController.
type Plan struct {
	Endpoint    string
	UnitID      uint8
	BaseAddress uint16
}

// Writer mirrors poll snapshots into the endpoint.
type Writer interface {
	Write(res poller.PollResult) error
}
