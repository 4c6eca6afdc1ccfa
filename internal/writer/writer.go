// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/smcctl/internal/poller"
	"github.com/tamzrod/smcctl/internal/status"
)

// blockClient is the exact contract the writer uses.
// It owns block placement and encoding.
type blockClient interface {
	WriteController(s status.Snapshot) error
}

type modbusWriter struct {
	plan Plan
	cli  blockClient
}

func New(plan Plan, cli blockClient) Writer {
	return &modbusWriter{
		plan: plan,
		cli:  cli,
	}
}

// Write delivers one block per controller, absent ones included.
// A failed block does not stop the others.
func (w *modbusWriter) Write(res poller.PollResult) error {
	if w.cli == nil {
		return fmt.Errorf("writer: missing client for endpoint %s", w.plan.Endpoint)
	}

	var errs []string

	for _, s := range res.Controllers {
		if err := w.cli.WriteController(s); err != nil {
			errs = append(errs, fmt.Sprintf(
				"writer: ep=%s controller=%d device=%s err=%v",
				w.plan.Endpoint, s.Index, s.Device, err,
			))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}

	return nil
}
