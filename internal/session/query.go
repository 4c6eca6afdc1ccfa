// internal/session/query.go
package session

import (
	"github.com/tamzrod/smcctl/internal/poller"
)

// QueryResult is the outcome of query mode.
type QueryResult struct {
	SafeStart []error
	Poll      poller.PollResult
}

// Query releases safe start on every controller, then reads its telemetry once.
func (s *Session) Query() (QueryResult, error) {
	p, err := poller.New(poller.Config{Targets: s.Targets()})
	if err != nil {
		return QueryResult{}, err
	}

	var res QueryResult
	res.SafeStart = s.ExitSafeStart()
	res.Poll = p.PollOnce()
	return res, nil
}
