package ports

import "github.com/filecoin-project/go-clock"

// Clock is the time source shared by polling, notices and reconciliation.
// Tests drive it with clock.NewMock().
type Clock = clock.Clock

func NewSystemClock() Clock {
	return clock.New()
}
