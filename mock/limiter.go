package mock

import (
	"context"

	"github.com/cragdex/cragdex"
)

var _ cragdex.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of cragdex.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
