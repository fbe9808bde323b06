package services

import (
	"context"
	"time"
)

// PaymentGateway confirms an online payment before the order is
// committed. Implementations sit at the collaborator edge; the order
// lifecycle itself stays synchronous.
type PaymentGateway interface {
	Authorize(ctx context.Context, userID uint, amount int64, method string) error
}

// SimGateway approves every payment after an artificial processing
// delay, standing in for a real provider during development.
type SimGateway struct {
	Delay time.Duration
}

func (g SimGateway) Authorize(ctx context.Context, userID uint, amount int64, method string) error {
	if g.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(g.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
