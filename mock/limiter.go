package mock

import (
	"context"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
)

var _ salesite.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of salesite.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
