package scrape

import (
	"context"
	"sync"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
	"golang.org/x/time/rate"
)

var _ salesite.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests per storefront domain. Batches are
// already sequential; this adds the politeness interval when consecutive
// URLs land on the same shop. Burst is 1, so the first request to a
// domain goes through immediately and repeats wait.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter allows rps requests per second to each domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the domain's bucket permits a request, or the context
// is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiterFor(domain).Wait(ctx)
}

func (d *DomainLimiter) limiterFor(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	return limiter
}
