package scrape_test

import (
	"context"
	"testing"
	"time"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
	"github.com/wellspentstyle/SaleSite-sub000/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements salesite.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ salesite.DomainLimiter = scrape.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "shop.example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("spaces out requests to the same domain", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10) // 10 req/sec = 100ms between requests

		err := limiter.Wait(context.Background(), "shop.example.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "shop.example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		err := limiter.Wait(context.Background(), "shop.example.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "other.example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(1)

		err := limiter.Wait(context.Background(), "shop.example.com")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "shop.example.com")
		require.Error(t, err)
	})
}
