package bankregistry_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fiscalkit/pkg/bankregistry"
)

type countingRegistry struct {
	calls atomic.Int32
	next  bankregistry.Registry
}

func (c *countingRegistry) Lookup(ctx context.Context, abi string) (bankregistry.Bank, error) {
	c.calls.Add(1)
	return c.next.Lookup(ctx, abi)
}

func newCounting(t *testing.T) *countingRegistry {
	t.Helper()
	reg, err := bankregistry.NewStatic(
		bankregistry.Bank{ABI: "11111", Name: "Banca Uno"},
		bankregistry.Bank{ABI: "22222", Name: "Banca Due"},
		bankregistry.Bank{ABI: "33333", Name: "Banca Tre"},
	)
	require.NoError(t, err)
	return &countingRegistry{next: reg}
}

func TestCachedHitsAndMisses(t *testing.T) {
	t.Parallel()

	src := newCounting(t)
	c := bankregistry.NewCached(src, 8)
	ctx := context.Background()

	for range 3 {
		b, err := c.Lookup(ctx, "11111")
		require.NoError(t, err)
		assert.Equal(t, "Banca Uno", b.Name)
	}
	assert.EqualValues(t, 1, src.calls.Load())

	for range 2 {
		_, err := c.Lookup(ctx, "99999")
		assert.ErrorIs(t, err, bankregistry.ErrBankNotFound)
	}
	assert.EqualValues(t, 2, src.calls.Load())
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, err := c.Lookup(ctx, "11111")
	require.NoError(t, err)
	assert.EqualValues(t, 3, src.calls.Load())
}

func TestCachedEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	src := newCounting(t)
	c := bankregistry.NewCached(src, 2)
	ctx := context.Background()

	_, _ = c.Lookup(ctx, "11111")
	_, _ = c.Lookup(ctx, "22222")
	_, _ = c.Lookup(ctx, "11111") // 22222 is now the oldest
	_, _ = c.Lookup(ctx, "33333") // evicts 22222
	require.EqualValues(t, 3, src.calls.Load())
	assert.Equal(t, 2, c.Len())

	_, _ = c.Lookup(ctx, "11111")
	assert.EqualValues(t, 3, src.calls.Load())

	_, _ = c.Lookup(ctx, "22222")
	assert.EqualValues(t, 4, src.calls.Load())
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("registry unavailable")
	var calls atomic.Int32
	c := bankregistry.NewCached(bankregistry.RegistryFunc(func(ctx context.Context, abi string) (bankregistry.Bank, error) {
		calls.Add(1)
		return bankregistry.Bank{}, boom
	}), 0)

	for range 3 {
		_, err := c.Lookup(context.Background(), "11111")
		assert.ErrorIs(t, err, boom)
	}
	assert.EqualValues(t, 3, calls.Load())
	assert.Equal(t, 0, c.Len())
}

func TestCachedConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := bankregistry.NewCached(newCounting(t), 2)
	ctx := context.Background()
	codes := []string{"11111", "22222", "33333", "44444"}

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				_, _ = c.Lookup(ctx, codes[(i+j)%len(codes)])
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 2)
}
