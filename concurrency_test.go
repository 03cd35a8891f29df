package timetable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/coursecraft/timetable/internal/ttfixture"
	"github.com/coursecraft/timetable/internal/ttlog"
)

// TestConcurrentSolves runs several scenarios through the same solve entry
// point concurrently, per spec section 5: nothing in Solve's signature is
// shared mutable state, so independent calls must not interfere.
func TestConcurrentSolves(t *testing.T) {
	scenarios := []Inputs{
		ttfixture.ScenarioA(),
		ttfixture.ScenarioA(),
		ttfixture.ScenarioA(),
	}

	results := make([]Result, len(scenarios))

	g, ctx := errgroup.WithContext(context.Background())
	for i, in := range scenarios {
		i, in := i, in
		g.Go(func() error {
			in.Config.Limits.MaxTimeInSeconds = 15
			in.Config.Limits.NumSearchWorkers = 8
			solveCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			result, err := Solve(solveCtx, in, ttlog.Nop())
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	require.NoError(t, g.Wait())
	for _, result := range results {
		assert.True(t, result.Status.Succeeded())
		assert.NotEmpty(t, result.Placements)
	}
}
