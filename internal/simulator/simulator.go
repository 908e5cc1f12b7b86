// Package simulator runs Monte Carlo equity campaigns: many
// independent simulations over one matchup, fanned out across workers
// and merged into aggregate statistics.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rangeodds/equity"
	"github.com/lox/rangeodds/internal/randutil"
	"github.com/lox/rangeodds/internal/statistics"
)

// Config holds configuration for running a campaign.
type Config struct {
	Trials  int
	Seed    int64
	Workers int // 0 means one worker per CPU, capped at 8
	Logger  *log.Logger
}

// Simulator runs equity campaigns over a matchup.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the campaign and returns merged statistics. Each worker
// owns an independent Simulation with a seed derived from the campaign
// seed, so results are reproducible for a fixed seed and worker count.
// A sampling dead end in any worker aborts the whole campaign: per the
// driver contract the failure is terminal, not silently retried.
func (s *Simulator) Run(ctx context.Context, matchup *equity.Matchup, ev equity.Evaluator) (*statistics.Statistics, error) {
	if s.config.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", s.config.Trials)
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = min(runtime.NumCPU(), 8)
	}
	workers = min(workers, s.config.Trials)

	logger := s.config.Logger
	if logger != nil {
		logger.Debug("starting campaign",
			"trials", s.config.Trials,
			"players", matchup.Players(),
			"workers", workers,
			"seed", s.config.Seed)
	}

	start := time.Now()
	perWorker := s.config.Trials / workers
	remainder := s.config.Trials % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make([]*statistics.Statistics, workers)

	for w := range workers {
		trials := perWorker
		if w < remainder {
			trials++
		}
		seed := randutil.Derive(s.config.Seed, w)

		g.Go(func() error {
			stats := statistics.New(matchup.Players())
			sim := equity.NewSimulation(matchup, ev, randutil.New(seed))

			for range trials {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := sim.Next()
				if err != nil {
					return err
				}
				stats.Add(result)
			}

			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := statistics.New(matchup.Players())
	for _, stats := range results {
		merged.Merge(stats)
	}

	if logger != nil {
		logger.Debug("campaign finished",
			"trials", merged.Trials(),
			"elapsed", time.Since(start))
	}
	return merged, nil
}
