// Package statistics aggregates Monte Carlo trial outcomes into
// per-player equity estimates.
package statistics

import (
	"math"

	"github.com/lox/rangeodds/equity"
)

// PlayerStats tracks one player's outcomes across a campaign.
type PlayerStats struct {
	Wins   int // outright wins
	Ties   int // split pots
	Trials int
}

// WinPct returns the fraction of trials won outright.
func (p PlayerStats) WinPct() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Trials)
}

// TiePct returns the fraction of trials ending in a split pot.
func (p PlayerStats) TiePct() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Ties) / float64(p.Trials)
}

// Equity returns the player's equity estimate: wins plus half of ties.
// Ties are credited at half weight regardless of how many players
// split, which matches heads-up exactly and is the standard estimator
// for multiway reporting.
func (p PlayerStats) Equity() float64 {
	if p.Trials == 0 {
		return 0
	}
	return (float64(p.Wins) + float64(p.Ties)/2.0) / float64(p.Trials)
}

// StdError returns the standard error of the equity estimate, treating
// each trial as a Bernoulli outcome at the estimated equity.
func (p PlayerStats) StdError() float64 {
	if p.Trials < 2 {
		return 0
	}
	eq := p.Equity()
	return math.Sqrt(eq * (1 - eq) / float64(p.Trials))
}

// ConfidenceHalfWidth returns the 95% confidence half-width of the
// equity estimate.
func (p PlayerStats) ConfidenceHalfWidth() float64 {
	return 1.96 * p.StdError()
}

// Statistics accumulates results for all players of one matchup.
type Statistics struct {
	Players []PlayerStats
}

// New creates statistics for the given player count.
func New(players int) *Statistics {
	return &Statistics{Players: make([]PlayerStats, players)}
}

// Add records one evaluated deal.
func (s *Statistics) Add(result *equity.Result) {
	tie := result.Tie()
	for i := range s.Players {
		s.Players[i].Trials++
	}
	for _, w := range result.Winners {
		if tie {
			s.Players[w].Ties++
		} else {
			s.Players[w].Wins++
		}
	}
}

// Merge folds other into s. Both must cover the same players.
func (s *Statistics) Merge(other *Statistics) {
	for i := range s.Players {
		s.Players[i].Wins += other.Players[i].Wins
		s.Players[i].Ties += other.Players[i].Ties
		s.Players[i].Trials += other.Players[i].Trials
	}
}

// Trials returns the number of recorded deals.
func (s *Statistics) Trials() int {
	if len(s.Players) == 0 {
		return 0
	}
	return s.Players[0].Trials
}
