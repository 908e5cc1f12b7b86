package statistics

import (
	"math"
	"testing"

	"github.com/lox/rangeodds/equity"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := New(2)

	if stats.Trials() != 0 {
		t.Errorf("expected 0 trials, got %d", stats.Trials())
	}
	p := stats.Players[0]
	if p.Equity() != 0 || p.WinPct() != 0 || p.TiePct() != 0 || p.StdError() != 0 {
		t.Errorf("expected zeroed stats for empty campaign, got %+v", p)
	}
}

func TestStatisticsAdd(t *testing.T) {
	stats := New(2)

	// Player 0 wins twice, one split pot.
	stats.Add(&equity.Result{Winners: []int{0}})
	stats.Add(&equity.Result{Winners: []int{0}})
	stats.Add(&equity.Result{Winners: []int{0, 1}})

	if stats.Trials() != 3 {
		t.Fatalf("expected 3 trials, got %d", stats.Trials())
	}

	p0 := stats.Players[0]
	if p0.Wins != 2 || p0.Ties != 1 {
		t.Errorf("player 0: wins=%d ties=%d, want 2/1", p0.Wins, p0.Ties)
	}
	wantEquity := (2.0 + 0.5) / 3.0
	if math.Abs(p0.Equity()-wantEquity) > 1e-12 {
		t.Errorf("player 0 equity = %f, want %f", p0.Equity(), wantEquity)
	}

	p1 := stats.Players[1]
	if p1.Wins != 0 || p1.Ties != 1 {
		t.Errorf("player 1: wins=%d ties=%d, want 0/1", p1.Wins, p1.Ties)
	}
	if math.Abs(p1.TiePct()-1.0/3.0) > 1e-12 {
		t.Errorf("player 1 tie pct = %f", p1.TiePct())
	}
}

func TestStatisticsMerge(t *testing.T) {
	a := New(2)
	b := New(2)
	a.Add(&equity.Result{Winners: []int{0}})
	b.Add(&equity.Result{Winners: []int{1}})
	b.Add(&equity.Result{Winners: []int{0, 1}})

	a.Merge(b)

	if a.Trials() != 3 {
		t.Fatalf("expected 3 merged trials, got %d", a.Trials())
	}
	if a.Players[0].Wins != 1 || a.Players[0].Ties != 1 {
		t.Errorf("player 0 after merge: %+v", a.Players[0])
	}
	if a.Players[1].Wins != 1 || a.Players[1].Ties != 1 {
		t.Errorf("player 1 after merge: %+v", a.Players[1])
	}
}

func TestStdErrorShrinksWithTrials(t *testing.T) {
	small := PlayerStats{Wins: 5, Trials: 10}
	large := PlayerStats{Wins: 500, Trials: 1000}

	if small.StdError() <= large.StdError() {
		t.Errorf("standard error should shrink with more trials: %f vs %f",
			small.StdError(), large.StdError())
	}
	if large.ConfidenceHalfWidth() <= 0 {
		t.Errorf("confidence half-width should be positive")
	}
}

func TestEquityHalvesTies(t *testing.T) {
	p := PlayerStats{Ties: 10, Trials: 10}
	if p.Equity() != 0.5 {
		t.Errorf("all-tie equity = %f, want 0.5", p.Equity())
	}
}
