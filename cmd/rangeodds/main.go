// Command rangeodds estimates range-vs-range showdown equity by Monte
// Carlo simulation.
//
//	rangeodds "AsAh" "QQ+,AKs" -b 3c6dTh -n 200000 --seed 42
//	rangeodds --scenario heads_up.hcl
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rangeodds/analysis"
	"github.com/lox/rangeodds/equity"
	"github.com/lox/rangeodds/eval"
	"github.com/lox/rangeodds/internal/config"
	"github.com/lox/rangeodds/internal/simulator"
	"github.com/lox/rangeodds/internal/statistics"
	"github.com/lox/rangeodds/poker"
)

type CLI struct {
	Ranges   []string `arg:"" optional:"" help:"Player ranges, one per player (e.g. 'AsAh' 'QQ+,AKs')"`
	Board    string   `short:"b" help:"Known community cards (e.g. '3c6dAs')"`
	Trials   int      `short:"n" default:"100000" help:"Number of Monte Carlo trials"`
	Seed     *int64   `help:"Random seed for reproducible results"`
	Workers  int      `help:"Worker count (default: one per CPU, capped at 8)"`
	Scenario string   `type:"existingfile" help:"Load board, ranges and trials from an HCL scenario file"`
	Debug    bool     `help:"Enable debug logging"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	rangeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	equityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	boardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rangeodds"),
		kong.Description("Monte Carlo range-vs-range equity calculator"))

	logger := log.NewWithOptions(os.Stderr, log.Options{})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(&cli, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

type player struct {
	name     string
	notation string
	parsed   *analysis.Range
}

func run(cli *CLI, logger *log.Logger) error {
	players, board, err := buildRequest(cli)
	if err != nil {
		return err
	}

	sources := make([]analysis.CombinationSource, len(players))
	for i, p := range players {
		sources[i] = p.parsed
	}
	matchup, err := equity.NewMatchup(board, sources...)
	if err != nil {
		return err
	}

	var seed int64
	if cli.Seed != nil {
		seed = *cli.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	sim := simulator.New(simulator.Config{
		Trials:  cli.Trials,
		Seed:    seed,
		Workers: cli.Workers,
		Logger:  logger,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background(), matchup, eval.SevenCard{})
	if err != nil {
		return err
	}

	display(players, board, stats, time.Since(start))
	return nil
}

// buildRequest resolves the input source: scenario file or positional
// range arguments.
func buildRequest(cli *CLI) ([]player, poker.CardSet, error) {
	if cli.Scenario != "" {
		if len(cli.Ranges) > 0 {
			return nil, 0, fmt.Errorf("pass either ranges or --scenario, not both")
		}
		scenario, err := config.Load(cli.Scenario)
		if err != nil {
			return nil, 0, err
		}
		cli.Board = scenario.Board
		cli.Trials = scenario.Trials
		if cli.Seed == nil {
			cli.Seed = scenario.Seed
		}
		for _, pc := range scenario.Players {
			cli.Ranges = append(cli.Ranges, pc.Range)
		}
		return parsePlayers(cli, scenario.Players)
	}

	if len(cli.Ranges) < 1 {
		return nil, 0, fmt.Errorf("at least one player range is required")
	}
	return parsePlayers(cli, nil)
}

func parsePlayers(cli *CLI, named []config.PlayerConfig) ([]player, poker.CardSet, error) {
	var board poker.CardSet
	if cli.Board != "" {
		parsed, err := poker.ParseCardSet(cli.Board)
		if err != nil {
			return nil, 0, err
		}
		if parsed.Len() > 5 {
			return nil, 0, fmt.Errorf("board cannot have more than 5 cards, got %d", parsed.Len())
		}
		board = parsed
	}

	players := make([]player, len(cli.Ranges))
	for i, notation := range cli.Ranges {
		parsed, err := analysis.ParseRange(notation)
		if err != nil {
			return nil, 0, fmt.Errorf("player %d: %w", i+1, err)
		}
		name := fmt.Sprintf("Player %d", i+1)
		if named != nil {
			name = named[i].Name
		}
		players[i] = player{name: name, notation: notation, parsed: parsed}
	}
	return players, board, nil
}

func display(players []player, board poker.CardSet, stats *statistics.Statistics, elapsed time.Duration) {
	if board.Len() > 0 {
		fmt.Printf("%s %s\n\n", headerStyle.Render("Board:"), boardStyle.Render(board.String()))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Player"),
		headerStyle.Render("Range"),
		headerStyle.Render("Win"),
		headerStyle.Render("Tie"),
		headerStyle.Render("Equity"))

	for i, p := range players {
		ps := stats.Players[i]
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%.2f%%\t%s\n",
			p.name,
			rangeStyle.Render(truncate(p.notation, 24)),
			ps.WinPct()*100,
			ps.TiePct()*100,
			equityStyle.Render(fmt.Sprintf("%.2f%% ± %.2f", ps.Equity()*100, ps.ConfidenceHalfWidth()*100)))
	}
	w.Flush()

	fmt.Printf("\n%s trials in %s\n", formatCount(stats.Trials()), elapsed.Round(time.Millisecond))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func formatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
