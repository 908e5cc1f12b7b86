package analysis

import (
	"fmt"
	"strings"

	"github.com/lox/rangeodds/poker"
)

// Range is a parsed player range: an ordered collection of combination
// sources contributed by the notation parts.
type Range struct {
	sources []CombinationSource
}

// NewRange builds a range directly from sources.
func NewRange(sources ...CombinationSource) *Range {
	return &Range{sources: sources}
}

// ParseRange parses standard range notation into a Range. Parts are
// comma separated and may be shorthand tokens ("AA", "AKs", "QJo",
// "AK"), plus-ranges ("TT+", "AJo+", "KTs+"), dash-ranges ("22-66",
// "A5s-A2s") or literal pairs ("AsAh").
func ParseRange(notation string) (*Range, error) {
	r := &Range{}

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := r.addPart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	if len(r.sources) == 0 {
		return nil, fmt.Errorf("empty range notation %q", notation)
	}
	return r, nil
}

// MustParseRange parses range notation and panics on error (for tests).
func MustParseRange(notation string) *Range {
	r, err := ParseRange(notation)
	if err != nil {
		panic(err)
	}
	return r
}

// Add appends a source to the range.
func (r *Range) Add(src CombinationSource) {
	r.sources = append(r.sources, src)
}

// Sources returns the sources in the order they were added.
func (r *Range) Sources() []CombinationSource {
	return r.sources
}

// Combinations returns the deduplicated union of all sources.
func (r *Range) Combinations() []poker.CardPair {
	return Union(r.sources...)
}

// Size returns the number of distinct pairs the range denotes.
func (r *Range) Size() int {
	return len(r.Combinations())
}

func (r *Range) addPart(part string) error {
	// Literal pairs like "AsAh" are four characters ending in a suit.
	if len(part) == 4 && isSuitChar(part[1]) && isSuitChar(part[3]) {
		hole, err := ParseHoleCards(part)
		if err != nil {
			return err
		}
		r.Add(hole)
		return nil
	}

	if strings.HasSuffix(part, "+") {
		return r.addPlusRange(strings.TrimSuffix(part, "+"))
	}
	if strings.Contains(part, "-") {
		return r.addDashRange(part)
	}

	tokens, err := parseTokens(part)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		r.Add(t)
	}
	return nil
}

// addPlusRange handles "TT+" (pairs upward) and "ATs+"/"KJo+"/"KT+"
// (kicker upward, stopping below the high card).
func (r *Range) addPlusRange(base string) error {
	high, kicker, suited, offsuit, err := parseBase(base)
	if err != nil {
		return err
	}

	if high == kicker {
		for rank := high; rank <= poker.Ace; rank++ {
			r.Add(RangeToken{High: rank, Kicker: rank})
		}
		return nil
	}

	for rank := kicker; rank < high; rank++ {
		if suited {
			r.Add(RangeToken{High: high, Kicker: rank, Suited: true})
		}
		if offsuit {
			r.Add(RangeToken{High: high, Kicker: rank})
		}
	}
	return nil
}

// addDashRange handles "22-66" (pair runs) and "A5s-A2s" (kicker runs
// with a shared high card).
func (r *Range) addDashRange(part string) error {
	ends := strings.Split(part, "-")
	if len(ends) != 2 {
		return fmt.Errorf("dash range must have exactly two endpoints")
	}

	startHigh, startKicker, suited, offsuit, err := parseBase(strings.TrimSpace(ends[0]))
	if err != nil {
		return err
	}
	endHigh, endKicker, _, _, err := parseBase(strings.TrimSpace(ends[1]))
	if err != nil {
		return err
	}

	// Pair run such as "22-66".
	if startHigh == startKicker && endHigh == endKicker {
		lower, upper := minRank(startHigh, endHigh), maxRank(startHigh, endHigh)
		for rank := lower; rank <= upper; rank++ {
			r.Add(RangeToken{High: rank, Kicker: rank})
		}
		return nil
	}

	// Kicker run such as "A5s-A2s": both endpoints share the high card.
	if startHigh != endHigh {
		return fmt.Errorf("unsupported dash range")
	}
	lower, upper := minRank(startKicker, endKicker), maxRank(startKicker, endKicker)
	for rank := lower; rank <= upper; rank++ {
		if suited {
			r.Add(RangeToken{High: startHigh, Kicker: rank, Suited: true})
		}
		if offsuit {
			r.Add(RangeToken{High: startHigh, Kicker: rank})
		}
	}
	return nil
}

// parseTokens expands a single shorthand token. A bare two-rank token
// like "AK" means both suited and offsuit.
func parseTokens(part string) ([]RangeToken, error) {
	high, kicker, suited, offsuit, err := parseBase(part)
	if err != nil {
		return nil, err
	}

	if high == kicker {
		return []RangeToken{{High: high, Kicker: kicker}}, nil
	}

	var tokens []RangeToken
	if suited {
		tokens = append(tokens, RangeToken{High: high, Kicker: kicker, Suited: true})
	}
	if offsuit {
		tokens = append(tokens, RangeToken{High: high, Kicker: kicker})
	}
	return tokens, nil
}

// parseBase parses a two-or-three character token base into its ranks
// and suitedness flags, normalising so high >= kicker.
func parseBase(base string) (high, kicker poker.Rank, suited, offsuit bool, err error) {
	if len(base) < 2 || len(base) > 3 {
		return 0, 0, false, false, fmt.Errorf("token must be two ranks with an optional s/o modifier")
	}

	high, err = poker.ParseRank(base[0])
	if err != nil {
		return 0, 0, false, false, err
	}
	kicker, err = poker.ParseRank(base[1])
	if err != nil {
		return 0, 0, false, false, err
	}
	if kicker > high {
		high, kicker = kicker, high
	}

	if len(base) == 2 {
		if high == kicker {
			return high, kicker, false, false, nil
		}
		return high, kicker, true, true, nil
	}

	if high == kicker {
		return 0, 0, false, false, fmt.Errorf("pocket pairs cannot have a suited/offsuit modifier")
	}
	switch base[2] {
	case 's':
		return high, kicker, true, false, nil
	case 'o':
		return high, kicker, false, true, nil
	default:
		return 0, 0, false, false, fmt.Errorf("unknown modifier '%c'", base[2])
	}
}

func isSuitChar(c byte) bool {
	switch c {
	case 's', 'h', 'd', 'c', 'S', 'H', 'D', 'C':
		return true
	default:
		return false
	}
}

func minRank(a, b poker.Rank) poker.Rank {
	if a < b {
		return a
	}
	return b
}

func maxRank(a, b poker.Rank) poker.Rank {
	if a > b {
		return a
	}
	return b
}
