package priority

import (
	"strings"

	"incommand/internal/core/lexicon"
)

// per-match contributions, scaled by the tier weight
const (
	phraseWeight  = 0.3
	keywordWeight = 0.15
)

// SignalMatch is the raw lexicon score for one tier
type SignalMatch struct {
	Score float64
	Terms []string // matched terms in authored casing, match order
}

// scoreTier runs the lexicon over folded text. Phrases score before
// keywords but both always contribute: there is no short-circuit, so the
// cost is a fixed terms x text scan and the result is deterministic
func scoreTier(folded string, tl *lexicon.TierLexicon) SignalMatch {
	var m SignalMatch
	if folded == "" {
		return m
	}
	for _, ph := range tl.Phrases {
		if strings.Contains(folded, ph.Folded) {
			m.Score += phraseWeight * tl.Weight
			m.Terms = append(m.Terms, ph.Raw)
		}
	}
	for _, kw := range tl.Keywords {
		if strings.Contains(folded, kw.Folded) {
			m.Score += keywordWeight * tl.Weight
			m.Terms = append(m.Terms, kw.Raw)
		}
	}
	return m
}
