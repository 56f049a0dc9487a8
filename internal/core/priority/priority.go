// Package priority implements the multi-signal priority classifier for
// free-text incident reports. Scoring runs one pass per tier over the
// injected lexicon pack, applies contextual modifiers and type boosts, then
// arbitrates the winning tier with a confidence and reasoning trace
package priority

import (
	"fmt"
	"strings"

	"incommand/internal/core/lexicon"
)

// Tier is a classification output level
type Tier string

// Tiers in declaration order, most severe first. Declaration order is the
// tie-break everywhere: equal scores resolve to the earlier tier
const (
	TierUrgent Tier = "urgent"
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Tiers is the arbitration order
var Tiers = [4]Tier{TierUrgent, TierHigh, TierMedium, TierLow}

// Match is one classification result. Confidence is clamped to [0.3, 1.0]
type Match struct {
	Priority          Tier     `json:"priority"`
	Confidence        float64  `json:"confidence"`
	Signals           []string `json:"signals"`
	Reasoning         string   `json:"reasoning"`
	ClassifierVersion int      `json:"classifier_version"`
}

// Classifier scores text against the lexicon pack. It holds no mutable
// state: the same input always yields the same Match, and concurrent calls
// are safe without locking
type Classifier struct {
	pack    *lexicon.Pack
	version int
}

// New constructs a Classifier over a compiled pack
func New(p *lexicon.Pack, version int) *Classifier {
	if p == nil {
		panic("priority: nil lexicon pack")
	}
	return &Classifier{pack: p, version: version}
}

// Version returns the stamp applied to every Match
func (c *Classifier) Version() int { return c.version }

const (
	minConfidence = 0.3
	maxConfidence = 1.0
)

// type boosts per tier, in Tiers order
var typeBoosts = [4]float64{0.4, 0.3, 0.2, 0.2}

// Classify scores text (and an optional incident type label) into a tier.
// It never fails: empty input degrades to the medium default and
// unrecognized labels contribute nothing
func (c *Classifier) Classify(text, typeLabel string) Match {
	if strings.TrimSpace(text) == "" && strings.TrimSpace(typeLabel) == "" {
		return Match{
			Priority:          TierMedium,
			Confidence:        minConfidence,
			Signals:           []string{"default priority (no context)"},
			Reasoning:         "No text or incident type provided, defaulting to medium",
			ClassifierVersion: c.version,
		}
	}

	folded := strings.ToLower(text)

	var matches [4]SignalMatch
	for i := range c.pack.Tiers {
		matches[i] = scoreTier(folded, &c.pack.Tiers[i])
	}

	// Modifiers are computed once and shared: they amplify only the two
	// most severe tiers, medium and low score on lexicon matches alone
	qty := c.DetectQuantity(text)
	tmp := c.DetectTemporal(text)

	scores := [4]float64{
		matches[0].Score*qty.Multiplier + tmp.Boost,
		matches[1].Score*qty.Multiplier + tmp.Boost*0.5,
		matches[2].Score,
		matches[3].Score,
	}

	var reasoning []string

	if tier, ok := c.ResolveTypePriority(typeLabel); ok {
		for i, t := range Tiers {
			if t == tier {
				scores[i] += typeBoosts[i]
				break
			}
		}
		reasoning = append(reasoning, fmt.Sprintf("incident type %q suggests %s priority", strings.TrimSpace(typeLabel), tier))
	}

	// Rank tiers by score; the sort must be stable over declaration order
	// so exact ties fall to the more severe tier
	order := [4]int{0, 1, 2, 3}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && scores[order[j]] > scores[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	winner, second := order[0], order[1]

	signals := make([]string, 0, len(matches[winner].Terms)+len(qty.Signals)+len(tmp.Signals))
	signals = appendUnique(signals, matches[winner].Terms...)
	signals = appendUnique(signals, qty.Signals...)
	signals = appendUnique(signals, tmp.Signals...)

	confidence := scores[winner]
	switch {
	case scores[winner] > scores[second]*1.5:
		confidence = min(confidence*1.1, maxConfidence)
		reasoning = append(reasoning, "clear priority indicators")
	case scores[winner] > scores[second]:
		reasoning = append(reasoning, "moderate priority confidence")
	default:
		// Only reachable on an exact tie; the stable sort already put the
		// more severe tier first
		reasoning = append(reasoning, "ambiguous signals, using best match")
		confidence *= 0.8
	}

	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	modSignals := append(append([]string{}, qty.Signals...), tmp.Signals...)
	if len(modSignals) > 0 {
		reasoning = append(reasoning, strings.Join(modSignals, ", "))
	}

	return Match{
		Priority:          Tiers[winner],
		Confidence:        confidence,
		Signals:           signals,
		Reasoning:         strings.Join(reasoning, "; "),
		ClassifierVersion: c.version,
	}
}

// ClassifyTier is the tier-only convenience wrapper
func (c *Classifier) ClassifyTier(text, typeLabel string) Tier {
	return c.Classify(text, typeLabel).Priority
}

// ClassifyQuick returns the tier and confidence without the full trace
func (c *Classifier) ClassifyQuick(text, typeLabel string) (Tier, float64) {
	m := c.Classify(text, typeLabel)
	return m.Priority, m.Confidence
}

func appendUnique(dst []string, xs ...string) []string {
	for _, x := range xs {
		dup := false
		for _, have := range dst {
			if have == x {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, x)
		}
	}
	return dst
}
