package priority

import (
	"fmt"
	"strconv"
)

// QuantityResult is the quantity-signal detection outcome. The multiplier
// composes multiplicatively across patterns and never drops below 1.0
type QuantityResult struct {
	Multiplier float64
	Signals    []string
}

// TemporalResult is the temporal-urgency detection outcome. Boosts are
// additive and never negative
type TemporalResult struct {
	Boost   float64
	Signals []string
}

// DetectQuantity scans text for people-count and escalation language.
// Pure function of the input; exported so the patterns are unit-testable
// on their own
func (c *Classifier) DetectQuantity(text string) QuantityResult {
	r := QuantityResult{Multiplier: 1.0}
	if text == "" {
		return r
	}
	q := c.pack.Quantity

	if q.MultiPerson.MatchString(text) {
		r.Multiplier *= 1.2
		r.Signals = append(r.Signals, "multiple people involved")
	}

	// Only the first numeric mention counts; counts of five or fewer carry
	// no signal
	if sub := q.Count.FindStringSubmatch(text); len(sub) > 1 {
		if n, err := strconv.Atoi(sub[1]); err == nil {
			switch {
			case n > 10:
				r.Multiplier *= 1.3
				r.Signals = append(r.Signals, fmt.Sprintf("%d people affected", n))
			case n > 5:
				r.Multiplier *= 1.15
				r.Signals = append(r.Signals, fmt.Sprintf("%d people involved", n))
			}
		}
	}

	if q.Escalation.MatchString(text) {
		r.Multiplier *= 1.25
		r.Signals = append(r.Signals, "escalating situation")
	}

	return r
}

// DetectTemporal scans text for immediacy and in-progress language
func (c *Classifier) DetectTemporal(text string) TemporalResult {
	var r TemporalResult
	if text == "" {
		return r
	}
	t := c.pack.Temporal

	if t.Immediate.MatchString(text) {
		r.Boost += 0.2
		r.Signals = append(r.Signals, "immediate action required")
	}
	if t.Ongoing.MatchString(text) {
		r.Boost += 0.1
		r.Signals = append(r.Signals, "ongoing situation")
	}
	return r
}
