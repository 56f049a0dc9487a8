package relevance

import (
	"strings"
	"unicode"
)

// Tokenize lowercases, strips punctuation, and drops tokens of two runes
// or fewer
func Tokenize(s string) []string {
	return tokenizeFolded(strings.ToLower(s))
}

func tokenizeFolded(folded string) []string {
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

const maxHighlights = 3

// highlights pulls up to three sentences mentioning the query phrase or
// any query token, narrative before action-taken
func highlights(r Record, folded string, tokens []string) []string {
	var out []string
	for _, field := range [2]string{r.Occurrence, r.ActionTaken} {
		for _, sentence := range splitSentences(field) {
			if len(out) >= maxHighlights {
				return out
			}
			sf := strings.ToLower(sentence)
			if strings.Contains(sf, folded) || containsAnyToken(sf, tokens) {
				out = append(out, sentence)
			}
		}
	}
	return out
}

func splitSentences(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAnyToken(folded string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(folded, t) {
			return true
		}
	}
	return false
}

// reason turns the fired signals into a short human-readable explanation,
// falling back to "partial match" when nothing specific fired
func reason(score float64, fired firedSignals) string {
	var parts []string
	if fired.exactPhrase {
		parts = append(parts, "contains exact phrase")
	}
	if fired.category {
		parts = append(parts, "incident type match")
	}
	if fired.priority {
		parts = append(parts, "priority match")
	}
	if fired.identifier {
		parts = append(parts, "callsign match")
	}
	switch {
	case score >= 0.7:
		parts = append(parts, "strong overall relevance")
	case score >= 0.45:
		parts = append(parts, "good relevance")
	}
	if fired.recent {
		parts = append(parts, "recent incident")
	}
	if len(parts) == 0 {
		return "partial match"
	}
	return strings.Join(parts, ", ")
}
