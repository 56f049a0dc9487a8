// Package relevance ranks already-fetched incident records against a
// free-text query. Scoring is weighted multi-signal like the priority
// classifier: phrase containment, field-weighted token overlap, recency
// decay, and a coarse concept-group similarity from the lexicon pack
package relevance

import (
	"sort"
	"strings"
	"time"

	"incommand/internal/core/lexicon"
)

// Record is the slice of an incident the scorer reads. Callers own the
// full row; the scorer never validates or mutates it
type Record struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	Type         string    `json:"incident_type"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"` // open | closed
	Occurrence   string    `json:"occurrence"`
	ActionTaken  string    `json:"action_taken"`
	CallsignFrom string    `json:"callsign_from"`
	CallsignTo   string    `json:"callsign_to"`
	Reference    string    `json:"reference"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Options controls one search. Zero filters are pass-through; Limit and
// Threshold fall back to defaults when unset
type Options struct {
	Query string

	EventID  string
	Type     string
	Priority string
	Status   string
	From     time.Time
	To       time.Time

	Limit     int     // default 20
	Threshold float64 // default 0.3
	Now       time.Time
}

// Result is one ranked hit. Score is normalized to [0,1]
type Result struct {
	Record     Record   `json:"incident"`
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights"`
	Reason     string   `json:"relevance_reason"`
}

const (
	defaultLimit     = 20
	defaultThreshold = 0.3

	recencyWindowDays = 30.0
)

// Scorer is stateless beyond the injected pack; safe for concurrent use
type Scorer struct {
	pack *lexicon.Pack
}

// NewScorer constructs a Scorer over a compiled pack
func NewScorer(p *lexicon.Pack) *Scorer {
	if p == nil {
		panic("relevance: nil lexicon pack")
	}
	return &Scorer{pack: p}
}

// Search filters, scores, and ranks records. It never fails: a blank query
// returns the filtered set unranked, and malformed records just score low
func (s *Scorer) Search(records []Record, opts Options) []Result {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if keepRecord(r, opts) {
			filtered = append(filtered, r)
		}
	}

	query := strings.TrimSpace(opts.Query)
	if query == "" {
		out := make([]Result, 0, min(limit, len(filtered)))
		for _, r := range filtered {
			if len(out) >= limit {
				break
			}
			out = append(out, Result{
				Record: r,
				Score:  1.0,
				Reason: "No search query - showing all filtered results",
			})
		}
		return out
	}

	folded := strings.ToLower(query)
	tokens := Tokenize(query)

	results := make([]Result, 0, len(filtered))
	for _, r := range filtered {
		score, fired := s.scoreRecord(r, folded, tokens, now)
		if score < threshold {
			continue
		}
		results = append(results, Result{
			Record:     r,
			Score:      score,
			Highlights: highlights(r, folded, tokens),
			Reason:     reason(score, fired),
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// keepRecord applies the AND-combined structural filters
func keepRecord(r Record, opts Options) bool {
	if opts.EventID != "" && r.EventID != opts.EventID {
		return false
	}
	if opts.Type != "" && r.Type != opts.Type {
		return false
	}
	if opts.Priority != "" && r.Priority != opts.Priority {
		return false
	}
	if opts.Status != "" && !strings.EqualFold(r.Status, opts.Status) {
		return false
	}
	if !opts.From.IsZero() && r.OccurredAt.Before(opts.From) {
		return false
	}
	if !opts.To.IsZero() && r.OccurredAt.After(opts.To) {
		return false
	}
	return true
}

// firedSignals records which scoring signals contributed, for the
// human-readable relevance reason
type firedSignals struct {
	exactPhrase bool
	category    bool
	priority    bool
	identifier  bool
	recent      bool
}

// scoreRecord accumulates weighted points against the maximum achievable
// for this record, returning the normalized score
func (s *Scorer) scoreRecord(r Record, folded string, tokens []string, now time.Time) (float64, firedSignals) {
	var fired firedSignals
	var score, max float64

	narrative := strings.ToLower(r.Occurrence)
	action := strings.ToLower(r.ActionTaken)

	// exact phrase in the primary narrative
	max += 50
	if narrative != "" && strings.Contains(narrative, folded) {
		score += 50
		fired.exactPhrase = true
	}

	// token overlap, narrative then action-taken
	max += 20
	score += 20 * overlapRatio(tokens, narrative)
	max += 15
	score += 15 * overlapRatio(tokens, action)

	// category label containment either way round
	max += 10
	if ct := strings.ToLower(r.Type); ct != "" && (strings.Contains(ct, folded) || strings.Contains(folded, ct)) {
		score += 10
		fired.category = true
	}

	// exact token hit on the priority field
	max += 5
	if pr := strings.ToLower(r.Priority); pr != "" {
		for _, tok := range tokens {
			if tok == pr {
				score += 5
				fired.priority = true
				break
			}
		}
	}

	// callsign / reference containment
	max += 5
	for _, id := range [3]string{r.CallsignFrom, r.CallsignTo, r.Reference} {
		if id == "" {
			continue
		}
		if strings.Contains(strings.ToLower(id), folded) {
			score += 5
			fired.identifier = true
			break
		}
	}

	// linear recency decay over the window, floored at zero
	max += 5
	if !r.OccurredAt.IsZero() {
		days := now.Sub(r.OccurredAt).Hours() / 24
		if pts := 5 * (1 - days/recencyWindowDays); pts > 0 {
			score += pts
			fired.recent = days <= recencyWindowDays/4
		}
	}

	// concept-group similarity only pays off for longer queries
	if len(tokens) > 2 {
		max += 10
		score += 10 * s.groupSimilarity(tokens, narrative+" "+action)
	}

	if max == 0 {
		return 0, fired
	}
	return score / max, fired
}

// groupSimilarity counts concept groups where the query names the group
// and the record text carries a related term, normalized by group count
func (s *Scorer) groupSimilarity(tokens []string, text string) float64 {
	if len(s.pack.Groups) == 0 {
		return 0
	}
	matched := 0
	for _, g := range s.pack.Groups {
		if !groupNamed(g, tokens) {
			continue
		}
		for _, term := range g.Terms {
			if strings.Contains(text, term) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(s.pack.Groups))
}

func groupNamed(g lexicon.ConceptGroup, tokens []string) bool {
	for _, tok := range tokens {
		if tok == g.Name {
			return true
		}
		for _, term := range g.Terms {
			if tok == term {
				return true
			}
		}
	}
	return false
}

// overlapRatio is matched query tokens over total query tokens
func overlapRatio(tokens []string, folded string) float64 {
	if len(tokens) == 0 || folded == "" {
		return 0
	}
	fieldTokens := tokenizeFolded(folded)
	if len(fieldTokens) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(fieldTokens))
	for _, t := range fieldTokens {
		set[t] = struct{}{}
	}
	matched := 0
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}
