// Package lexicon loads and compiles the signal lexicons from the embedded
// lexicons.json. It prepares per-tier term tables, modifier regexes, and the
// concept groups used by the relevance scorer
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

//go:embed lexicons.json
var embedded []byte

// TierNames is the canonical tier order, most severe first.
// Arbitration and type resolution both break ties on this order
var TierNames = [4]string{"urgent", "high", "medium", "low"}

type rawTier struct {
	Tier          string   `json:"tier"`
	Weight        float64  `json:"weight"`
	Phrases       []string `json:"phrases"`
	Keywords      []string `json:"keywords"`
	IncidentTypes []string `json:"incident_types"`
}

type rawQuantity struct {
	MultiPerson []string `json:"multi_person"`
	PersonNouns []string `json:"person_nouns"`
	CountNouns  []string `json:"count_nouns"`
	Escalation  []string `json:"escalation"`
}

type rawTemporal struct {
	Immediate []string `json:"immediate"`
	Ongoing   []string `json:"ongoing"`
}

type rawModifiers struct {
	Quantity rawQuantity `json:"quantity"`
	Temporal rawTemporal `json:"temporal"`
}

type rawGroup struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

type rawPack struct {
	Version       int            `json:"version"`
	Meta          map[string]any `json:"meta"`
	Tiers         []rawTier      `json:"tiers"`
	Modifiers     rawModifiers   `json:"modifiers"`
	ConceptGroups []rawGroup     `json:"concept_groups"`
}

// Term keeps the authored casing for signal output next to the folded form
// used for substring matching
type Term struct {
	Raw    string
	Folded string
}

// TierLexicon is one compiled per-tier signal table. Instances are built by
// Parse and never mutated afterwards
type TierLexicon struct {
	Name     string
	Weight   float64
	Phrases  []Term
	Keywords []Term

	// TypeLabels are matched by exact, case-sensitive equality against the
	// caller-supplied incident type, never by containment
	TypeLabels map[string]struct{}
}

// Quantity holds the compiled quantity-signal patterns
type Quantity struct {
	MultiPerson *regexp.Regexp
	Count       *regexp.Regexp
	Escalation  *regexp.Regexp
}

// Temporal holds the compiled temporal-urgency patterns
type Temporal struct {
	Immediate *regexp.Regexp
	Ongoing   *regexp.Regexp
}

// ConceptGroup is one coarse semantic bucket for the relevance scorer
type ConceptGroup struct {
	Name  string
	Terms []string // folded
}

// Pack is the compiled, immutable lexicon set injected into the classifiers
type Pack struct {
	Version int
	Meta    map[string]any

	Tiers    [4]TierLexicon // TierNames order
	Quantity Quantity
	Temporal Temporal
	Groups   []ConceptGroup
}

// Load returns the compiled pack from the embedded lexicons.json
func Load() (*Pack, error) {
	return Parse(embedded)
}

// Parse compiles a pack from raw JSON. Exposed so tests can substitute
// alternate lexicons without touching the embedded defaults
func Parse(data []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(data, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicons.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported lexicons.json version %d (want 1)", rp.Version)
	}
	if len(rp.Tiers) != len(TierNames) {
		return nil, fmt.Errorf("lexicon: expected %d tiers, got %d", len(TierNames), len(rp.Tiers))
	}

	p := &Pack{Version: rp.Version, Meta: rp.Meta}

	for i, rt := range rp.Tiers {
		if rt.Tier != TierNames[i] {
			return nil, fmt.Errorf("lexicon: tier %d is %q, want %q (order is load-bearing)", i, rt.Tier, TierNames[i])
		}
		if rt.Weight <= 0 || rt.Weight > 1 {
			return nil, fmt.Errorf("lexicon: tier %q weight %v outside (0,1]", rt.Tier, rt.Weight)
		}
		tl := TierLexicon{
			Name:       rt.Tier,
			Weight:     rt.Weight,
			Phrases:    compileTerms(rt.Phrases),
			Keywords:   compileTerms(rt.Keywords),
			TypeLabels: make(map[string]struct{}, len(rt.IncidentTypes)),
		}
		for _, lbl := range rt.IncidentTypes {
			lbl = strings.TrimSpace(lbl)
			if lbl == "" {
				continue
			}
			tl.TypeLabels[lbl] = struct{}{}
		}
		p.Tiers[i] = tl
	}

	var err error
	if p.Quantity, p.Temporal, err = compileModifiers(rp.Modifiers); err != nil {
		return nil, err
	}

	for _, g := range rp.ConceptGroups {
		cg := ConceptGroup{Name: strings.ToLower(strings.TrimSpace(g.Name))}
		if cg.Name == "" {
			continue
		}
		for _, t := range g.Terms {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				cg.Terms = append(cg.Terms, t)
			}
		}
		p.Groups = append(p.Groups, cg)
	}

	return p, nil
}

// Tier returns the lexicon for a tier name, or nil if unknown
func (p *Pack) Tier(name string) *TierLexicon {
	for i := range p.Tiers {
		if p.Tiers[i].Name == name {
			return &p.Tiers[i]
		}
	}
	return nil
}

func compileTerms(in []string) []Term {
	out := make([]Term, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		raw := strings.TrimSpace(s)
		if raw == "" {
			continue
		}
		folded := strings.ToLower(raw)
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, Term{Raw: raw, Folded: folded})
	}
	return out
}

func compileModifiers(rm rawModifiers) (Quantity, Temporal, error) {
	var q Quantity
	var t Temporal

	for name, lst := range map[string][]string{
		"quantity.multi_person": rm.Quantity.MultiPerson,
		"quantity.person_nouns": rm.Quantity.PersonNouns,
		"quantity.count_nouns":  rm.Quantity.CountNouns,
		"quantity.escalation":   rm.Quantity.Escalation,
		"temporal.immediate":    rm.Temporal.Immediate,
		"temporal.ongoing":      rm.Temporal.Ongoing,
	} {
		if len(lst) == 0 {
			return q, t, fmt.Errorf("lexicon: modifier list %s is empty", name)
		}
	}

	compile := func(dst **regexp.Regexp, pattern string) error {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("lexicon: compile modifier pattern %q: %w", pattern, err)
		}
		*dst = re
		return nil
	}

	steps := []struct {
		dst     **regexp.Regexp
		pattern string
	}{
		{&q.MultiPerson, `(?i)\b(?:` + altGroup(rm.Quantity.MultiPerson) + `)\s+(?:` + altGroup(rm.Quantity.PersonNouns) + `)\b`},
		{&q.Count, `(?i)\b(\d+)\s*(?:` + altGroup(rm.Quantity.CountNouns) + `)\b`},
		{&q.Escalation, `(?i)\b(?:` + altGroup(rm.Quantity.Escalation) + `)\b`},
		{&t.Immediate, `(?i)\b(?:` + altGroup(rm.Temporal.Immediate) + `)\b`},
		{&t.Ongoing, `(?i)\b(?:` + altGroup(rm.Temporal.Ongoing) + `)\b`},
	}
	for _, s := range steps {
		if err := compile(s.dst, s.pattern); err != nil {
			return q, t, err
		}
	}
	return q, t, nil
}

// altGroup joins quoted words with |, longest first so multiword
// alternatives win over their prefixes
func altGroup(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
	}
	sort.Slice(quoted, func(i, j int) bool {
		if len(quoted[i]) != len(quoted[j]) {
			return len(quoted[i]) > len(quoted[j])
		}
		return quoted[i] < quoted[j]
	})
	return strings.Join(quoted, "|")
}
