package priority

import "strings"

// ResolveTypePriority maps a known incident type label to its tier by
// exact, case-sensitive membership. Tiers are checked in declaration order
// so a label that somehow appeared in two lexicons resolves to the more
// severe one. Empty or unrecognized labels resolve to nothing
func (c *Classifier) ResolveTypePriority(typeLabel string) (Tier, bool) {
	lbl := strings.TrimSpace(typeLabel)
	if lbl == "" {
		return "", false
	}
	for i := range c.pack.Tiers {
		if _, ok := c.pack.Tiers[i].TypeLabels[lbl]; ok {
			return Tiers[i], true
		}
	}
	return "", false
}
