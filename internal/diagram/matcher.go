package diagram

// Match picks the best catalog template for one requirement. Cascading
// priority, first success wins, each tier carries a fixed confidence:
//
//	exact category+subcategory  1.0
//	category only               0.7
//	tag overlap                 overlap ratio
//	description keywords        0.5
//
// Deterministic, no I/O. Structured input is trusted over free text, so the
// free-text tier scores lowest.
func (c *Catalog) Match(req Requirement) MatchResult {
	if !req.Needed {
		return MatchResult{Score: 0, Reason: "not needed"}
	}
	// Illustrations are drawn by the external image generator, never by the
	// static catalog.
	if req.Category == CategoryIllustration {
		return MatchResult{Score: 0, Reason: "illustrations use external image generation, not templates"}
	}

	if req.Category != "" && req.Subcategory != "" {
		if s := c.Find(req.Category, req.Subcategory); s != nil {
			return MatchResult{Sample: s, Score: 1.0, Reason: "exact match"}
		}
	}

	if req.Category != "" {
		if list := c.ByCategory(req.Category); len(list) > 0 {
			pick := &list[0]
			for i := range list {
				if list[i].Subcategory == "basic" {
					pick = &list[i]
					break
				}
			}
			return MatchResult{Sample: pick, Score: 0.7, Reason: "category match"}
		}
	}

	if len(req.Tags) > 0 {
		if s, overlap := c.bestTagMatch(req.Tags); overlap > 0 {
			return MatchResult{Sample: s, Score: overlap, Reason: "tag match"}
		}
	}

	if req.Description != "" {
		if s := c.resolveKeywords(req.Description); s != nil {
			return MatchResult{Sample: s, Score: 0.5, Reason: "keyword match"}
		}
	}

	return MatchResult{Score: 0, Reason: "no match"}
}

// MatchAll is the element-wise batch variant: same length as the input, no
// cross-item interaction.
func (c *Catalog) MatchAll(reqs []Requirement) []MatchResult {
	out := make([]MatchResult, len(reqs))
	for i, r := range reqs {
		out[i] = c.Match(r)
	}
	return out
}

// bestTagMatch scores every catalog entry by |req ∩ entry| / max(|req|, |entry|)
// and returns the strictly best one. Ties keep the earlier entry in catalog
// authoring order.
func (c *Catalog) bestTagMatch(tags []string) (*Sample, float64) {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var best *Sample
	bestScore := 0.0
	for i := range c.samples {
		s := &c.samples[i]
		inter := 0
		for _, t := range s.Tags {
			if want[t] {
				inter++
			}
		}
		denom := len(want)
		if len(s.Tags) > denom {
			denom = len(s.Tags)
		}
		if denom == 0 {
			continue
		}
		score := float64(inter) / float64(denom)
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best, bestScore
}
