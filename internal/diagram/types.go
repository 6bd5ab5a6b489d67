// Package diagram selects pre-authored SVG diagram templates for problem
// image requirements. The catalog is static data loaded once at startup; the
// matcher is a pure function over it.
package diagram

// Category of a required diagram. Closed set; anything the authors have no
// templates for goes under "other".
type Category string

const (
	CategoryTriangle      Category = "triangle"
	CategoryQuadrilateral Category = "quadrilateral"
	CategoryCircle        Category = "circle"
	CategoryGraph         Category = "graph"
	CategoryCoordinate    Category = "coordinate"
	CategoryIllustration  Category = "illustration"
	CategoryOther         Category = "other"
)

// Requirement describes the diagram a problem needs. Built per call, never
// persisted.
type Requirement struct {
	Needed      bool     `json:"needed"`
	Category    Category `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Sample is one catalog entry. Body is an SVG snippet keyed by named anchor
// points; rendering is the caller's concern.
type Sample struct {
	Category    Category `json:"category" yaml:"category"`
	Subcategory string   `json:"subcategory" yaml:"subcategory"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Body        string   `json:"body" yaml:"body"`
}

// MatchResult carries the chosen template (nil when none fits), a confidence
// score in [0,1] and a human-readable reason.
type MatchResult struct {
	Sample *Sample `json:"template"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}
