package diagram

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the fixed, hand-authored template set. Loaded once at process
// start, read-only afterwards.
type Catalog struct {
	samples []Sample            // authoring order, used for tag-overlap ties
	byCat   map[Category][]Sample
}

type catalogFile struct {
	Version int      `yaml:"version"`
	Samples []Sample `yaml:"samples"`
}

// Load reads the catalog from path, or from the embedded default when path is
// empty (same override pattern as TEMPLATE_CATALOG_PATH in config).
func Load(path string) (*Catalog, error) {
	raw := embeddedCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("diagram catalog: %w", err)
		}
		raw = b
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("diagram catalog: bad yaml: %w", err)
	}
	if len(f.Samples) == 0 {
		return nil, fmt.Errorf("diagram catalog: no samples")
	}
	c := &Catalog{byCat: make(map[Category][]Sample)}
	for _, s := range f.Samples {
		c.samples = append(c.samples, s)
		c.byCat[s.Category] = append(c.byCat[s.Category], s)
	}
	return c, nil
}

// MustLoad is Load for mains and tests where a broken embedded catalog is a
// programming error.
func MustLoad() *Catalog {
	c, err := Load(os.Getenv("TEMPLATE_CATALOG_PATH"))
	if err != nil {
		panic(err)
	}
	return c
}

// Find returns the entry for an exact category+subcategory pair.
func (c *Catalog) Find(cat Category, sub string) *Sample {
	for i := range c.byCat[cat] {
		if c.byCat[cat][i].Subcategory == sub {
			return &c.byCat[cat][i]
		}
	}
	return nil
}

// ByCategory returns the ordered sample list for a category.
func (c *Catalog) ByCategory(cat Category) []Sample {
	return c.byCat[cat]
}

// keywordEntry maps one vocabulary term to its category/subcategory pair.
// Checked in listed order: specific terms before the generic shape words that
// they contain (직각삼각형 before 삼각형).
type keywordEntry struct {
	Term        string
	Category    Category
	Subcategory string
}

var keywordVocabulary = []keywordEntry{
	{"직각삼각형", CategoryTriangle, "right"},
	{"이등변삼각형", CategoryTriangle, "isosceles"},
	{"정삼각형", CategoryTriangle, "equilateral"},
	{"삼각형", CategoryTriangle, "basic"},
	{"평행사변형", CategoryQuadrilateral, "parallelogram"},
	{"사다리꼴", CategoryQuadrilateral, "trapezoid"},
	{"사각형", CategoryQuadrilateral, "basic"},
	{"접선", CategoryCircle, "tangent"},
	{"내접", CategoryCircle, "inscribed"},
	{"원", CategoryCircle, "basic"},
	{"이차함수", CategoryGraph, "quadratic"},
	{"포물선", CategoryGraph, "quadratic"},
	{"일차함수", CategoryGraph, "linear"},
	{"그래프", CategoryGraph, "linear"},
	{"좌표평면", CategoryCoordinate, "plane"},
	{"좌표", CategoryCoordinate, "plane"},
}

// resolveKeywords scans free text against the fixed vocabulary (substring
// containment, listed order) and returns the first term that resolves to an
// existing catalog entry.
func (c *Catalog) resolveKeywords(text string) *Sample {
	for _, kw := range keywordVocabulary {
		if !strings.Contains(text, kw.Term) {
			continue
		}
		if s := c.Find(kw.Category, kw.Subcategory); s != nil {
			return s
		}
	}
	return nil
}
