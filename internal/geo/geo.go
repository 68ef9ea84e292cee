package geo

import (
	_ "embed"
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed europe.yml
var europeYAML []byte

// CountryFeature is one entry of the static map dataset: identity, land
// adjacency and the label centroid in UI viewbox coordinates.
type CountryFeature struct {
	ID        string     `yaml:"id" json:"id"`
	Name      string     `yaml:"name" json:"name"`
	Neighbors []string   `yaml:"neighbors" json:"neighbors"`
	Centroid  [2]float64 `yaml:"centroid" json:"centroid"`
	Path      string     `yaml:"path,omitempty" json:"path,omitempty"`
}

type dataset struct {
	Countries []CountryFeature `yaml:"countries"`
}

// Load parses the embedded Europe dataset. Adjacency is normalized to be
// symmetric: if A lists B, B gains A.
func Load() ([]CountryFeature, error) {
	return parse(europeYAML)
}

func parse(raw []byte) ([]CountryFeature, error) {
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse map dataset: %w", err)
	}
	if len(ds.Countries) == 0 {
		return nil, fmt.Errorf("map dataset is empty")
	}

	index := make(map[string]int, len(ds.Countries))
	for i, c := range ds.Countries {
		if c.ID == "" {
			return nil, fmt.Errorf("country #%d has no id", i)
		}
		if _, dup := index[c.ID]; dup {
			return nil, fmt.Errorf("duplicate country id %q", c.ID)
		}
		index[c.ID] = i
	}

	// Every neighbor must exist; make adjacency symmetric.
	for i, c := range ds.Countries {
		for _, n := range c.Neighbors {
			j, ok := index[n]
			if !ok {
				return nil, fmt.Errorf("country %s lists unknown neighbor %q", c.ID, n)
			}
			if !contains(ds.Countries[j].Neighbors, c.ID) {
				ds.Countries[j].Neighbors = append(ds.Countries[j].Neighbors, c.ID)
			}
		}
		sort.Strings(ds.Countries[i].Neighbors)
	}

	return ds.Countries, nil
}

// Distance is the Euclidean distance between two country centroids.
func Distance(a, b CountryFeature) float64 {
	dx := a.Centroid[0] - b.Centroid[0]
	dy := a.Centroid[1] - b.Centroid[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// Index builds an id lookup over a feature list.
func Index(features []CountryFeature) map[string]CountryFeature {
	m := make(map[string]CountryFeature, len(features))
	for _, f := range features {
		m[f.ID] = f
	}
	return m
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
