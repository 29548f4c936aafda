package model

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	nameKey = "Project"
	costKey = "Cost"
)

// Project is a candidate emission-reduction project from the catalog.
type Project struct {
	Name string
	Cost float64

	//Factors emission reduction per unit, keyed by pollutant
	Factors map[string]float64
}

// Factor returns the emission factor of the project for key, 0 if unknown.
func (p Project) Factor(key string) float64 {
	return p.Factors[key]
}

// MarshalJSON writes the project in the flat catalog layout:
// {"Project": name, <pollutant>: factor, ..., "Cost": cost}.
func (p Project) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.flat())
}

// UnmarshalJSON reads the flat catalog layout written by MarshalJSON.
func (p *Project) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decoding project")
	}
	return p.fromFlat(raw)
}

// UnmarshalYAML reads the same flat layout from a YAML mapping.
func (p *Project) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]interface{}
	if err := node.Decode(&raw); err != nil {
		return errors.Wrap(err, "decoding project")
	}
	return p.fromFlat(raw)
}

func (p Project) flat() map[string]interface{} {
	out := make(map[string]interface{}, len(p.Factors)+2)
	for k, v := range p.Factors {
		out[k] = v
	}
	out[nameKey] = p.Name
	out[costKey] = p.Cost
	return out
}

func (p *Project) fromFlat(raw map[string]interface{}) error {
	name, ok := raw[nameKey].(string)
	if !ok || name == "" {
		return errors.Errorf("project entry without a %q name", nameKey)
	}

	p.Name = name
	p.Cost = 0
	p.Factors = make(map[string]float64, len(raw))
	for k, v := range raw {
		if k == nameKey {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			return errors.Errorf("project %q: %s is not a number", name, k)
		}
		if k == costKey {
			p.Cost = f
			continue
		}
		p.Factors[k] = f
	}

	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Catalog is the ordered list of every project a selection can refer to.
type Catalog []Project

// Filter resolves ids against the catalog. Ids are treated as a set and the
// matches are returned in catalog order.
func (c Catalog) Filter(ids []string) []Project {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	projects := []Project{}
	for _, p := range c {
		if _, ok := wanted[p.Name]; ok {
			projects = append(projects, p)
		}
	}

	return projects
}
