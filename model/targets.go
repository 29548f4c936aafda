package model

import (
	"github.com/pkg/errors"
)

// DefaultUnitCap is the maximum number of units of a single project.
const DefaultUnitCap = 20

// PollutantTarget is the minimum total reduction required for one pollutant.
type PollutantTarget struct {
	Key     string  `yaml:"key" json:"key"`
	Label   string  `yaml:"label" json:"label"`
	Minimum float64 `yaml:"minimum" json:"minimum"`
}

// Targets is the pollutant configuration a problem is built against. The
// order of Pollutants fixes the order of the pollutant rows.
type Targets struct {
	UnitCap    float64           `yaml:"unit_cap" json:"unit_cap"`
	Pollutants []PollutantTarget `yaml:"pollutants" json:"pollutants"`
}

// DefaultTargets returns the reference target table.
func DefaultTargets() *Targets {
	return &Targets{
		UnitCap: DefaultUnitCap,
		Pollutants: []PollutantTarget{
			{Key: "CO2", Label: "CO<sub>2</sub>", Minimum: 1000},
			{Key: "NO", Label: "NO", Minimum: 35},
			{Key: "SO2", Label: "SO<sub>2</sub>", Minimum: 25},
			{Key: "PM2_5", Label: "PM<sub>2.5</sub>", Minimum: 20},
			{Key: "CH4", Label: "CH<sub>4</sub>", Minimum: 60},
			{Key: "VOC", Label: "VOC", Minimum: 45},
			{Key: "CO", Label: "CO", Minimum: 80},
			{Key: "NH3", Label: "NH<sub>3</sub>", Minimum: 12},
			{Key: "BC", Label: "BC", Minimum: 6},
			{Key: "N2O", Label: "N<sub>2</sub>O", Minimum: 10},
		},
	}
}

// Validate checks the invariants the tableau construction relies on.
func (t *Targets) Validate() error {
	if t == nil || len(t.Pollutants) == 0 {
		return errors.New("targets: no pollutants configured")
	}
	if t.UnitCap <= 0 {
		return errors.Errorf("targets: unit cap must be positive, got %v", t.UnitCap)
	}

	seen := make(map[string]struct{}, len(t.Pollutants))
	for _, p := range t.Pollutants {
		if p.Key == "" {
			return errors.New("targets: pollutant without key")
		}
		if p.Key == nameKey || p.Key == costKey {
			return errors.Errorf("targets: %q is reserved", p.Key)
		}
		if _, dup := seen[p.Key]; dup {
			return errors.Errorf("targets: duplicate pollutant %q", p.Key)
		}
		seen[p.Key] = struct{}{}
		if p.Minimum <= 0 {
			return errors.Errorf("targets: minimum for %q must be positive, got %v", p.Key, p.Minimum)
		}
	}

	return nil
}

// Keys returns the pollutant keys in row order.
func (t *Targets) Keys() []string {
	keys := make([]string, len(t.Pollutants))
	for i, p := range t.Pollutants {
		keys[i] = p.Key
	}
	return keys
}

// Minimums returns the pollutant minimums in row order.
func (t *Targets) Minimums() []float64 {
	mins := make([]float64, len(t.Pollutants))
	for i, p := range t.Pollutants {
		mins[i] = p.Minimum
	}
	return mins
}

// Labels returns the display label of every pollutant, falling back to the
// key when no label is configured.
func (t *Targets) Labels() map[string]string {
	labels := make(map[string]string, len(t.Pollutants))
	for _, p := range t.Pollutants {
		if p.Label == "" {
			labels[p.Key] = p.Key
			continue
		}
		labels[p.Key] = p.Label
	}
	return labels
}
