package crosscheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamreyes/Project-Green/model"
	"github.com/bamreyes/Project-Green/simplex"
)

func targets(mins map[string]float64, keys ...string) *model.Targets {
	t := &model.Targets{UnitCap: model.DefaultUnitCap}
	for _, k := range keys {
		t.Pollutants = append(t.Pollutants, model.PollutantTarget{Key: k, Minimum: mins[k]})
	}
	return t
}

var threeProjects = model.Catalog{
	{Name: "a", Cost: 3, Factors: map[string]float64{"CO2": 50, "NO": 2}},
	{Name: "b", Cost: 1, Factors: map[string]float64{"CO2": 10, "SO2": 1}},
	{Name: "c", Cost: 7.5, Factors: map[string]float64{"NO": 4, "SO2": 1}},
}

func TestTableauMatchesLP(t *testing.T) {
	for name, tc := range map[string]struct {
		catalog model.Catalog
		targets *model.Targets
		cost    float64
	}{
		"single project": {
			catalog: model.Catalog{
				{Name: "A", Cost: 10, Factors: map[string]float64{"P": 5}},
				{Name: "B", Cost: 20, Factors: map[string]float64{"P": 8}},
			},
			targets: targets(map[string]float64{"P": 40}, "P"),
			cost:    80,
		},
		"cap binding": {
			catalog: model.Catalog{
				{Name: "A", Cost: 10, Factors: map[string]float64{"P": 5}},
				{Name: "B", Cost: 20, Factors: map[string]float64{"P": 8}},
			},
			targets: targets(map[string]float64{"P": 140}, "P"),
			cost:    300,
		},
		"three pollutants": {
			catalog: threeProjects,
			targets: targets(map[string]float64{"CO2": 1000, "NO": 35, "SO2": 25}, "CO2", "NO", "SO2"),
			cost:    105.5,
		},
	} {
		t.Run(name, func(t *testing.T) {
			ids := make([]string, len(tc.catalog))
			for i, p := range tc.catalog {
				ids[i] = p.Name
			}
			m, err := model.BuildDualTableau(tc.catalog, tc.targets, ids)
			require.NoError(t, err)

			opt, _, err := Solve(m)
			require.NoError(t, err)
			assert.InDelta(t, tc.cost, opt, 1e-6)

			res, err := simplex.PivotToOptimum(m.Dual, m.NumProjects)
			require.NoError(t, err)
			assert.InDelta(t, tc.cost, res.Value, 1e-6)
			assert.NoError(t, Verify(m, res.Solution, res.Value, DefaultTolerance))
		})
	}
}

func TestVerifyMismatch(t *testing.T) {
	m, err := model.BuildDualTableau(threeProjects,
		targets(map[string]float64{"CO2": 1000, "NO": 35, "SO2": 25}, "CO2", "NO", "SO2"),
		[]string{"a", "b", "c"})
	require.NoError(t, err)

	assert.ErrorIs(t, Verify(m, []float64{20, 20, 20}, 230, DefaultTolerance), ErrMismatch)
	assert.ErrorIs(t, Verify(m, []float64{0, 0, 14.0666666667}, 105.5, DefaultTolerance), ErrMismatch)
	assert.NoError(t, Verify(m, []float64{16, 20, 5}, 105.5, DefaultTolerance))
}

func TestSolveInfeasible(t *testing.T) {
	m, err := model.BuildDualTableau(
		model.Catalog{{Name: "tiny", Cost: 10, Factors: map[string]float64{"P": 1}}},
		targets(map[string]float64{"P": 100}, "P"),
		[]string{"tiny"})
	require.NoError(t, err)

	_, _, err = Solve(m)
	assert.ErrorIs(t, err, ErrInfeasible)
}
