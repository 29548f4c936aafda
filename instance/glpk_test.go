//go:build glpk

package instance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamreyes/Project-Green/model"
)

func twoProjectModel(t *testing.T, min float64) *model.Model {
	m, err := model.NewModel([]model.Project{
		{Name: "A", Cost: 10, Factors: map[string]float64{"P": 5}},
		{Name: "B", Cost: 20, Factors: map[string]float64{"P": 8}},
	}, &model.Targets{UnitCap: 20, Pollutants: []model.PollutantTarget{{Key: "P", Minimum: min}}})
	require.NoError(t, err)
	return m
}

func TestSolveGLPK(t *testing.T) {
	cost, units, err := SolveGLPK(twoProjectModel(t, 140))
	require.NoError(t, err)
	assert.InDelta(t, 300, cost, 1e-9)
	assert.InDeltaSlice(t, []float64{20, 5}, units, 1e-9)
}

func TestSolveGLPKInfeasible(t *testing.T) {
	_, _, err := SolveGLPK(twoProjectModel(t, 1000))
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestWriteMPS(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "problem.mps")
	require.NoError(t, WriteMPS(twoProjectModel(t, 40), filename))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ROWS")
	assert.Contains(t, string(data), "BOUNDS")
}
