// Package crosscheck re-solves a model's primal with gonum's LP solver and
// compares it with the tableau optimum.
package crosscheck

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/bamreyes/Project-Green/model"
)

// DefaultTolerance is the absolute cost difference Verify accepts.
const DefaultTolerance = 1e-6

var (
	ErrMismatch   = errors.New("crosscheck: optimal costs differ")
	ErrInfeasible = errors.New("crosscheck: primal is infeasible")
)

// Solve returns the optimal cost and per-project units of m's primal.
func Solve(m *model.Model) (float64, []float64, error) {
	c, a, b := m.StandardForm()

	opt, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return 0, nil, ErrInfeasible
		}
		return 0, nil, errors.Wrap(err, "crosscheck: solving primal")
	}

	units := make([]float64, m.NumProjects)
	copy(units, x[:m.NumProjects])
	return opt, units, nil
}

// Verify checks that cost is the optimum of m's primal and that units is a
// feasible allocation with that cost, both within tol.
func Verify(m *model.Model, units []float64, cost, tol float64) error {
	opt, _, err := Solve(m)
	if err != nil {
		return err
	}
	if math.Abs(opt-cost) > tol {
		return errors.Wrapf(ErrMismatch, "tableau %v, lp %v", cost, opt)
	}

	var total float64
	for j, p := range m.Projects {
		if units[j] < -tol || units[j] > m.Targets.UnitCap+tol {
			return errors.Wrapf(ErrMismatch, "%s: %v units outside [0, %v]", p.Name, units[j], m.Targets.UnitCap)
		}
		total += p.Cost * units[j]
	}
	if math.Abs(total-cost) > tol {
		return errors.Wrapf(ErrMismatch, "allocation costs %v, optimum %v", total, cost)
	}

	for _, t := range m.Targets.Pollutants {
		var achieved float64
		for j, p := range m.Projects {
			achieved += p.Factor(t.Key) * units[j]
		}
		if achieved < t.Minimum-tol {
			return errors.Wrapf(ErrMismatch, "%s: %v below minimum %v", t.Key, achieved, t.Minimum)
		}
	}

	return nil
}
