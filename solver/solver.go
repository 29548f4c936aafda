// Package solver chains problem construction, pivoting and projection into
// the single entry point used by the presentation layer.
package solver

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bamreyes/Project-Green/crosscheck"
	"github.com/bamreyes/Project-Green/model"
	"github.com/bamreyes/Project-Green/report"
	"github.com/bamreyes/Project-Green/simplex"
)

// Solver solves selections against a fixed catalog and target table. It
// holds no per-solve state, so Solve may be called concurrently.
type Solver struct {
	catalog model.Catalog
	targets *model.Targets

	logger     simplex.Logger
	pivotOpts  []simplex.Option
	crossCheck bool
}

type Option func(*Solver) error

// WithLogger sends progress messages of every solve to logger.
func WithLogger(logger simplex.Logger) Option {
	return func(s *Solver) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		s.logger = logger
		s.pivotOpts = append(s.pivotOpts, simplex.WithLogger(logger))
		return nil
	}
}

// WithTolerance sets the zero tolerance of the pivoting rules.
func WithTolerance(eps float64) Option {
	return func(s *Solver) error {
		if eps < 0 {
			return errors.Errorf("negative tolerance %v", eps)
		}
		s.pivotOpts = append(s.pivotOpts, simplex.WithTolerance(eps))
		return nil
	}
}

// WithMaxIterations caps the pivots of every solve.
func WithMaxIterations(n int) Option {
	return func(s *Solver) error {
		s.pivotOpts = append(s.pivotOpts, simplex.WithMaxIterations(n))
		return nil
	}
}

// WithCrossCheck verifies every optimum against an independent LP solve.
func WithCrossCheck() Option {
	return func(s *Solver) error {
		s.crossCheck = true
		return nil
	}
}

// New returns a solver for catalog and targets.
func New(catalog model.Catalog, targets *model.Targets, opts ...Option) (*Solver, error) {
	if err := targets.Validate(); err != nil {
		return nil, err
	}

	s := &Solver{
		catalog: catalog,
		targets: targets,
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, errors.Wrap(err, "applying solver option")
		}
	}

	return s, nil
}

// Solve finds the cheapest allocation of units over the selected projects.
//
// It fails with model.ErrEmptySelection when no id is in the catalog and
// with *simplex.InfeasibleError when the targets cannot be met.
func (s *Solver) Solve(ids []string) (*report.SolveResult, error) {
	m, err := model.BuildDualTableau(s.catalog, s.targets, ids)
	if err != nil {
		return nil, err
	}

	res, err := simplex.PivotToOptimum(m.Dual, m.NumProjects, s.pivotOpts...)
	if err != nil {
		return nil, err
	}

	if s.crossCheck {
		if err := crosscheck.Verify(m, res.Solution, res.Value, crosscheck.DefaultTolerance); err != nil {
			return nil, err
		}
	}

	result := report.Project(m.Projects, s.targets, res)
	s.logger.Print(fmt.Sprintf("solve %s: %d projects, %d iterations, cost %s",
		result.ID, len(result.Projects), len(result.Iterations), result.OptimizedCost))

	return result, nil
}

// Iterations returns the iterations recorded before err, if any.
func Iterations(err error) []simplex.Iteration {
	var infeasible *simplex.InfeasibleError
	if errors.As(err, &infeasible) {
		return infeasible.Iterations
	}
	var limit *simplex.LimitError
	if errors.As(err, &limit) {
		return limit.Iterations
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Print(v ...interface{}) {}
