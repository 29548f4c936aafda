package model

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptySelection is returned when none of the selected ids is in the catalog.
var ErrEmptySelection = errors.New("model: selection matched no project")

// Model is the cost-minimisation problem for one selection of projects.
//
// The primal is
//
//	minimize   Σ cost_j x_j
//	subject to Σ factor_kj x_j >= minimum_k   for every pollutant k
//	           x_j <= cap                     for every project j
//	           x_j >= 0
//
// and Dual holds the tableau of its dual, ready for pivoting from the slack
// basis.
type Model struct {
	Projects []Project
	Targets  *Targets

	//Primal constraint rows, cap rows and the cost row; last column holds the constants
	Primal *mat.Dense

	//Dual tableau: one row per project plus the objective row
	Dual *mat.Dense

	NumProjects   int
	NumPollutants int
}

// NewModel builds the primal matrix and the dual tableau for projects.
func NewModel(projects []Project, targets *Targets) (*Model, error) {
	if len(projects) == 0 {
		return nil, ErrEmptySelection
	}
	if err := targets.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		Projects:      projects,
		Targets:       targets,
		NumProjects:   len(projects),
		NumPollutants: len(targets.Pollutants),
	}
	m.Primal = m.buildPrimal()
	m.Dual = Dual(m.Primal)

	return m, nil
}

// BuildDualTableau resolves ids against catalog and returns the model whose
// Dual field is the starting tableau.
func BuildDualTableau(catalog Catalog, targets *Targets, ids []string) (*Model, error) {
	return NewModel(catalog.Filter(ids), targets)
}

// buildPrimal lays out the pollutant rows, one cap row per project and the
// cost row, in this order.
func (m *Model) buildPrimal() *mat.Dense {
	n, p := m.NumProjects, m.NumPollutants
	primal := mat.NewDense(p+n+1, n+1, nil)

	for k, target := range m.Targets.Pollutants {
		for j, project := range m.Projects {
			primal.Set(k, j, project.Factor(target.Key))
		}
		primal.Set(k, n, target.Minimum)
	}

	//x_j <= cap written as -x_j >= -cap
	for j := range n {
		primal.Set(p+j, j, -1)
		primal.Set(p+j, n, -m.Targets.UnitCap)
	}

	for j, project := range m.Projects {
		primal.Set(p+n, j, project.Cost)
	}

	return primal
}

// Dual transposes primal, negates the objective row of the transpose and
// inserts an identity block of slack columns before the constant column.
func Dual(primal mat.Matrix) *mat.Dense {
	t := mat.DenseCopyOf(primal.T())
	rows, cols := t.Dims()

	obj := t.RawRowView(rows - 1)
	for j := range obj {
		obj[j] *= -1
	}

	tableau := mat.NewDense(rows, cols+rows, nil)
	tableau.Slice(0, rows, 0, cols-1).(*mat.Dense).Copy(t.Slice(0, rows, 0, cols-1))
	for i := range rows {
		tableau.Set(i, cols-1+i, 1)
		tableau.Set(i, cols+rows-1, t.At(i, cols-1))
	}

	return tableau
}

// StandardForm returns the primal as
//
//	minimize c^T x  subject to  A x = b, x >= 0
//
// with x = [units, pollutant surplus, cap slack].
func (m *Model) StandardForm() (c []float64, a *mat.Dense, b []float64) {
	n, p := m.NumProjects, m.NumPollutants
	numVars := n + p + n

	c = make([]float64, numVars)
	for j, project := range m.Projects {
		c[j] = project.Cost
	}

	a = mat.NewDense(p+n, numVars, nil)
	b = make([]float64, p+n)
	for k, target := range m.Targets.Pollutants {
		for j, project := range m.Projects {
			a.Set(k, j, project.Factor(target.Key))
		}
		a.Set(k, n+k, -1)
		b[k] = target.Minimum
	}
	for j := range n {
		a.Set(p+j, j, 1)
		a.Set(p+j, n+p+j, 1)
		b[p+j] = m.Targets.UnitCap
	}

	return c, a, b
}

func (m *Model) PrintPrimal(w io.Writer) {
	paux := mat.Formatted(m.Primal, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "P = %v\n", paux)
	r, c := m.Primal.Dims()
	fmt.Fprintln(w, r, c)
}

func (m *Model) PrintDual(w io.Writer) {
	daux := mat.Formatted(m.Dual, mat.Prefix("    "), mat.Squeeze())
	fmt.Fprintf(w, "D = %v\n", daux)
	r, c := m.Dual.Dims()
	fmt.Fprintln(w, r, c)
}
