package simplex

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Precision is the number of decimals kept in recorded snapshots.
const Precision = 2

// LabeledTableau is a rounded copy of a tableau with its column labels.
type LabeledTableau struct {
	Labels []string    `json:"labels"`
	Rows   [][]float64 `json:"rows"`
}

// LabeledSolution is the rounded objective row without the Z column.
type LabeledSolution struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Value returns the value recorded for label, and false when absent.
func (s LabeledSolution) Value(label string) (float64, bool) {
	for i, l := range s.Labels {
		if l == label {
			return s.Values[i], true
		}
	}
	return 0, false
}

// Objective returns the right-hand side of the objective row, or 0 for an
// empty solution.
func (s LabeledSolution) Objective() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.Values[len(s.Values)-1]
}

// Iteration is the state of the tableau after Index pivots.
type Iteration struct {
	Index         int             `json:"iteration"`
	Tableau       LabeledTableau  `json:"tableau"`
	BasicSolution LabeledSolution `json:"basicSolution"`
}

// Labels returns the column labels of a dual tableau: S1..Sk for the dual
// variables, X1..Xn for the slack of each project row, Z and Solution.
func Labels(slackCount, projectCount int) []string {
	labels := make([]string, 0, slackCount+projectCount+2)
	for i := range slackCount {
		labels = append(labels, fmt.Sprintf("S%d", i+1))
	}
	for i := range projectCount {
		labels = append(labels, fmt.Sprintf("X%d", i+1))
	}
	return append(labels, "Z", "Solution")
}

func snapshot(index int, tableau *mat.Dense, labels []string) Iteration {
	rows, cols := tableau.Dims()

	lt := LabeledTableau{
		Labels: labels,
		Rows:   make([][]float64, rows),
	}
	for i := range rows {
		lt.Rows[i] = roundAll(tableau.RawRowView(i))
	}

	obj := tableau.RawRowView(rows - 1)
	values := make([]float64, 0, cols-1)
	values = append(values, obj[:cols-2]...)
	values = append(values, obj[cols-1])

	solLabels := make([]string, 0, cols-1)
	solLabels = append(solLabels, labels[:cols-2]...)
	solLabels = append(solLabels, labels[cols-1])

	return Iteration{
		Index:   index,
		Tableau: lt,
		BasicSolution: LabeledSolution{
			Labels: solLabels,
			Values: roundAll(values),
		},
	}
}

func roundAll(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = scalar.RoundEven(x, Precision)
	}
	return out
}
