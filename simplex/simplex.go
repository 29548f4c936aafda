package simplex

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Result is the optimum of a dual tableau.
type Result struct {
	//Solution objective row entries under X1..Xn, i.e. the primal units per project
	Solution []float64

	//Value unrounded bottom-right entry of the final tableau
	Value float64

	Iterations []Iteration
}

// PivotToOptimum drives tableau to optimality with the Dantzig rule and
// returns the primal solution read from its objective row.
//
// tableau is modified in place. Its last row is the objective row, its last
// column the right-hand side, and the projectCount columns before Z hold the
// slack of each project row. The right-hand side of every constraint row
// must be non-negative.
func PivotToOptimum(tableau *mat.Dense, projectCount int, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	rows, cols := tableau.Dims()

	slackCount := cols - projectCount - 2
	labels := Labels(slackCount, projectCount)

	iterations := []Iteration{snapshot(0, tableau, labels)}
	iter := 0
	for {
		//entering column: most negative objective entry, first one on ties
		pivotCol := cfg.enteringColumn(tableau.RawRowView(rows - 1)[:cols-1])

		//optimality condition
		if pivotCol == -1 {
			break
		}

		if cfg.maxIterations > 0 && iter == cfg.maxIterations {
			return nil, &LimitError{Limit: cfg.maxIterations, Iterations: iterations}
		}

		//minimal ratio test over the constraint rows
		pivotRow := cfg.leavingRow(tableau, pivotCol)

		//dual is unbounded
		if pivotRow == -1 {
			cfg.logger.Print(fmt.Sprintf("column %s has no positive entry, problem is infeasible", labels[pivotCol]))
			return nil, &InfeasibleError{Iterations: iterations}
		}

		pivot(tableau, pivotRow, pivotCol)
		iter++
		cfg.logger.Print(fmt.Sprintf("iteration %d: %s enters at row %d", iter, labels[pivotCol], pivotRow))

		iterations = append(iterations, snapshot(iter, tableau, labels))
	}

	obj := tableau.RawRowView(rows - 1)
	solution := make([]float64, projectCount)
	copy(solution, obj[cols-projectCount-2:cols-2])

	return &Result{
		Solution:   solution,
		Value:      obj[cols-1],
		Iterations: iterations,
	}, nil
}

func (c config) enteringColumn(obj []float64) int {
	chosenJ := -1
	for j, v := range obj {
		if v >= -c.tolerance {
			continue
		}
		if chosenJ == -1 || v < obj[chosenJ] {
			chosenJ = j
		}
	}
	return chosenJ
}

func (c config) leavingRow(tableau *mat.Dense, pivotCol int) int {
	rows, cols := tableau.Dims()

	leaveIndex := -1
	minimalRatio := 0.0
	for i := range rows - 1 {
		u := tableau.At(i, pivotCol)
		if u <= c.tolerance {
			continue
		}
		ratio := tableau.At(i, cols-1) / u
		if leaveIndex == -1 || ratio < minimalRatio {
			minimalRatio = ratio
			leaveIndex = i
		}
	}
	return leaveIndex
}

// pivot normalises the pivot row and eliminates pivotCol from every other row.
func pivot(tableau *mat.Dense, pivotRow, pivotCol int) {
	rows, _ := tableau.Dims()

	pr := tableau.RawRowView(pivotRow)
	element := pr[pivotCol]
	for j := range pr {
		pr[j] /= element
	}

	for i := range rows {
		if i == pivotRow {
			continue
		}
		row := tableau.RawRowView(i)
		multiplier := row[pivotCol]
		for j := range row {
			row[j] -= pr[j] * multiplier
		}
	}
}
