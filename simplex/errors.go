package simplex

import "fmt"

// InfeasibleError is returned when the entering column has no positive entry.
// The dual is then unbounded, so the primal has no feasible point.
type InfeasibleError struct {
	Iterations []Iteration
}

func (e *InfeasibleError) Error() string {
	return "the solution is infeasible"
}

// LimitError is returned when the iteration cap is reached before optimality.
type LimitError struct {
	Limit      int
	Iterations []Iteration
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("simplex iteration limit of %d exceeded", e.Limit)
}
