// Package report maps the optimum of the dual tableau back to project
// quantities and formats them for display.
package report

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/bamreyes/Project-Green/model"
	"github.com/bamreyes/Project-Green/simplex"
)

// Precision is the number of decimals of every displayed quantity.
const Precision = 2

// SolveResult is everything the presentation layer needs about one solve.
type SolveResult struct {
	ID string `json:"id"`

	Projects []model.Project `json:"projects"`

	//Units allocated per project, rounded, same order as Projects
	Units []float64 `json:"units"`

	//Costs per project, formatted
	Costs []string `json:"costs"`

	OptimizedCost string `json:"optimized_cost"`

	PollutantLabels  map[string]string `json:"pollutant_name"`
	TargetPollutants []float64         `json:"target_pollutants"`
	PollutantOrder   []string          `json:"pollutant_order"`

	//Pollutants achieved total per pollutant key, formatted
	Pollutants map[string]string `json:"pollutants"`

	Iterations []simplex.Iteration `json:"iterations"`
}

// Project builds the result for projects, solved in res against targets.
// res.Solution must hold one entry per project, in the same order. Without
// recorded iterations the cost falls back to res.Value.
func Project(projects []model.Project, targets *model.Targets, res *simplex.Result) *SolveResult {
	units := res.Solution

	costs := make([]string, len(projects))
	rounded := make([]float64, len(projects))
	for i, p := range projects {
		costs[i] = FormatAmount(scalar.RoundEven(p.Cost*units[i], Precision))
		rounded[i] = scalar.RoundEven(units[i], Precision)
	}

	// the displayed cost is the rounded snapshot of the last iteration
	cost := res.Value
	if n := len(res.Iterations); n > 0 {
		cost = res.Iterations[n-1].BasicSolution.Objective()
	}

	return &SolveResult{
		ID:               uuid.NewString(),
		Projects:         projects,
		Units:            rounded,
		Costs:            costs,
		OptimizedCost:    FormatAmount(cost),
		PollutantLabels:  targets.Labels(),
		TargetPollutants: targets.Minimums(),
		PollutantOrder:   targets.Keys(),
		Pollutants:       formatAll(Totals(projects, targets.Keys(), units)),
		Iterations:       res.Iterations,
	}
}

// Totals returns, per key, the reduction achieved by allocating units[i] of
// projects[i]. Projects with no units are skipped.
func Totals(projects []model.Project, keys []string, units []float64) map[string]float64 {
	totals := make(map[string]float64, len(keys))
	for _, k := range keys {
		totals[k] = 0
	}

	for i, u := range units {
		if u == 0 {
			continue
		}
		for _, k := range keys {
			totals[k] += projects[i].Factor(k) * u
		}
	}

	return totals
}

func formatAll(totals map[string]float64) map[string]string {
	out := make(map[string]string, len(totals))
	for k, v := range totals {
		out[k] = FormatAmount(scalar.RoundEven(v, Precision))
	}
	return out
}

// FormatAmount formats v with two decimals and comma thousands separators.
func FormatAmount(v float64) string {
	if v == 0 {
		// avoids "-0.00"
		v = 0
	}
	return message.NewPrinter(language.English).Sprintf("%.2f", v)
}
