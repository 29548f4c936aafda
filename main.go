package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/bamreyes/Project-Green/instance"
	"github.com/bamreyes/Project-Green/model"
	"github.com/bamreyes/Project-Green/report"
	"github.com/bamreyes/Project-Green/simplex"
	"github.com/bamreyes/Project-Green/solver"
)

func main() {
	catalogFile := flag.String("catalog", "data/projects.json", "project catalog (JSON or YAML)")
	targetsFile := flag.String("targets", "", "pollutant targets (YAML); built-in table when empty")
	showTableau := flag.Bool("tableau", false, "print every iteration tableau")
	verify := flag.Bool("verify", false, "cross-check the optimum with an independent LP solve")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	mpsFile := flag.String("mps", "", "write the primal problem to this MPS file (needs -tags glpk)")
	verbose := flag.Bool("v", false, "log pivots and print the primal and dual matrices")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] PROJECT...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, os.Stderr, *catalogFile, *targetsFile, flag.Args(), options{
		tableau: *showTableau,
		verify:  *verify,
		json:    *asJSON,
		mps:     *mpsFile,
		verbose: *verbose,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	tableau bool
	verify  bool
	json    bool
	mps     string
	verbose bool
}

// run writes results to w and, with -v, logs and matrices to logw.
func run(w, logw io.Writer, catalogFile, targetsFile string, ids []string, o options) error {
	catalog, err := instance.NewReader(catalogFile).ReadCatalog()
	if err != nil {
		return err
	}

	targets := model.DefaultTargets()
	if targetsFile != "" {
		if targets, err = instance.NewReader(targetsFile).ReadTargets(); err != nil {
			return err
		}
	}

	// a failed build is reported by Solve below
	m, buildErr := model.BuildDualTableau(catalog, targets, ids)

	var opts []solver.Option
	if o.verbose {
		opts = append(opts, solver.WithLogger(log.New(logw, "", log.LstdFlags)))
		if buildErr == nil {
			m.PrintPrimal(logw)
			m.PrintDual(logw)
		}
	}
	if o.verify {
		opts = append(opts, solver.WithCrossCheck())
	}

	if o.mps != "" && buildErr == nil {
		if err := instance.WriteMPS(m, o.mps); err != nil {
			return err
		}
	}

	s, err := solver.New(catalog, targets, opts...)
	if err != nil {
		return err
	}

	result, err := s.Solve(ids)
	if err != nil {
		if its := solver.Iterations(err); len(its) > 0 && o.tableau {
			printIterations(w, its)
		}
		if errors.Is(err, model.ErrEmptySelection) {
			return errors.Wrapf(err, "none of %q is in %s", ids, catalogFile)
		}
		return err
	}

	if o.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(w, result)
	if o.verify && instance.GLPKAvailable {
		cost, _, err := instance.SolveGLPK(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "glpk cost:      %s\n", report.FormatAmount(cost))
	}
	if o.tableau {
		printIterations(w, result.Iterations)
	}
	return nil
}

func printResult(w io.Writer, r *report.SolveResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Project\tUnits\tCost\t")
	for i, p := range r.Projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", p.Name, report.FormatAmount(r.Units[i]), r.Costs[i])
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Pollutant\tAchieved\tMinimum\t")
	for i, key := range r.PollutantOrder {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", key, r.Pollutants[key], report.FormatAmount(r.TargetPollutants[i]))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nOptimized cost: %s\n", r.OptimizedCost)
}

func printIterations(w io.Writer, its []simplex.Iteration) {
	for _, it := range its {
		fmt.Fprintf(w, "\n-------------------- ITERATION %v ----------------------\n", it.Index)
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, strings.Join(it.Tableau.Labels, "\t")+"\t")
		for _, row := range it.Tableau.Rows {
			fmt.Fprintln(tw, joinValues(row)+"\t")
		}
		tw.Flush()

		fmt.Fprintln(w, "basic solution:")
		tw = tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, strings.Join(it.BasicSolution.Labels, "\t")+"\t")
		fmt.Fprintln(tw, joinValues(it.BasicSolution.Values)+"\t")
		tw.Flush()
	}
}

func joinValues(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.2f", x)
	}
	return strings.Join(parts, "\t")
}
