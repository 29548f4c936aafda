package main

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamreyes/Project-Green/model"
	"github.com/bamreyes/Project-Green/report"
	"github.com/bamreyes/Project-Green/simplex"
)

const testCatalog = "instance/testdata/projects.json"

var allProjects = []string{"Solar Microgrid", "Landfill Gas Capture", "Electric Bus Fleet"}

func TestRunPrintsAllocation(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, io.Discard, testCatalog, "", allProjects, options{tableau: true, verify: true})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Landfill Gas Capture")
	assert.Contains(t, out.String(), "Optimized cost:")
	assert.Contains(t, out.String(), "ITERATION 0")
	assert.Contains(t, out.String(), "Solution")
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, io.Discard, testCatalog, "instance/testdata/targets.yaml", allProjects, options{json: true})
	require.NoError(t, err)

	var res report.SolveResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Len(t, res.Projects, 3)
	assert.Equal(t, []string{"CO2", "CH4"}, res.PollutantOrder)
	assert.NotEmpty(t, res.Iterations)
}

func TestRunInfeasible(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, io.Discard, testCatalog, "", []string{"Solar Microgrid"}, options{tableau: true})

	var infeasible *simplex.InfeasibleError
	require.ErrorAs(t, err, &infeasible)
	assert.Contains(t, out.String(), "ITERATION 0")
}

func TestRunEmptySelection(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, io.Discard, testCatalog, "", []string{"Nope"}, options{})
	assert.ErrorIs(t, err, model.ErrEmptySelection)
	assert.Empty(t, out.String())
}

func TestRunVerboseLogsToLogWriter(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(&out, &logs, testCatalog, "", allProjects, options{verbose: true})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "P = ")
	assert.Contains(t, logs.String(), "D = ")
	assert.Contains(t, logs.String(), "iteration 1:")
	assert.NotContains(t, out.String(), "D = ")
	assert.Contains(t, out.String(), "Optimized cost:")
}

func TestRunVerboseEmptySelection(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(&out, &logs, testCatalog, "", []string{"Nope"}, options{verbose: true})
	assert.ErrorIs(t, err, model.ErrEmptySelection)
	assert.NotContains(t, logs.String(), "D = ")
}
