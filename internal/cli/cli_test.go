package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with fresh command wiring and returns its
// combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeActivityCSV(t *testing.T) string {
	t.Helper()

	const csv = `description,quantity,unit,date
Flight to NYC,500,km,2024-01-15
Electricity bill,1000,kWh,2024-01-20
`
	path := filepath.Join(t.TempDir(), "activities.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))
	return path
}

func TestCLIFlow(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "ledger.json")
	csvPath := writeActivityCSV(t)

	out, err := runCommand(t, "ingest", csvPath, "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully processed 2 activities")

	out, err = runCommand(t, "summary", "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Total emissions: 455.00 kg CO2e")
	assert.Contains(t, out, "Energy")
	assert.Contains(t, out, "76.9%")
	assert.Contains(t, out, "2024-01")

	out, err = runCommand(t, "activities", "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Electricity bill")
	assert.Contains(t, out, "Flight to NYC")

	// Pick an activity ID off the listing for explain/scenario.
	id := firstULID(t, out)

	out, err = runCommand(t, "explain", id, "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Formula:")
	assert.Contains(t, out, "kg CO2e/")
	assert.Contains(t, out, "Source:")

	out, err = runCommand(t, "scenario", id, "--quantity", "0", "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Simulated: 0.00 kg CO2e")
	assert.Contains(t, out, "100.0% reduction")

	out, err = runCommand(t, "insights", "--narrative", "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Optimize Energy Footprint")
	assert.Contains(t, out, "Data Accuracy Improvement")
	assert.Contains(t, out, "**Critical Hotspot Identified:**")
	assert.Contains(t, out, "76.9%")
}

func TestCLIIngestMissingColumns(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "ledger.json")
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("foo,bar\n1,2\n"), 0o600))

	_, err := runCommand(t, "ingest", path, "--data", dataPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
}

func TestCLIExplainNotFound(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "ledger.json")

	_, err := runCommand(t, "explain", "01JF8Z4Y9GQ2M3N4P5Q6R7S8T9", "--data", dataPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCLIInsightsEmptyLedger(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "ledger.json")

	out, err := runCommand(t, "insights", "--narrative", "--data", dataPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No activities recorded yet")
	assert.Contains(t, out, "No data available to analyze")
}

var ulidPattern = regexp.MustCompile(`[0-9A-HJKMNP-TV-Z]{26}`)

func firstULID(t *testing.T, s string) string {
	t.Helper()
	id := ulidPattern.FindString(s)
	require.NotEmpty(t, id, "expected a ULID in output:\n%s", s)
	return id
}
