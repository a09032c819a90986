package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pvlab/helios/internal/repository"
	"github.com/pvlab/helios/internal/service"
	"github.com/pvlab/helios/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	nodeRepo := repository.NewSQLiteWBSNodeRepo(database)
	baselineRepo := repository.NewSQLiteBaselineRepo(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		WBS:     service.NewWBSService(nodeRepo, baselineRepo, uow),
		Reports: service.NewReportService(nodeRepo),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func loadDemo(t *testing.T, app *App) {
	t.Helper()
	out, err := executeCmd(t, app, "demo", "--start", "2026-01-05")
	require.NoError(t, err)
	require.Contains(t, out, "16 nodes")
}

func TestDemoAndTree(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	out, err := executeCmd(t, app, "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "Solar PV Module Testing & Certification Project")
	assert.Contains(t, out, "Phase 2: Testing Execution")
	assert.Contains(t, out, "Environmental Testing")
}

func TestTree_EmptyDatabase(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "No nodes yet")
}

func TestNodeUpdate_PropagatesToAncestors(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	_, err := executeCmd(t, app, "node", "update", "1.2.3", "--progress", "100", "--status", "completed", "--actual-cost", "98000")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "node", "inspect", "1.2.3")
	require.NoError(t, err)
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "$98,000")

	// Phase 2 progress is the mean over its four tasks: 100+100+100+0.
	out, err = executeCmd(t, app, "node", "inspect", "1.2")
	require.NoError(t, err)
	assert.Contains(t, out, " 75%")
}

func TestNodeUpdate_RejectsContainer(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	_, err := executeCmd(t, app, "node", "update", "1.2", "--progress", "50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leaf")
}

func TestNodeUpdate_NoFlags(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	_, err := executeCmd(t, app, "node", "update", "1.2.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestNodeAddAndRemove(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	_, err := executeCmd(t, app, "node", "add", "1.3.5",
		"--parent", "1.3", "--name", "Archive Records", "--kind", "task",
		"--duration", "5", "--start", "2026-07-04", "--end", "2026-07-09",
		"--budget", "5000", "--assignee", "Records Team")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "node", "inspect", "1.3.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Archive Records")
	assert.Contains(t, out, "$5,000")

	_, err = executeCmd(t, app, "node", "remove", "1.3.5")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "node", "inspect", "1.3.5")
	require.Error(t, err)
}

func TestNodeRemove_ParentWithChildrenFails(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	_, err := executeCmd(t, app, "node", "remove", "1.2")
	require.Error(t, err)

	// The working set is untouched after the failed removal.
	out, err := executeCmd(t, app, "node", "inspect", "1.2.1")
	require.NoError(t, err)
	assert.Contains(t, out, "Visual Inspection")
}

func TestCriticalCommand(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	out, err := executeCmd(t, app, "critical")
	require.NoError(t, err)
	assert.Contains(t, out, "CRITICAL PATH")
	assert.Contains(t, out, "Electrical Performance Testing")
	assert.NotContains(t, out, "Test Method Selection")
}

func TestVarianceCommand(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	// Day 85 of a 30-day task that started on day 70: planned 50%.
	out, err := executeCmd(t, app, "variance", "1.2.3", "--as-of", "2026-03-31")
	require.NoError(t, err)
	assert.Contains(t, out, "+20.0 pts")
	assert.Contains(t, out, "ahead of schedule")
	assert.Contains(t, out, "+$35,000")
}

func TestVariance_UnknownNode(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	_, err := executeCmd(t, app, "variance", "9.9.9")
	require.Error(t, err)
}

func TestBaselineLifecycle(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	out, err := executeCmd(t, app, "baseline", "capture", "--label", "contract-award", "--by", "PM")
	require.NoError(t, err)
	assert.Contains(t, out, "contract-award")
	assert.Contains(t, out, "16 nodes")

	out, err = executeCmd(t, app, "baseline", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "contract-award")
	assert.Contains(t, out, "PM")

	out, err = executeCmd(t, app, "baseline", "compare", "1.2.3", "contract-award")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestBaselineCompare_AfterDrift(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	_, err := executeCmd(t, app, "baseline", "capture", "--label", "b1")
	require.NoError(t, err)

	// Shifting a leaf's cost does not move plan fields; drift stays zero.
	_, err = executeCmd(t, app, "node", "update", "1.2.3", "--actual-cost", "90000")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "baseline", "compare", "1.2.3", "b1")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}

func TestStatusCommand(t *testing.T) {
	app := testApp(t)
	loadDemo(t, app)

	out, err := executeCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "$500,000")
	assert.Contains(t, out, "Phase 1: Planning & Setup")
	assert.Contains(t, out, "Client Review & Project Closure")
}

func TestImportCommand(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "wbs.json")
	payload := `{"nodes": [
		{"id": "1", "name": "Root", "kind": "project", "duration_days": 10, "start_date": "2026-02-01", "end_date": "2026-02-11"},
		{"id": "1.1", "parent_id": "1", "name": "Task", "kind": "task", "duration_days": 10, "start_date": "2026-02-01", "end_date": "2026-02-11", "budget": 1000}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 nodes")

	out, err = executeCmd(t, app, "node", "inspect", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "$1,000")
}

func TestImportCommand_InvalidFile(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "bad.json")
	payload := `{"nodes": [{"id": "1", "kind": "chore", "start_date": "x", "end_date": "y"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	out, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, out, "problem(s)")
	assert.Contains(t, out, "invalid kind")
}
