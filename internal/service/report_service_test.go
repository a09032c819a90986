package service

import (
	"context"
	"testing"

	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/domain"
	"github.com/pvlab/helios/internal/repository"
	"github.com/pvlab/helios/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportService(t *testing.T) (ReportService, WBSService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	nodeRepo := repository.NewSQLiteWBSNodeRepo(db)
	baselineRepo := repository.NewSQLiteBaselineRepo(db)
	uow := testutil.NewTestUoW(db)
	return NewReportService(nodeRepo), NewWBSService(nodeRepo, baselineRepo, uow)
}

func reportTree() []*domain.WBSNode {
	nodes := testutil.NewTestTree()
	nodes[3].IsCritical = true
	milestone := testutil.NewTestNode("1.2", "Certification Granted",
		testutil.WithKind(domain.KindPhase), testutil.WithLevel(1), testutil.WithParent("1"))
	task := testutil.NewTestNode("1.2.1", "Final Review",
		testutil.WithLevel(2), testutil.WithParent("1.2"),
		testutil.WithSchedule(testutil.BaseDate.AddDate(0, 0, 30), 0),
		testutil.WithMilestone(), testutil.WithCritical())
	return append(nodes, milestone, task)
}

func TestReportService_Status_Totals(t *testing.T) {
	reports, svc := setupReportService(t)
	ctx := context.Background()

	require.NoError(t, svc.Ingest(ctx, reportTree()))

	at := testutil.BaseDate.AddDate(0, 0, 15)
	report, err := reports.Status(ctx, contract.StatusRequest{Now: &at})
	require.NoError(t, err)

	assert.InDelta(t, 300.0, report.TotalBudget, 1e-9)
	assert.InDelta(t, 300.0, report.TotalActualCost, 1e-9)
	assert.InDelta(t, 0.0, report.CostVariance, 1e-9)
	assert.InDelta(t, 0.0, report.CostVariancePct, 1e-9)
	assert.Equal(t, 2, report.CriticalCount)
}

func TestReportService_Status_CountsByStatus(t *testing.T) {
	reports, svc := setupReportService(t)
	ctx := context.Background()

	require.NoError(t, svc.Ingest(ctx, reportTree()))

	report, err := reports.Status(ctx, contract.StatusRequest{})
	require.NoError(t, err)

	total := 0
	for _, count := range report.CountsByStatus {
		total += count
	}
	assert.Equal(t, 6, total)
	assert.Equal(t, 1, report.CountsByStatus[domain.StatusCompleted])
	assert.Equal(t, 1, report.CountsByStatus[domain.StatusInProgress])
}

func TestReportService_Status_PhasesAndMilestones(t *testing.T) {
	reports, svc := setupReportService(t)
	ctx := context.Background()

	require.NoError(t, svc.Ingest(ctx, reportTree()))

	report, err := reports.Status(ctx, contract.StatusRequest{})
	require.NoError(t, err)

	require.Len(t, report.Phases, 2)
	assert.Equal(t, "1.1", report.Phases[0].NodeID)
	assert.InDelta(t, 75.0, report.Phases[0].Progress, 1e-9)

	require.Len(t, report.Milestones, 1)
	assert.Equal(t, "1.2.1", report.Milestones[0].NodeID)
	assert.False(t, report.Milestones[0].Completed)
}

func TestReportService_Status_EmptyPlan(t *testing.T) {
	reports, _ := setupReportService(t)

	report, err := reports.Status(context.Background(), contract.StatusRequest{})
	require.NoError(t, err)
	assert.Zero(t, report.TotalBudget)
	assert.Zero(t, report.OverallProgress)
	assert.Empty(t, report.Phases)
}
