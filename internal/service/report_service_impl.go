package service

import (
	"context"
	"sort"
	"time"

	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/domain"
	"github.com/pvlab/helios/internal/repository"
	"github.com/pvlab/helios/internal/wbs"
)

type reportService struct {
	nodes repository.WBSNodeRepo
}

func NewReportService(nodes repository.WBSNodeRepo) ReportService {
	return &reportService{nodes: nodes}
}

func (s *reportService) Status(ctx context.Context, req contract.StatusRequest) (*contract.StatusReport, error) {
	store, err := loadStore(ctx, s.nodes)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	report := &contract.StatusReport{
		GeneratedAt:    now,
		CountsByStatus: make(map[domain.NodeStatus]int),
	}

	roots := store.Roots()
	var progressSum, svSum float64
	for _, root := range roots {
		report.TotalBudget += root.Budget
		report.TotalActualCost += root.ActualCost
		progressSum += root.Progress
		svSum += wbs.ScheduleVariance(root, now)
	}
	if len(roots) > 0 {
		report.OverallProgress = progressSum / float64(len(roots))
		report.ScheduleVariance = svSum / float64(len(roots))
	}
	report.CostVariance = report.TotalBudget - report.TotalActualCost
	if report.TotalBudget > 0 {
		report.CostVariancePct = report.CostVariance / report.TotalBudget * 100
	}

	for _, n := range store.Nodes() {
		report.CountsByStatus[n.Status]++
		if n.IsCritical {
			report.CriticalCount++
		}
		if n.IsMilestone {
			report.Milestones = append(report.Milestones, contract.MilestoneSummary{
				NodeID:    n.ID,
				Name:      n.Name,
				Due:       n.EndDate,
				Completed: n.Status == domain.StatusCompleted,
			})
		}
	}
	sort.SliceStable(report.Milestones, func(i, j int) bool {
		if !report.Milestones[i].Due.Equal(report.Milestones[j].Due) {
			return report.Milestones[i].Due.Before(report.Milestones[j].Due)
		}
		return report.Milestones[i].NodeID < report.Milestones[j].NodeID
	})

	for _, root := range roots {
		for _, child := range store.Children(root.ID) {
			if child.Kind != domain.KindPhase {
				continue
			}
			report.Phases = append(report.Phases, contract.PhaseSummary{
				NodeID:           child.ID,
				Name:             child.Name,
				Status:           child.Status,
				Progress:         child.Progress,
				Budget:           child.Budget,
				ActualCost:       child.ActualCost,
				CostVariance:     wbs.CostVariance(child),
				ScheduleVariance: wbs.ScheduleVariance(child, now),
			})
		}
	}

	return report, nil
}
