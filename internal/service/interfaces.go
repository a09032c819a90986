package service

import (
	"context"

	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/domain"
	"github.com/pvlab/helios/internal/wbs"
)

type WBSService interface {
	// Ingest validates and replaces the working set, recomputing all
	// derived fields before anything is persisted.
	Ingest(ctx context.Context, nodes []*domain.WBSNode) error
	// MutateLeaf applies a status/progress/cost edit to a leaf node and
	// persists the resulting rollup.
	MutateLeaf(ctx context.Context, nodeID string, patch wbs.LeafPatch) error
	// Rollup recomputes and persists derived fields without other changes.
	Rollup(ctx context.Context) error
	Get(ctx context.Context, nodeID string) (*domain.WBSNode, error)
	Tree(ctx context.Context) ([]*domain.WBSNode, error)
	CriticalPath(ctx context.Context) ([]*domain.WBSNode, error)
	Variance(ctx context.Context, req contract.VarianceRequest) (*contract.VarianceResult, error)
	CaptureBaseline(ctx context.Context, req contract.CaptureBaselineRequest) (*domain.Baseline, error)
	ListBaselines(ctx context.Context) ([]*domain.Baseline, error)
	CompareBaseline(ctx context.Context, nodeID, label string) (*contract.BaselineDelta, error)
}

type ReportService interface {
	Status(ctx context.Context, req contract.StatusRequest) (*contract.StatusReport, error)
}
