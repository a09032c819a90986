package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pvlab/helios/internal/contract"
	"github.com/pvlab/helios/internal/db"
	"github.com/pvlab/helios/internal/domain"
	"github.com/pvlab/helios/internal/repository"
	"github.com/pvlab/helios/internal/wbs"
)

type wbsService struct {
	nodes     repository.WBSNodeRepo
	baselines repository.BaselineRepo
	uow       db.UnitOfWork
}

func NewWBSService(
	nodes repository.WBSNodeRepo,
	baselines repository.BaselineRepo,
	uow db.UnitOfWork,
) WBSService {
	return &wbsService{nodes: nodes, baselines: baselines, uow: uow}
}

// loadStore builds the engine's working set from the persisted nodes.
// Ingest re-validates and re-rolls, so derived fields are trustworthy
// even if the database was written by an older build.
func loadStore(ctx context.Context, nodes repository.WBSNodeRepo) (*wbs.Store, error) {
	persisted, err := nodes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading nodes: %w", err)
	}
	s := wbs.NewStore()
	if err := s.Ingest(persisted); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *wbsService) Ingest(ctx context.Context, nodes []*domain.WBSNode) error {
	store := wbs.NewStore()
	if err := store.Ingest(nodes); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, n := range store.Nodes() {
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		n.UpdatedAt = now
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWBSNodeRepo(tx).ReplaceAll(ctx, store.Nodes())
	})
}

func (s *wbsService) MutateLeaf(ctx context.Context, nodeID string, patch wbs.LeafPatch) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txNodes := repository.NewSQLiteWBSNodeRepo(tx)

		store, err := loadStore(ctx, txNodes)
		if err != nil {
			return err
		}
		if err := store.MutateLeaf(nodeID, patch); err != nil {
			return err
		}

		edited, err := store.Node(nodeID)
		if err != nil {
			return err
		}
		edited.UpdatedAt = time.Now().UTC()

		// The rollup may have touched every ancestor; write the whole set.
		return txNodes.UpsertAll(ctx, store.Nodes())
	})
}

func (s *wbsService) Rollup(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txNodes := repository.NewSQLiteWBSNodeRepo(tx)
		store, err := loadStore(ctx, txNodes)
		if err != nil {
			return err
		}
		return txNodes.UpsertAll(ctx, store.Nodes())
	})
}

func (s *wbsService) Get(ctx context.Context, nodeID string) (*domain.WBSNode, error) {
	return s.nodes.GetByID(ctx, nodeID)
}

func (s *wbsService) Tree(ctx context.Context) ([]*domain.WBSNode, error) {
	store, err := loadStore(ctx, s.nodes)
	if err != nil {
		return nil, err
	}

	// Depth-first over the child index, so parents precede children and
	// siblings keep their order.
	var out []*domain.WBSNode
	var walk func(n *domain.WBSNode)
	walk = func(n *domain.WBSNode) {
		out = append(out, n)
		for _, c := range store.Children(n.ID) {
			walk(c)
		}
	}
	for _, root := range store.Roots() {
		walk(root)
	}
	return out, nil
}

func (s *wbsService) CriticalPath(ctx context.Context) ([]*domain.WBSNode, error) {
	store, err := loadStore(ctx, s.nodes)
	if err != nil {
		return nil, err
	}
	return store.CriticalPath(), nil
}

func (s *wbsService) Variance(ctx context.Context, req contract.VarianceRequest) (*contract.VarianceResult, error) {
	store, err := loadStore(ctx, s.nodes)
	if err != nil {
		return nil, err
	}
	n, err := store.Node(req.NodeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	return &contract.VarianceResult{
		NodeID:           n.ID,
		ScheduleVariance: wbs.ScheduleVariance(n, now),
		CostVariance:     wbs.CostVariance(n),
	}, nil
}

func (s *wbsService) CaptureBaseline(ctx context.Context, req contract.CaptureBaselineRequest) (*domain.Baseline, error) {
	store, err := loadStore(ctx, s.nodes)
	if err != nil {
		return nil, err
	}

	b, err := store.CaptureBaseline(req.Label, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	b.ID = uuid.New().String()
	b.CreatedBy = req.CreatedBy
	b.Description = req.Description

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteBaselineRepo(tx).Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *wbsService) ListBaselines(ctx context.Context) ([]*domain.Baseline, error) {
	return s.baselines.List(ctx)
}

func (s *wbsService) CompareBaseline(ctx context.Context, nodeID, label string) (*contract.BaselineDelta, error) {
	n, err := s.nodes.GetByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	b, err := s.baselines.GetByLabel(ctx, label)
	if err != nil {
		return nil, err
	}
	return wbs.CompareBaseline(n, b)
}
