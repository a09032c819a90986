package repository

import (
	"context"
	"errors"

	"github.com/pvlab/helios/internal/domain"
)

// ErrNotFound is the persistence-layer miss sentinel, wrapped with entity
// context at each return site.
var ErrNotFound = errors.New("not found")

type WBSNodeRepo interface {
	// ReplaceAll swaps the entire persisted node set for the given one.
	ReplaceAll(ctx context.Context, nodes []*domain.WBSNode) error
	// UpsertAll writes the given nodes, inserting or overwriting by ID.
	UpsertAll(ctx context.Context, nodes []*domain.WBSNode) error
	GetByID(ctx context.Context, id string) (*domain.WBSNode, error)
	List(ctx context.Context) ([]*domain.WBSNode, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.WBSNode, error)
	Delete(ctx context.Context, id string) error
}

type BaselineRepo interface {
	Create(ctx context.Context, b *domain.Baseline) error
	GetByLabel(ctx context.Context, label string) (*domain.Baseline, error)
	// List returns baseline metadata ordered by capture time; entries are
	// not loaded.
	List(ctx context.Context) ([]*domain.Baseline, error)
	Delete(ctx context.Context, label string) error
}
