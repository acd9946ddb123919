package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/childguard/app/core/parent"
)

type parentRepository struct {
	db *parentTable
}

var _ parent.Repository = (*parentRepository)(nil) // interface compliance check

func NewParentRepository(db *DB) *parentRepository {
	return &parentRepository{db: db.parents}
}

func (repo *parentRepository) CreateParent(ctx context.Context, p parent.Parent) (parent.Parent, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	repo.db.table[p.ID] = &p
	return p, nil
}

func (repo *parentRepository) GetParent(ctx context.Context, id string) (parent.Parent, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if p, ok := repo.db.table[id]; ok {
		return *p, nil
	}
	return parent.Parent{}, parent.ErrNotFound
}

func (repo *parentRepository) QueryAllParents(ctx context.Context) ([]parent.Parent, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	parents := make([]parent.Parent, 0, len(repo.db.table))
	for _, p := range repo.db.table {
		parents = append(parents, *p)
	}
	return parents, nil
}
