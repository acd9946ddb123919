package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/childguard/app/core/parent"
)

type parentRepository struct {
	col *firestore.CollectionRef
}

var _ parent.Repository = (*parentRepository)(nil) // interface compliance check

func NewParentRepository(db *DB) *parentRepository {
	return &parentRepository{col: db.client.Collection(colParents)}
}

func (repo *parentRepository) CreateParent(ctx context.Context, p parent.Parent) (parent.Parent, error) {
	ref, _, err := repo.col.Add(ctx, p)
	if err != nil {
		return parent.Parent{}, errors.Wrap(err, "creating parent")
	}
	p.ID = ref.ID
	return p, nil
}

func (repo *parentRepository) GetParent(ctx context.Context, id string) (parent.Parent, error) {
	doc, err := repo.col.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return parent.Parent{}, parent.ErrNotFound
		}
		return parent.Parent{}, errors.Wrap(err, "getting parent")
	}
	var p parent.Parent
	if err := doc.DataTo(&p); err != nil {
		return parent.Parent{}, errors.Wrap(err, "decoding parent")
	}
	p.ID = doc.Ref.ID
	return p, nil
}

func (repo *parentRepository) QueryAllParents(ctx context.Context) ([]parent.Parent, error) {
	iter := repo.col.Documents(ctx)
	defer iter.Stop()

	parents := make([]parent.Parent, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying parents")
		}
		var p parent.Parent
		if err := doc.DataTo(&p); err != nil {
			return nil, errors.Wrap(err, "decoding parent")
		}
		p.ID = doc.Ref.ID
		parents = append(parents, p)
	}
	return parents, nil
}
