package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/childguard/app/core/comment"
)

type commentRepository struct {
	col *firestore.CollectionRef
}

var _ comment.Repository = (*commentRepository)(nil) // interface compliance check

func NewCommentRepository(db *DB) *commentRepository {
	return &commentRepository{col: db.client.Collection(colComments)}
}

func (repo *commentRepository) CreateComment(ctx context.Context, c comment.Comment) (comment.Comment, error) {
	ref, _, err := repo.col.Add(ctx, c)
	if err != nil {
		return comment.Comment{}, errors.Wrap(err, "creating comment")
	}
	c.ID = ref.ID
	return c, nil
}

func (repo *commentRepository) QueryCommentsBySender(ctx context.Context, senderID string) ([]comment.Comment, error) {
	return repo.query(ctx, "sender_id", senderID)
}

func (repo *commentRepository) QueryCommentsByReceiver(ctx context.Context, receiverID string) ([]comment.Comment, error) {
	return repo.query(ctx, "receiver_id", receiverID)
}

func (repo *commentRepository) query(ctx context.Context, field, val string) ([]comment.Comment, error) {
	iter := repo.col.Where(field, "==", val).Documents(ctx)
	defer iter.Stop()

	comments := make([]comment.Comment, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying comments")
		}
		var c comment.Comment
		if err := doc.DataTo(&c); err != nil {
			return nil, errors.Wrap(err, "decoding comment")
		}
		c.ID = doc.Ref.ID
		comments = append(comments, c)
	}
	return comments, nil
}

func (repo *commentRepository) MarkCommentRead(ctx context.Context, id string) error {
	_, err := repo.col.Doc(id).Update(ctx, []firestore.Update{{Path: "read", Value: true}})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return comment.ErrNotFound
		}
		return errors.Wrap(err, "marking comment read")
	}
	return nil
}
