package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/childguard/app/core/comment"
)

type commentRepository struct {
	db *commentTable
}

var _ comment.Repository = (*commentRepository)(nil) // interface compliance check

func NewCommentRepository(db *DB) *commentRepository {
	return &commentRepository{db: db.comments}
}

func (repo *commentRepository) CreateComment(ctx context.Context, c comment.Comment) (comment.Comment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	repo.db.table[c.ID] = &c
	return c, nil
}

func (repo *commentRepository) QueryCommentsBySender(ctx context.Context, senderID string) ([]comment.Comment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	comments := make([]comment.Comment, 0)
	for _, c := range repo.db.table {
		if c.SenderID == senderID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (repo *commentRepository) QueryCommentsByReceiver(ctx context.Context, receiverID string) ([]comment.Comment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	comments := make([]comment.Comment, 0)
	for _, c := range repo.db.table {
		if c.ReceiverID == receiverID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (repo *commentRepository) MarkCommentRead(ctx context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	c, ok := repo.db.table[id]
	if !ok {
		return comment.ErrNotFound
	}
	c.Read = true
	return nil
}
