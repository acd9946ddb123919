package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/childguard/app/core/feedback"
)

type feedbackRepository struct {
	db *feedbackTable
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *DB) *feedbackRepository {
	return &feedbackRepository{db: db.feedback}
}

func (repo *feedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	repo.db.table[fb.ID] = &fb
	return fb, nil
}

// All lists every submitted feedback entry. Test helper.
func (repo *feedbackRepository) All(ctx context.Context) ([]feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	all := make([]feedback.Feedback, 0, len(repo.db.table))
	for _, fb := range repo.db.table {
		all = append(all, *fb)
	}
	return all, nil
}
