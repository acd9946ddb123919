package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"github.com/childguard/app/core/feedback"
)

type feedbackRepository struct {
	col *firestore.CollectionRef
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *DB) *feedbackRepository {
	return &feedbackRepository{col: db.client.Collection(colFeedback)}
}

func (repo *feedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	ref, _, err := repo.col.Add(ctx, fb)
	if err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "creating feedback")
	}
	fb.ID = ref.ID
	return fb, nil
}
