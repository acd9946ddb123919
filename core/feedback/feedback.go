package feedback

import (
	"context"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/session"
)

type (
	Feedback struct {
		ID        string           `json:"id" firestore:"-"`
		UserID    string           `json:"user_id" firestore:"user_id"`
		UserType  session.UserType `json:"user_type" firestore:"user_type"`
		Message   string           `json:"message" firestore:"message"`
		Rating    int              `json:"rating" firestore:"rating"`
		CreatedAt time.Time        `json:"created_at" firestore:"created_at"`
	}

	NewFeedback struct {
		Message string `json:"message" validate:"required"`
		Rating  int    `json:"rating" validate:"min=1,max=5"`
	}

	Repository interface {
		CreateFeedback(ctx context.Context, fb Feedback) (Feedback, error)
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
	}
)

func NewService(repo Repository, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{repo: repo, validate: validate, translator: translator}
}

func (svc *Service) Submit(ctx context.Context, userID string, userType session.UserType, nf NewFeedback) (Feedback, error) {
	nf.Message = core.CleanString(nf.Message)
	if err := svc.validate.Struct(nf); err != nil {
		return Feedback{}, core.TranslateErrors(err, svc.translator)
	}

	fb, err := svc.repo.CreateFeedback(ctx, Feedback{
		UserID:    userID,
		UserType:  userType,
		Message:   nf.Message,
		Rating:    nf.Rating,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Feedback{}, errors.Wrap(err, "creating feedback")
	}
	return fb, nil
}
