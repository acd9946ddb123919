package feedback

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/session"
)

type fakeRepo struct {
	entries []Feedback
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) CreateFeedback(ctx context.Context, fb Feedback) (Feedback, error) {
	fb.ID = fmt.Sprintf("f%d", len(r.entries)+1)
	r.entries = append(r.entries, fb)
	return fb, nil
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()
	validate, translator := core.NewValidator()

	t.Run("ok", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, validate, translator)

		fb, err := svc.Submit(ctx, "p1", session.UserTypeParent, NewFeedback{Message: "  Very helpful ", Rating: 5})
		assert.NoError(t, err)
		assert.Equal(t, "Very helpful", fb.Message)
		assert.Equal(t, session.UserTypeParent, fb.UserType)
		assert.False(t, fb.CreatedAt.IsZero())
		assert.Len(t, repo.entries, 1)
	})

	t.Run("rating bounds", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, validate, translator)

		for _, rating := range []int{0, 6} {
			_, err := svc.Submit(ctx, "p1", session.UserTypeParent, NewFeedback{Message: "hi", Rating: rating})
			var vErr *core.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, []string{"rating"}, vErr.FieldNames())
		}
		assert.Empty(t, repo.entries)
	})

	t.Run("message required", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, validate, translator)

		_, err := svc.Submit(ctx, "p1", session.UserTypeParent, NewFeedback{Rating: 3})
		var vErr *core.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"message"}, vErr.FieldNames())
	})
}
