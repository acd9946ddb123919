package comment

import (
	"context"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/student"
)

var ErrNoParent = errors.New("student has no linked parent")

type Service struct {
	repo       Repository
	students   student.Repository
	validate   *validator.Validate
	translator ut.Translator
}

func NewService(repo Repository, students student.Repository, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{repo: repo, students: students, validate: validate, translator: translator}
}

// SendFromTeacher posts a comment about a student to the student's parent.
// The receiver is resolved from the student document; a student with no
// linked parent cannot receive teacher comments.
func (svc *Service) SendFromTeacher(ctx context.Context, teacherID string, nc NewComment) (Comment, error) {
	nc.Comment = core.CleanString(nc.Comment)
	if err := svc.validate.Struct(nc); err != nil {
		return Comment{}, core.TranslateErrors(err, svc.translator)
	}

	s, err := svc.students.GetStudent(ctx, nc.StudentID)
	if err != nil {
		return Comment{}, errors.Wrap(err, "finding student")
	}
	if s.ParentID == "" {
		return Comment{}, ErrNoParent
	}
	return svc.create(ctx, nc, teacherID, s.ParentID, TypeTeacher)
}

// SendFromParent posts a reply addressed to a specific teacher.
func (svc *Service) SendFromParent(ctx context.Context, parentID, teacherID string, nc NewComment) (Comment, error) {
	nc.Comment = core.CleanString(nc.Comment)
	if err := svc.validate.Struct(nc); err != nil {
		return Comment{}, core.TranslateErrors(err, svc.translator)
	}
	return svc.create(ctx, nc, parentID, teacherID, TypeParent)
}

func (svc *Service) create(ctx context.Context, nc NewComment, senderID, receiverID, typ string) (Comment, error) {
	c, err := svc.repo.CreateComment(ctx, Comment{
		Comment:    nc.Comment,
		CourseID:   nc.CourseID,
		StudentID:  nc.StudentID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Timestamp:  time.Now().UTC(),
		Read:       false,
		Type:       typ,
	})
	if err != nil {
		return Comment{}, errors.Wrap(err, "creating comment")
	}
	return c, nil
}

func (svc *Service) Sent(ctx context.Context, senderID string) ([]Comment, error) {
	return svc.repo.QueryCommentsBySender(ctx, senderID)
}

func (svc *Service) Received(ctx context.Context, receiverID string) ([]Comment, error) {
	return svc.repo.QueryCommentsByReceiver(ctx, receiverID)
}

// MarkRead flips the read flag. Idempotent: marking an already-read comment
// is a no-op, the flag never flips back.
func (svc *Service) MarkRead(ctx context.Context, id string) error {
	return svc.repo.MarkCommentRead(ctx, id)
}

// UnreadCount is the badge count for an inbox.
func (svc *Service) UnreadCount(ctx context.Context, receiverID string) (int, error) {
	comments, err := svc.repo.QueryCommentsByReceiver(ctx, receiverID)
	if err != nil {
		return 0, err
	}
	var n int
	for _, c := range comments {
		if !c.Read {
			n++
		}
	}
	return n, nil
}
