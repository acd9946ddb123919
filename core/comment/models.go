package comment

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("comment not found")

// Sender type markers stored on each comment document.
const (
	TypeTeacher = "t"
	TypeParent  = "p"
)

type (
	Comment struct {
		ID         string    `json:"id" firestore:"-"`
		Comment    string    `json:"comment" firestore:"comment"`
		CourseID   string    `json:"course_id" firestore:"course_id"`
		StudentID  string    `json:"student_id" firestore:"student_id"`
		SenderID   string    `json:"sender_id" firestore:"sender_id"`
		ReceiverID string    `json:"receiver_id" firestore:"receiver_id"`
		Timestamp  time.Time `json:"timestamp" firestore:"timestamp"`
		Read       bool      `json:"read" firestore:"read"`
		Type       string    `json:"type" firestore:"type"`
	}

	NewComment struct {
		Comment   string `json:"comment" validate:"required"`
		CourseID  string `json:"course_id" validate:"required"`
		StudentID string `json:"student_id" validate:"required"`
	}

	Repository interface {
		CreateComment(ctx context.Context, c Comment) (Comment, error)
		QueryCommentsBySender(ctx context.Context, senderID string) ([]Comment, error)
		QueryCommentsByReceiver(ctx context.Context, receiverID string) ([]Comment, error)
		MarkCommentRead(ctx context.Context, id string) error
	}
)
