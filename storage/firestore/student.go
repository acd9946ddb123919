package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/childguard/app/core/student"
)

type studentRepository struct {
	col *firestore.CollectionRef
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{col: db.client.Collection(colStudents)}
}

func (repo *studentRepository) GetStudent(ctx context.Context, id string) (student.Student, error) {
	doc, err := repo.col.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "getting student")
	}
	var s student.Student
	if err := doc.DataTo(&s); err != nil {
		return student.Student{}, errors.Wrap(err, "decoding student")
	}
	s.ID = doc.Ref.ID
	return s, nil
}

func (repo *studentRepository) QueryStudentsByClass(ctx context.Context, classID string) ([]student.Student, error) {
	iter := repo.col.Where("class_id", "==", classID).Documents(ctx)
	defer iter.Stop()

	students := make([]student.Student, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying students by class")
		}
		var s student.Student
		if err := doc.DataTo(&s); err != nil {
			return nil, errors.Wrap(err, "decoding student")
		}
		s.ID = doc.Ref.ID
		students = append(students, s)
	}
	return students, nil
}
