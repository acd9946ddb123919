package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/childguard/app/core/teacher"
)

type teacherRepository struct {
	col         *firestore.CollectionRef
	assignments *firestore.CollectionRef
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *DB) *teacherRepository {
	return &teacherRepository{
		col:         db.client.Collection(colTeachers),
		assignments: db.client.Collection(colAssignments),
	}
}

func (repo *teacherRepository) CreateTeacher(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	ref, _, err := repo.col.Add(ctx, t)
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "creating teacher")
	}
	t.ID = ref.ID
	return t, nil
}

func (repo *teacherRepository) GetTeacherByEmail(ctx context.Context, email string) (teacher.Teacher, error) {
	iter := repo.col.Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "querying teacher by email")
	}
	var t teacher.Teacher
	if err := doc.DataTo(&t); err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "decoding teacher")
	}
	t.ID = doc.Ref.ID
	return t, nil
}

func (repo *teacherRepository) QueryAssignmentsByTeacher(ctx context.Context, teacherID string) ([]teacher.Assignment, error) {
	iter := repo.assignments.Where("teacherId", "==", teacherID).Documents(ctx)
	defer iter.Stop()

	assignments := make([]teacher.Assignment, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying assignments")
		}
		var a teacher.Assignment
		if err := doc.DataTo(&a); err != nil {
			return nil, errors.Wrap(err, "decoding assignment")
		}
		a.ID = doc.Ref.ID
		assignments = append(assignments, a)
	}
	return assignments, nil
}
