package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/childguard/app/core"
)

// Collection names match the mobile app's document store layout; renaming
// any of them orphans existing production data.
const (
	colStudents    = "students"
	colParents     = "parents"
	colTeachers    = "teachers"
	colAssignments = "course_teacher_assignments"
	colAttendance  = "attendance"
	colComments    = "comments"
	colFeedback    = "feedback"
	colSchools     = "schools"
	colFaculties   = "faculties"
	colDepartments = "departments"
	colCourses     = "courses"
)

type DB struct {
	client *firestore.Client
}

func Open(ctx context.Context, conf *core.Config) (*DB, error) {
	var opts []option.ClientOption
	if conf.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initializing firebase app")
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "opening firestore client")
	}
	return &DB{client: client}, nil
}

func (db *DB) Close() error {
	return db.client.Close()
}
