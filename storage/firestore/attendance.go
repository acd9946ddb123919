package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/childguard/app/core/attendance"
)

type attendanceRepository struct {
	col *firestore.CollectionRef
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) *attendanceRepository {
	return &attendanceRepository{col: db.client.Collection(colAttendance)}
}

func (repo *attendanceRepository) CreateRecord(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	ref, _, err := repo.col.Add(ctx, rec)
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "creating attendance record")
	}
	rec.ID = ref.ID
	return rec, nil
}

func (repo *attendanceRepository) FilterRecords(ctx context.Context, filter attendance.QueryFilter) ([]attendance.Record, error) {
	q := repo.col.Query
	if filter.StudentID != "" {
		q = q.Where("studentId", "==", filter.StudentID)
	}
	if len(filter.ClassIDs) > 0 {
		q = q.Where("classId", "in", filter.ClassIDs)
	}
	if filter.DateFrom != "" {
		q = q.Where("date", ">=", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("date", "<=", filter.DateTo)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	records := make([]attendance.Record, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "querying attendance records")
		}
		var rec attendance.Record
		if err := doc.DataTo(&rec); err != nil {
			return nil, errors.Wrap(err, "decoding attendance record")
		}
		rec.ID = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}
