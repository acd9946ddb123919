package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/childguard/app/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) *attendanceRepository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) CreateRecord(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	repo.db.table[rec.ID] = &rec
	return rec, nil
}

func (repo *attendanceRepository) FilterRecords(ctx context.Context, filter attendance.QueryFilter) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	records := make([]attendance.Record, 0)
	for _, rec := range repo.db.table {
		if filter.StudentID != "" && rec.StudentID != filter.StudentID {
			continue
		}
		if len(filter.ClassIDs) > 0 && !containsString(filter.ClassIDs, rec.ClassID) {
			continue
		}
		// dates are YYYY-MM-DD, string order is date order
		if filter.DateFrom != "" && rec.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && rec.Date > filter.DateTo {
			continue
		}
		records = append(records, *rec)
	}
	return records, nil
}

func containsString(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}
