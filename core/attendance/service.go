package attendance

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
)

type (
	// Roll is one day's marks for a class/course: studentID -> status.
	// Students missing from Marks are recorded absent.
	Roll struct {
		ClassID    string
		CourseID   string
		Date       string
		StudentIDs []string
		Marks      map[string]Status
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SaveRoll appends one record per student. Writes are independent per-row
// appends with no rollback: a failure partway leaves the committed rows in
// place and is reported as a single error (at-least-once, non-atomic).
func (svc *Service) SaveRoll(ctx context.Context, roll Roll) error {
	if roll.Date == "" {
		roll.Date = Day(time.Now().UTC())
	}
	now := time.Now().UTC()
	for _, id := range roll.StudentIDs {
		status, ok := roll.Marks[id]
		if !ok {
			status = StatusAbsent
		}
		rec := Record{
			StudentID: id,
			ClassID:   roll.ClassID,
			CourseID:  roll.CourseID,
			Date:      roll.Date,
			Status:    status,
			MarkedAt:  now,
		}
		if _, err := svc.repo.CreateRecord(ctx, rec); err != nil {
			return errors.Wrapf(err, "saving attendance for student %s", id)
		}
	}
	return nil
}

// ForStudent lists a student's records, most useful for the student/parent
// attendance view.
func (svc *Service) ForStudent(ctx context.Context, studentID string) ([]Record, error) {
	return svc.repo.FilterRecords(ctx, QueryFilter{StudentID: studentID})
}

// ClassStats aggregates a teacher's classes over an inclusive day range.
func (svc *Service) ClassStats(ctx context.Context, classIDs []string, from, to string) (Stats, error) {
	recs, err := svc.repo.FilterRecords(ctx, QueryFilter{ClassIDs: classIDs, DateFrom: from, DateTo: to})
	if err != nil {
		return Stats{}, err
	}
	var stats Stats
	for _, rec := range recs {
		switch rec.Status {
		case StatusPresent:
			stats.Present++
		case StatusAbsent:
			stats.Absent++
		case StatusExcused:
			stats.Excused++
		}
		stats.Total++
	}
	return stats, nil
}

// Percentage is the attendance rate: round(present/total * 100).
// Only "present" counts; late and excused days do not.
func Percentage(records []Record) int {
	if len(records) == 0 {
		return 0
	}
	var present int
	for _, rec := range records {
		if rec.Status == StatusPresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(records)) * 100))
}
