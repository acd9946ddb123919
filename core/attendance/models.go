package attendance

import (
	"context"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusExcused Status = "excused"
)

// DayFormat is the calendar-day encoding used in attendance documents;
// records carry no time component in their date.
const DayFormat = "2006-01-02"

func Day(t time.Time) string { return t.Format(DayFormat) }

type (
	// Record is one student's attendance for one class/course/day.
	// Records are append-only: nothing ever mutates them.
	Record struct {
		ID        string    `json:"id" firestore:"-"`
		StudentID string    `json:"studentId" firestore:"studentId"`
		ClassID   string    `json:"classId" firestore:"classId"`
		CourseID  string    `json:"courseId" firestore:"courseId"`
		Date      string    `json:"date" firestore:"date"`
		Status    Status    `json:"status" firestore:"status"`
		MarkedAt  time.Time `json:"markedAt" firestore:"markedAt"`
	}

	// QueryFilter applies AND on its set fields; ClassIDs is an OR within
	// one field. Date bounds are inclusive calendar days.
	QueryFilter struct {
		StudentID string
		ClassIDs  []string
		DateFrom  string
		DateTo    string
	}

	Stats struct {
		Present int `json:"present"`
		Absent  int `json:"absent"`
		Excused int `json:"excused"`
		Total   int `json:"total"`
	}

	Repository interface {
		CreateRecord(ctx context.Context, rec Record) (Record, error)
		FilterRecords(ctx context.Context, filter QueryFilter) ([]Record, error)
	}
)
