package student

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/childguard/app/core/session"
)

// RequiredSamples is how many voice samples the enrollment backend needs
// before it can build a voice print.
const RequiredSamples = 5

var (
	ErrRecorderBusy    = errors.New("a recording is already in progress")
	ErrNotRecording    = errors.New("no recording in progress")
	ErrSamplesRequired = errors.New("5 voice samples are required before continuing")
)

type Step int

const (
	StepVoiceCapture Step = iota
	StepFormEntry
)

func (s Step) String() string {
	if s == StepVoiceCapture {
		return "voice-capture"
	}
	return "form-entry"
}

type (
	// Sample references one captured audio blob. Ref is a local file path
	// produced by the recorder; the draft never inspects its contents.
	Sample struct {
		Ref      string
		Duration time.Duration
	}

	// Recorder is the device audio capture handle: a single-slot resource.
	// Implementations live outside this package; the draft only enforces
	// that one capture cycle runs at a time.
	Recorder interface {
		Start(ctx context.Context) error
		Stop(ctx context.Context) (Sample, error)
	}

	// Form is the student registration form. Mandatory fields are all
	// reported at once on a failed submission; no network call is made
	// until they pass.
	Form struct {
		FirstName    string `json:"firstName" validate:"required"`
		LastName     string `json:"lastName" validate:"required"`
		Age          string `json:"age" validate:"required"`
		FacultyID    string `json:"facultyId" validate:"required"`
		DepartmentID string `json:"departmentId" validate:"required"`
		SchoolID     string `json:"schoolId" validate:"required"`
		ParentID     string `json:"parentId" validate:"required"`
		Email        string `json:"email" validate:"omitempty,email"`
		Phone        string `json:"phone"`
	}

	// Draft is the in-memory registration state owned by the active
	// registration screen. It never survives the screen: completion or
	// abandonment discards it.
	Draft struct {
		mu        sync.Mutex
		userType  session.UserType
		step      Step
		samples   []Sample
		recording bool

		Form Form
	}
)

// NewDraft creates a fresh draft. Parent registrations have no voice
// capture step and start directly on the form.
func NewDraft(ut session.UserType) *Draft {
	d := &Draft{userType: ut}
	if ut == session.UserTypeParent {
		d.step = StepFormEntry
	}
	return d
}

func (d *Draft) UserType() session.UserType { return d.userType }

func (d *Draft) Step() Step {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.step
}

func (d *Draft) SampleCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.samples)
}

func (d *Draft) Samples() []Sample {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Sample, len(d.samples))
	copy(out, d.samples)
	return out
}

// StartRecording begins a capture cycle on rec.
func (d *Draft) StartRecording(ctx context.Context, rec Recorder) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepVoiceCapture {
		return ErrNotRecording
	}
	if d.recording {
		return ErrRecorderBusy
	}
	if err := rec.Start(ctx); err != nil {
		return err
	}
	d.recording = true
	return nil
}

// StopRecording ends the capture cycle and appends the sample. Recording
// the fifth sample advances the draft to form entry automatically; extra
// cycles before that may repeat any number of times.
func (d *Draft) StopRecording(ctx context.Context, rec Recorder) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.recording {
		return ErrNotRecording
	}
	d.recording = false
	sample, err := rec.Stop(ctx)
	if err != nil {
		return err
	}
	d.samples = append(d.samples, sample)
	if len(d.samples) >= RequiredSamples {
		d.step = StepFormEntry
	}
	return nil
}

// Advance moves to form entry explicitly; it is blocked until enough
// samples exist. There is no time-out.
func (d *Draft) Advance() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.samples) < RequiredSamples {
		return ErrSamplesRequired
	}
	d.step = StepFormEntry
	return nil
}
