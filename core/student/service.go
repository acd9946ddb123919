package student

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/childguard/app/core"
)

type (
	// EnrollmentRequest is the multipart payload sent to the external
	// enrollment endpoint: the form fields plus exactly RequiredSamples
	// audio files.
	EnrollmentRequest struct {
		FirstName    string
		LastName     string
		Age          string
		SchoolID     string
		FacultyID    string
		DepartmentID string
		ParentID     string
		Samples      []Sample
	}

	EnrollmentResult struct {
		StudentID string
	}

	// EnrollmentService is the external voice-enrollment backend.
	EnrollmentService interface {
		Enroll(ctx context.Context, req EnrollmentRequest) (EnrollmentResult, error)
	}

	Service struct {
		repo       Repository
		enroll     EnrollmentService
		validate   *validator.Validate
		translator ut.Translator
	}
)

// EnrollmentError carries the enrollment backend's own error payload so it
// can be surfaced to the user verbatim.
type EnrollmentError struct {
	Detail string
}

func (e *EnrollmentError) Error() string { return e.Detail }

func NewService(repo Repository, enroll EnrollmentService, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{repo: repo, enroll: enroll, validate: validate, translator: translator}
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudent(ctx, id)
}

func (svc *Service) ByClass(ctx context.Context, classID string) ([]Student, error) {
	return svc.repo.QueryStudentsByClass(ctx, classID)
}

// Register submits the student draft to the enrollment backend. Validation
// failures are local and report every missing field at once; only a valid
// form triggers the network call. On any enrollment failure the draft stays
// on form entry — nothing is retried automatically.
func (svc *Service) Register(ctx context.Context, d *Draft) (EnrollmentResult, error) {
	if d.Step() != StepFormEntry {
		return EnrollmentResult{}, ErrSamplesRequired
	}

	d.Form.FirstName = core.CleanString(d.Form.FirstName)
	d.Form.LastName = core.CleanString(d.Form.LastName)
	d.Form.Email = core.CleanString(d.Form.Email, true /* lower */)
	if err := svc.validate.Struct(d.Form); err != nil {
		return EnrollmentResult{}, core.TranslateErrors(err, svc.translator)
	}

	samples := d.Samples()
	if len(samples) < RequiredSamples {
		return EnrollmentResult{}, ErrSamplesRequired
	}
	req := EnrollmentRequest{
		FirstName:    d.Form.FirstName,
		LastName:     d.Form.LastName,
		Age:          d.Form.Age,
		SchoolID:     d.Form.SchoolID,
		FacultyID:    d.Form.FacultyID,
		DepartmentID: d.Form.DepartmentID,
		ParentID:     d.Form.ParentID,
		Samples:      samples[:RequiredSamples], // first 5 if more were recorded
	}

	res, err := svc.enroll.Enroll(ctx, req)
	if err != nil {
		return EnrollmentResult{}, errors.Wrap(err, "enrolling student")
	}
	return res, nil
}
