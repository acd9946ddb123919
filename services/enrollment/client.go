package enrollmentsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/childguard/app/core"
	"github.com/childguard/app/core/student"
)

const addStudentPath = "/api/add-student/"

// client posts the registration form and voice samples to the external
// enrollment backend as one multipart request. Voice-print processing is
// slow server-side, hence the long client timeout.
type client struct {
	baseURL string
	http    *http.Client
}

var _ student.EnrollmentService = (*client)(nil)

func NewClient(conf *core.Config) *client {
	return &client{
		baseURL: strings.TrimRight(conf.Enrollment.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.Enrollment.Timeout},
	}
}

func (c *client) Enroll(ctx context.Context, req student.EnrollmentRequest) (student.EnrollmentResult, error) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"firstName":  req.FirstName,
		"lastName":   req.LastName,
		"age":        req.Age,
		"school":     req.SchoolID,
		"faculty":    req.FacultyID,
		"department": req.DepartmentID,
		"parent":     req.ParentID,
	}
	for name, val := range fields {
		if err := w.WriteField(name, val); err != nil {
			return student.EnrollmentResult{}, errors.Wrap(err, "writing form field")
		}
	}
	for i, sample := range req.Samples {
		if err := c.writeSample(w, i, sample); err != nil {
			return student.EnrollmentResult{}, err
		}
	}
	if err := w.Close(); err != nil {
		return student.EnrollmentResult{}, errors.Wrap(err, "closing multipart body")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+addStudentPath, body)
	if err != nil {
		return student.EnrollmentResult{}, errors.Wrap(err, "building enrollment request")
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	res, err := c.http.Do(httpReq)
	if err != nil {
		return student.EnrollmentResult{}, errors.Wrap(err, "calling enrollment backend")
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return student.EnrollmentResult{}, errors.Wrap(err, "reading enrollment response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return student.EnrollmentResult{}, &student.EnrollmentError{Detail: parseErrorDetail(resBody)}
	}

	// success needs an explicit id in the payload; a 2xx without one is
	// still a failure
	var okRes struct {
		ID        string `json:"id"`
		StudentID string `json:"student_id"`
	}
	if err := json.Unmarshal(resBody, &okRes); err != nil {
		return student.EnrollmentResult{}, &student.EnrollmentError{Detail: "unexpected response from enrollment backend"}
	}
	id := okRes.StudentID
	if id == "" {
		id = okRes.ID
	}
	if id == "" {
		return student.EnrollmentResult{}, &student.EnrollmentError{Detail: "enrollment backend returned no student id"}
	}
	return student.EnrollmentResult{StudentID: id}, nil
}

// writeSample streams one recorded file into the multipart body as
// voice_sample_<i>. The part carries its real audio content type so the
// backend does not have to sniff it.
func (c *client) writeSample(w *multipart.Writer, i int, sample student.Sample) error {
	f, err := os.Open(sample.Ref)
	if err != nil {
		return errors.Wrapf(err, "opening voice sample %d", i)
	}
	defer f.Close()

	name := filepath.Base(sample.Ref)
	if name == "." || name == string(filepath.Separator) {
		name = "sample_" + strconv.Itoa(i) + ".wav"
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="voice_sample_`+strconv.Itoa(i)+`"; filename="`+name+`"`)
	h.Set("Content-Type", "audio/wav")
	part, err := w.CreatePart(h)
	if err != nil {
		return errors.Wrapf(err, "creating voice sample part %d", i)
	}
	if _, err := io.Copy(part, f); err != nil {
		return errors.Wrapf(err, "copying voice sample %d", i)
	}
	return nil
}

// parseErrorDetail extracts a human-readable message from the backend's
// error payload, which may be {"error": ...}, {"errors": [...]}, a bare
// JSON string or anything else.
func parseErrorDetail(body []byte) string {
	var objRes struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &objRes); err == nil {
		if objRes.Error != "" {
			return objRes.Error
		}
		if len(objRes.Errors) > 0 {
			return strings.Join(objRes.Errors, "; ")
		}
	}
	var strRes string
	if err := json.Unmarshal(body, &strRes); err == nil && strRes != "" {
		return strRes
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return "enrollment failed"
}
