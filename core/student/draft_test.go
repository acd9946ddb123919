package student

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/childguard/app/core/session"
)

// fakeRecorder hands out numbered sample refs; it can be told to fail.
type fakeRecorder struct {
	n        int
	startErr error
	stopErr  error
}

func (r *fakeRecorder) Start(ctx context.Context) error { return r.startErr }

func (r *fakeRecorder) Stop(ctx context.Context) (Sample, error) {
	if r.stopErr != nil {
		return Sample{}, r.stopErr
	}
	r.n++
	return Sample{Ref: fmt.Sprintf("/tmp/sample_%d.wav", r.n), Duration: 2 * time.Second}, nil
}

func record(t *testing.T, d *Draft, rec Recorder, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		if err := d.StartRecording(ctx, rec); err != nil {
			t.Fatalf("StartRecording() failed: %v", err)
		}
		if err := d.StopRecording(ctx, rec); err != nil {
			t.Fatalf("StopRecording() failed: %v", err)
		}
	}
}

func TestDraft_studentStartsOnVoiceCapture(t *testing.T) {
	d := NewDraft(session.UserTypeStudent)
	assert.Equal(t, StepVoiceCapture, d.Step())
	assert.Equal(t, session.UserTypeStudent, d.UserType())
	assert.Zero(t, d.SampleCount())
}

func TestDraft_parentSkipsVoiceCapture(t *testing.T) {
	d := NewDraft(session.UserTypeParent)
	assert.Equal(t, StepFormEntry, d.Step())

	// no recording on the parent path
	err := d.StartRecording(context.Background(), &fakeRecorder{})
	assert.Equal(t, ErrNotRecording, err)
}

func TestDraft_recorderIsSingleSlot(t *testing.T) {
	d := NewDraft(session.UserTypeStudent)
	rec := &fakeRecorder{}
	ctx := context.Background()

	assert.NoError(t, d.StartRecording(ctx, rec))
	assert.Equal(t, ErrRecorderBusy, d.StartRecording(ctx, rec))

	assert.NoError(t, d.StopRecording(ctx, rec))
	assert.Equal(t, ErrNotRecording, d.StopRecording(ctx, rec))
	assert.Equal(t, 1, d.SampleCount())
}

func TestDraft_advanceGatedOnFiveSamples(t *testing.T) {
	d := NewDraft(session.UserTypeStudent)
	rec := &fakeRecorder{}

	record(t, d, rec, RequiredSamples-1)
	assert.Equal(t, ErrSamplesRequired, d.Advance())
	assert.Equal(t, StepVoiceCapture, d.Step())

	// the fifth sample advances automatically
	record(t, d, rec, 1)
	assert.Equal(t, StepFormEntry, d.Step())
	assert.Equal(t, RequiredSamples, d.SampleCount())
}

func TestDraft_failedStopDiscardsNothing(t *testing.T) {
	d := NewDraft(session.UserTypeStudent)
	rec := &fakeRecorder{}
	ctx := context.Background()

	record(t, d, rec, 2)

	rec.stopErr = fmt.Errorf("mic unavailable")
	assert.NoError(t, d.StartRecording(ctx, rec))
	assert.Error(t, d.StopRecording(ctx, rec))

	// a failed cycle adds no sample but frees the recorder
	assert.Equal(t, 2, d.SampleCount())
	rec.stopErr = nil
	record(t, d, rec, 3)
	assert.Equal(t, StepFormEntry, d.Step())
}

func TestDraft_samplesReturnsACopy(t *testing.T) {
	d := NewDraft(session.UserTypeStudent)
	record(t, d, &fakeRecorder{}, 2)

	samples := d.Samples()
	samples[0].Ref = "mutated"
	assert.NotEqual(t, "mutated", d.Samples()[0].Ref)
}
