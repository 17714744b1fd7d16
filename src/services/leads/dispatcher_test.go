package leads

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"Backend-Brightlane-Leadkit/src/jobs"
	"Backend-Brightlane-Leadkit/src/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	name string
	err  error
	wait chan struct{}

	mu  sync.Mutex
	got []models.Submission
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(ctx context.Context, sub models.Submission) error {
	if s.wait != nil {
		<-s.wait
	}
	s.mu.Lock()
	s.got = append(s.got, sub)
	s.mu.Unlock()
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(task.Type(), string(task.Payload()))
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func sampleSubmission() models.Submission {
	return models.Submission{
		ID:        "sub-1",
		FirstName: "Jo",
		LastName:  "Lee",
		Email:     "jo@x.co",
		PlanKey:   models.PlanLeadFollowUp,
		PlanName:  "7-Day AI Lead Follow-Up Plan",
	}
}

func TestDispatchDoesNotBlockOnSinks(t *testing.T) {
	slow := &recordingSink{name: "slow", wait: make(chan struct{})}
	failing := &recordingSink{name: "failing", err: errors.New("boom")}
	d := NewDispatcher([]Sink{slow, failing})

	done := make(chan struct{})
	go func() {
		d.Dispatch(context.Background(), sampleSubmission())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch waited on a sink")
	}

	close(slow.wait)
	d.Wait()
	assert.Equal(t, 1, slow.count())
	assert.Equal(t, 1, failing.count())
}

func TestDispatchSurvivesCanceledRequestContext(t *testing.T) {
	sink := &recordingSink{name: "s"}
	d := NewDispatcher([]Sink{sink})

	ctx, cancel := context.WithCancel(context.Background())
	d.Dispatch(ctx, sampleSubmission())
	cancel()
	d.Wait()

	assert.Equal(t, 1, sink.count())
}

func TestDispatchEnqueuesOneTaskPerSink(t *testing.T) {
	a := &recordingSink{name: "a"}
	b := &recordingSink{name: "b"}
	q := new(mockEnqueuer)
	q.On("EnqueueContext", jobs.TypeDispatchLead, mock.Anything).Return(&asynq.TaskInfo{}, nil).Twice()

	d := NewDispatcher([]Sink{a, b}, WithEnqueuer(q))
	d.Dispatch(context.Background(), sampleSubmission())
	d.Wait()

	q.AssertExpectations(t)
	assert.Zero(t, a.count())
	assert.Zero(t, b.count())
}

func TestDispatchFallsBackWhenEnqueueFails(t *testing.T) {
	a := &recordingSink{name: "a"}
	q := new(mockEnqueuer)
	q.On("EnqueueContext", jobs.TypeDispatchLead, mock.Anything).Return(nil, errors.New("redis down"))

	d := NewDispatcher([]Sink{a}, WithEnqueuer(q))
	d.Dispatch(context.Background(), sampleSubmission())
	d.Wait()

	assert.Equal(t, 1, a.count())
}

func TestHandleDispatchLead(t *testing.T) {
	ok := &recordingSink{name: "ok"}
	limited := &recordingSink{name: "limited", err: &RateLimitedError{Sink: "x", After: time.Minute}}
	broken := &recordingSink{name: "broken", err: errors.New("503")}
	h := HandleDispatchLead(map[string]Sink{"ok": ok, "limited": limited, "broken": broken})

	run := func(name string) error {
		task, err := jobs.NewDispatchLeadTask(name, sampleSubmission())
		require.NoError(t, err)
		return h(context.Background(), task)
	}

	assert.NoError(t, run("ok"))
	assert.Equal(t, 1, ok.count())

	err := run("limited")
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = run("broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)

	assert.NoError(t, run("missing"))
}

func TestFormRelaySinkPostsSnakeCaseFields(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sub := sampleSubmission()
	sub.Answers.Pileup = "Following up with leads and inquiries"
	sub.UTM = &models.UTM{Source: "newsletter"}
	err := NewFormRelaySink(srv.URL, "ai-plan-lead", srv.Client()).Deliver(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, "ai-plan-lead", form.Get("form-name"))
	assert.Equal(t, "Jo", form.Get("first_name"))
	assert.Equal(t, "jo@x.co", form.Get("email"))
	assert.Equal(t, "plan1", form.Get("plan_key"))
	assert.Equal(t, "Following up with leads and inquiries", form.Get("pileup"))
	assert.Equal(t, "newsletter", form.Get("utm_source"))
}

func TestHTTPIntakeSinkReportsRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewHTTPIntakeSink(srv.URL, srv.Client()).Deliver(context.Background(), sampleSubmission())
	var limited *RateLimitedError
	require.ErrorAs(t, err, &limited)
	assert.Equal(t, 2*time.Minute, limited.RetryAfter())
}

type stubIntake struct {
	ev models.LeadEvent
	id string
}

func (s *stubIntake) Submit(_ context.Context, ev models.LeadEvent, id string) error {
	s.ev, s.id = ev, id
	return nil
}

func TestIntakeSink(t *testing.T) {
	in := &stubIntake{}
	sub := sampleSubmission()
	sub.Email = "Jo@X.co"
	require.NoError(t, NewIntakeSink(in).Deliver(context.Background(), sub))
	assert.Equal(t, models.LeadCaptured, in.ev.Type)
	assert.Equal(t, "email:jo@x.co", in.id)
}
