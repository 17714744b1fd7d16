package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"Backend-Brightlane-Leadkit/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRelay struct {
	mock.Mock
}

func (m *mockRelay) Relay(ctx context.Context, ev models.LeadEvent) error {
	return m.Called(ev.Email).Error(0)
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (Decision, error) {
	return Decision{}, errors.New("redis down")
}

func validEvent() models.LeadEvent {
	return models.LeadEvent{
		Type:    models.LeadCaptured,
		Email:   "jo@x.co",
		PlanKey: models.PlanLeadFollowUp,
	}
}

func newTestService(r Relay) *Service {
	return NewService(NewOriginPolicy([]string{"https://brightlane.example"}), NewMemoryLimiter(2, time.Minute), r)
}

func TestAcceptRelaysValidEvent(t *testing.T) {
	r := new(mockRelay)
	r.On("Relay", "jo@x.co").Return(nil).Once()

	err := newTestService(r).Accept(context.Background(), Request{
		Event:      validEvent(),
		Origin:     "https://brightlane.example",
		Identifier: "ip",
		UserAgent:  "test-agent",
	})
	require.NoError(t, err)
	r.AssertExpectations(t)
}

func TestAcceptRejectsForeignOrigin(t *testing.T) {
	r := new(mockRelay)
	err := newTestService(r).Accept(context.Background(), Request{Event: validEvent(), Origin: "https://evil.example"})
	assert.ErrorIs(t, err, ErrOriginNotAllowed)
	r.AssertNotCalled(t, "Relay", mock.Anything)
}

func TestAcceptValidation(t *testing.T) {
	ev := models.LeadEvent{Type: "spam", Email: "nope", PlanKey: "plan9"}
	err := newTestService(LogRelay{}).Accept(context.Background(), Request{Event: ev, Identifier: "ip"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "type")
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "planKey")
}

func TestAcceptRateLimits(t *testing.T) {
	s := newTestService(LogRelay{})
	ctx := context.Background()
	require.NoError(t, s.Submit(ctx, validEvent(), "email:jo@x.co"))
	require.NoError(t, s.Submit(ctx, validEvent(), "email:jo@x.co"))

	err := s.Submit(ctx, validEvent(), "email:jo@x.co")
	var rl *RateLimitError
	require.ErrorAs(t, err, &rl)
	assert.Greater(t, rl.RetryAfter(), time.Duration(0))
}

func TestAcceptFailsOpenWhenLimiterBreaks(t *testing.T) {
	s := NewService(NewOriginPolicy(nil), brokenLimiter{}, LogRelay{})
	assert.NoError(t, s.Submit(context.Background(), validEvent(), "ip"))
}

func TestAcceptRelayFailure(t *testing.T) {
	r := new(mockRelay)
	r.On("Relay", "jo@x.co").Return(errors.New("503"))
	err := newTestService(r).Submit(context.Background(), validEvent(), "ip")
	assert.ErrorIs(t, err, ErrRelayFailed)
}
