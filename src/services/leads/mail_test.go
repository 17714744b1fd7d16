package leads

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Backend-Brightlane-Leadkit/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(to, subject, html string) error {
	args := m.Called(to, subject, html)
	return args.Error(0)
}

func TestNewSMTPSenderReportsMissingSettings(t *testing.T) {
	_, err := NewSMTPSender("", 0, "user", "", "")
	require.Error(t, err)
	for _, k := range []string{"SMTP_HOST", "SMTP_PORT", "SMTP_PASS", "SMTP_FROM"} {
		assert.Contains(t, err.Error(), k)
	}
	assert.NotContains(t, err.Error(), "SMTP_USER")

	s, err := NewSMTPSender("smtp.example", 587, "u", "p", "kit@brightlane.example")
	require.NoError(t, err)
	assert.Equal(t, 587, s.Port)
}

func TestMailSinkDeliver(t *testing.T) {
	sub := models.Submission{
		FirstName: "Jo", LastName: "Lee", Email: "jo@x.co", WebsiteURL: "https://x.co",
		PlanKey: models.PlanLeadFollowUp, PlanName: "7-Day AI Lead Follow-Up Plan",
		UTM: &models.UTM{Source: "newsletter"},
	}

	sender := new(mockSender)
	sender.On("Send", "sales@brightlane.example", "New lead: Jo Lee (7-Day AI Lead Follow-Up Plan)",
		mock.MatchedBy(func(html string) bool {
			return strings.Contains(html, "mailto:jo@x.co") && strings.Contains(html, "newsletter")
		})).Return(nil)

	sink := NewMailSink(sender, "sales@brightlane.example")
	assert.Equal(t, "mail", sink.Name())
	require.NoError(t, sink.Deliver(context.Background(), sub))
	sender.AssertExpectations(t)
}

func TestMailSinkErrors(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	sink := NewMailSink(sender, "sales@brightlane.example")

	err := sink.Deliver(context.Background(), models.Submission{Email: "jo@x.co"})
	assert.EqualError(t, err, "connection refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sink.Deliver(ctx, models.Submission{Email: "jo@x.co"}), context.Canceled)
	sender.AssertNumberOfCalls(t, "Send", 1)
}
