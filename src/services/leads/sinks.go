package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"Backend-Brightlane-Leadkit/src/models"
)

// Intake is the in-process intake endpoint.
type Intake interface {
	Submit(ctx context.Context, ev models.LeadEvent, identifier string) error
}

// IntakeSink hands submissions to the intake service running in this
// process. The email is the rate-limit identifier.
type IntakeSink struct {
	intake Intake
}

func NewIntakeSink(i Intake) *IntakeSink {
	return &IntakeSink{intake: i}
}

func (s *IntakeSink) Name() string { return "intake" }

func (s *IntakeSink) Deliver(ctx context.Context, sub models.Submission) error {
	return s.intake.Submit(ctx, models.LeadEventFromSubmission(sub), "email:"+strings.ToLower(sub.Email))
}

// HTTPIntakeSink posts the lead event as JSON to a remote intake endpoint.
type HTTPIntakeSink struct {
	url    string
	client *http.Client
}

func NewHTTPIntakeSink(url string, client *http.Client) *HTTPIntakeSink {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPIntakeSink{url: url, client: client}
}

func (s *HTTPIntakeSink) Name() string { return "http-intake" }

func (s *HTTPIntakeSink) Deliver(ctx context.Context, sub models.Submission) error {
	b, err := json.Marshal(models.LeadEventFromSubmission(sub))
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return doPost(s.client, req)
}

// FormRelaySink posts the lead as a urlencoded static form.
type FormRelaySink struct {
	url      string
	formName string
	client   *http.Client
}

func NewFormRelaySink(url, formName string, client *http.Client) *FormRelaySink {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &FormRelaySink{url: url, formName: formName, client: client}
}

func (s *FormRelaySink) Name() string { return "form-relay" }

func (s *FormRelaySink) Deliver(ctx context.Context, sub models.Submission) error {
	body := models.LeadEventFromSubmission(sub).Form(s.formName).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doPost(s.client, req)
}

// RateLimitedError is returned when the receiving endpoint answered 429.
type RateLimitedError struct {
	Sink  string
	After time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s: rate limited, retry after %s", e.Sink, e.After)
}

func (e *RateLimitedError) RetryAfter() time.Duration { return e.After }

func doPost(client *http.Client, req *http.Request) error {
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests {
		secs, _ := strconv.Atoi(res.Header.Get("Retry-After"))
		return &RateLimitedError{Sink: req.URL.Host, After: time.Duration(secs) * time.Second}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %s", req.URL.Host, res.Status)
	}
	return nil
}
