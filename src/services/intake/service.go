// Package intake accepts lead events from the quiz and from the static form
// relay, after checking origin, rate limit and payload.
package intake

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Backend-Brightlane-Leadkit/src/models"
	"Backend-Brightlane-Leadkit/src/utils"
)

var (
	ErrOriginNotAllowed = errors.New("origin not allowed")
	ErrRelayFailed      = errors.New("lead relay failed")
)

// RateLimitError is returned when the identifier used up its window.
type RateLimitError struct {
	After time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.After)
}

func (e *RateLimitError) RetryAfter() time.Duration { return e.After }

// ValidationError carries every invalid field of the payload.
type ValidationError struct {
	Fields utils.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid lead payload (%d fields)", len(e.Fields))
}

// Request is one inbound event with the headers the checks need.
type Request struct {
	Event      models.LeadEvent
	Origin     string
	Referer    string
	Identifier string
	UserAgent  string
}

type Service struct {
	origins *OriginPolicy
	limiter Limiter
	relay   Relay
}

func NewService(origins *OriginPolicy, limiter Limiter, relay Relay) *Service {
	if relay == nil {
		relay = LogRelay{}
	}
	return &Service{origins: origins, limiter: limiter, relay: relay}
}

// Accept runs the checks in order: origin, rate limit, payload, relay.
func (s *Service) Accept(ctx context.Context, req Request) error {
	if !s.origins.Allowed(req.Origin, req.Referer) {
		log.Printf("⚠️ [intake] rejected origin=%q referer=%q", req.Origin, req.Referer)
		return ErrOriginNotAllowed
	}

	d, err := s.limiter.Allow(ctx, req.Identifier)
	if err != nil {
		// Fail open on limiter errors.
		log.Printf("⚠️ [intake] rate limiter unavailable: %v", err)
	} else if !d.Allowed {
		return &RateLimitError{After: d.RetryAfter}
	}

	ev := req.Event
	if ev.UserAgent == "" {
		ev.UserAgent = truncate(req.UserAgent, 500)
	}
	if ev.CreatedAt == "" {
		ev.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if errs := utils.ValidateStruct(ev); errs != nil {
		return &ValidationError{Fields: errs}
	}

	if err := s.relay.Relay(ctx, ev); err != nil {
		log.Printf("❌ [intake] relay %s for %s: %v", ev.Type, ev.Email, err)
		return fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}
	log.Printf("✅ [intake] accepted %s for %s", ev.Type, ev.Email)
	return nil
}

// Submit is the in-process entry used by the quiz's own dispatch. It skips
// the origin check.
func (s *Service) Submit(ctx context.Context, ev models.LeadEvent, identifier string) error {
	return s.Accept(ctx, Request{Event: ev, Identifier: identifier})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
