package quiz

import (
	"context"
	"log"
	"time"

	"Backend-Brightlane-Leadkit/src/models"
	"Backend-Brightlane-Leadkit/src/services/leads"
)

// Dispatcher forwards a finalized submission without blocking.
type Dispatcher interface {
	Dispatch(ctx context.Context, sub models.Submission)
}

// Funnel runs the quiz for one visitor at a time: it loads their state,
// applies a transition and writes the result back.
type Funnel struct {
	store      *Adapter
	dispatcher Dispatcher
	now        func() time.Time
}

func NewFunnel(store *Adapter, dispatcher Dispatcher) *Funnel {
	return &Funnel{store: store, dispatcher: dispatcher, now: time.Now}
}

// Load returns the visitor's current state, fresh if nothing is stored.
func (f *Funnel) Load(ctx context.Context, visitor string) State {
	s, _ := f.store.LoadWizard(ctx, visitor)
	return s
}

// Answer records the option for the current question and advances.
func (f *Funnel) Answer(ctx context.Context, visitor, value string) (State, error) {
	return f.apply(ctx, visitor, func(s *State) error { return s.Select(value) })
}

func (f *Funnel) Next(ctx context.Context, visitor string) (State, error) {
	return f.apply(ctx, visitor, func(s *State) error { return s.Next() })
}

func (f *Funnel) Back(ctx context.Context, visitor string) (State, error) {
	return f.apply(ctx, visitor, func(s *State) error { return s.Back() })
}

func (f *Funnel) apply(ctx context.Context, visitor string, fn func(*State) error) (State, error) {
	s := f.Load(ctx, visitor)
	if err := fn(&s); err != nil {
		return s, err
	}
	f.saveWizard(ctx, visitor, s)
	return s, nil
}

// GateResult is the outcome of a contact submission.
type GateResult struct {
	State      State
	Fields     leads.ContactFields
	Errors     leads.FieldErrors
	Submission *models.Submission
}

// SubmitContact validates the gate inputs. On failure the state stays at the
// gate and every field error is returned. On success the submission is built,
// persisted, the wizard moves to results and the lead is dispatched; none of
// that waits on the sinks.
func (f *Funnel) SubmitContact(ctx context.Context, visitor string, in leads.ContactFields, pagePath string) (GateResult, error) {
	s := f.Load(ctx, visitor)
	if s.Cursor != StepContactGate {
		return GateResult{State: s}, ErrNotAtGate
	}

	fields, errs := leads.ValidateContact(in)
	if errs != nil {
		s.Email = fields.Email
		s.WebsiteURL = fields.WebsiteURL
		f.saveWizard(ctx, visitor, s)
		return GateResult{State: s, Fields: fields, Errors: errs}, nil
	}

	utm, _ := f.store.LoadAttribution(ctx, visitor)
	sub := leads.BuildSubmission(fields, s.Answers, utm, pagePath, f.now())
	if err := f.store.SaveSubmission(ctx, visitor, sub); err != nil {
		log.Printf("⚠️ [quiz] save submission for %s failed: %v", visitor, err)
	}

	if err := s.Unlock(fields.Email, fields.WebsiteURL); err != nil {
		return GateResult{State: s, Fields: fields}, err
	}
	f.saveWizard(ctx, visitor, s)
	if err := f.store.ClearAttribution(ctx, visitor); err != nil {
		log.Printf("⚠️ [quiz] clear attribution for %s failed: %v", visitor, err)
	}

	log.Printf("✅ [quiz] %s unlocked %s", visitor, sub.PlanKey)
	f.dispatcher.Dispatch(ctx, sub)
	return GateResult{State: s, Fields: fields, Submission: &sub}, nil
}

// StartOver forgets the wizard, the submission and any attribution.
func (f *Funnel) StartOver(ctx context.Context, visitor string) State {
	for _, remove := range []func(context.Context, string) error{
		f.store.ClearWizard,
		f.store.ClearSubmission,
		f.store.ClearAttribution,
	} {
		if err := remove(ctx, visitor); err != nil {
			log.Printf("⚠️ [quiz] start over for %s: %v", visitor, err)
		}
	}
	return NewState()
}

// Results returns the stored submission of a visitor who passed the gate.
func (f *Funnel) Results(ctx context.Context, visitor string) (*models.Submission, bool) {
	return f.store.LoadSubmission(ctx, visitor)
}

// CaptureAttribution keeps the first campaign a visitor arrived with.
func (f *Funnel) CaptureAttribution(ctx context.Context, visitor string, utm models.UTM) {
	if utm.IsZero() {
		return
	}
	if _, ok := f.store.LoadAttribution(ctx, visitor); ok {
		return
	}
	if err := f.store.SaveAttribution(ctx, visitor, utm); err != nil {
		log.Printf("⚠️ [quiz] save attribution for %s failed: %v", visitor, err)
	}
}

func (f *Funnel) saveWizard(ctx context.Context, visitor string, s State) {
	if err := f.store.SaveWizard(ctx, visitor, s); err != nil {
		log.Printf("⚠️ [quiz] save wizard for %s failed: %v", visitor, err)
	}
}
