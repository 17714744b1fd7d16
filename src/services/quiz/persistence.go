package quiz

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Brightlane-Leadkit/src/models"
	"Backend-Brightlane-Leadkit/src/storage"
)

const (
	wizardPrefix      = "wizard:"
	submissionPrefix  = "submission:"
	attributionPrefix = "attribution:"
)

// Adapter reads and writes the three per-visitor records. Reads never fail:
// a missing, unreadable or corrupt record is reported as absent, and a
// corrupt one is removed so the next load starts clean.
type Adapter struct {
	store storage.Store
}

func NewAdapter(store storage.Store) *Adapter {
	return &Adapter{store: store}
}

// storedState mirrors State with loose types so partial or older records
// still decode.
type storedState struct {
	Cursor     *int              `json:"cursor"`
	Answers    map[string]string `json:"answers"`
	Email      string            `json:"email"`
	WebsiteURL string            `json:"websiteUrl"`
}

func (a *Adapter) SaveWizard(ctx context.Context, visitor string, s State) error {
	return a.save(ctx, wizardPrefix+visitor, s)
}

// LoadWizard returns the stored wizard, normalized. ok is false when there
// was nothing usable; the returned state is then a fresh one.
func (a *Adapter) LoadWizard(ctx context.Context, visitor string) (State, bool) {
	var raw storedState
	if !a.load(ctx, wizardPrefix+visitor, &raw) {
		return NewState(), false
	}

	s := State{Email: raw.Email, WebsiteURL: raw.WebsiteURL}
	if raw.Cursor != nil {
		s.Cursor = Step(*raw.Cursor)
	}
	if raw.Answers != nil {
		s.Answers = make(models.AnswerSet, len(raw.Answers))
		for k, v := range raw.Answers {
			s.Answers[models.QuestionID(k)] = v
		}
	}
	s.Normalize()
	return s, true
}

func (a *Adapter) ClearWizard(ctx context.Context, visitor string) error {
	return a.store.Remove(ctx, wizardPrefix+visitor)
}

func (a *Adapter) SaveSubmission(ctx context.Context, visitor string, sub models.Submission) error {
	return a.save(ctx, submissionPrefix+visitor, sub)
}

func (a *Adapter) LoadSubmission(ctx context.Context, visitor string) (*models.Submission, bool) {
	var sub models.Submission
	if !a.load(ctx, submissionPrefix+visitor, &sub) {
		return nil, false
	}
	if sub.Email == "" {
		log.Printf("⚠️ [quiz] submission for %s has no email, discarding", visitor)
		_ = a.store.Remove(ctx, submissionPrefix+visitor)
		return nil, false
	}
	return &sub, true
}

func (a *Adapter) ClearSubmission(ctx context.Context, visitor string) error {
	return a.store.Remove(ctx, submissionPrefix+visitor)
}

func (a *Adapter) SaveAttribution(ctx context.Context, visitor string, utm models.UTM) error {
	return a.save(ctx, attributionPrefix+visitor, utm)
}

func (a *Adapter) LoadAttribution(ctx context.Context, visitor string) (*models.UTM, bool) {
	var utm models.UTM
	if !a.load(ctx, attributionPrefix+visitor, &utm) || utm.IsZero() {
		return nil, false
	}
	return &utm, true
}

func (a *Adapter) ClearAttribution(ctx context.Context, visitor string) error {
	return a.store.Remove(ctx, attributionPrefix+visitor)
}

func (a *Adapter) save(ctx context.Context, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, key, string(b))
}

func (a *Adapter) load(ctx context.Context, key string, v interface{}) bool {
	raw, ok, err := a.store.Get(ctx, key)
	if err != nil {
		log.Printf("⚠️ [quiz] read %s failed: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("⚠️ [quiz] discarding unreadable %s: %v", key, err)
		if err := a.store.Remove(ctx, key); err != nil {
			log.Printf("⚠️ [quiz] remove %s failed: %v", key, err)
		}
		return false
	}
	return true
}
