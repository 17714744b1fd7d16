package models

// UTM holds campaign attribution captured on landing. All fields are optional.
type UTM struct {
	Source   string `json:"source,omitempty" bson:"source,omitempty"`
	Medium   string `json:"medium,omitempty" bson:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty" bson:"campaign,omitempty"`
	Term     string `json:"term,omitempty" bson:"term,omitempty"`
	Content  string `json:"content,omitempty" bson:"content,omitempty"`
}

// IsZero reports whether no attribution field is set.
func (u UTM) IsZero() bool {
	return u == UTM{}
}

// AnswerLabels are the human-readable answers stored on a submission.
type AnswerLabels struct {
	Business string `json:"business" validate:"max=200"`
	Team     string `json:"team" validate:"max=200"`
	Pileup   string `json:"pileup" validate:"max=200"`
	AIUse    string `json:"aiUse" validate:"max=200"`
	Goal     string `json:"goal" validate:"max=200"`
}

// Submission is the finalized record of a completed gate pass.
type Submission struct {
	ID         string       `json:"id"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName,omitempty"`
	Email      string       `json:"email"`
	WebsiteURL string       `json:"websiteUrl,omitempty"`
	Answers    AnswerLabels `json:"answers"`
	PlanKey    PlanKey      `json:"planKey"`
	PlanName   string       `json:"planName"`
	CreatedAt  string       `json:"createdAt"`
	UTM        *UTM         `json:"utm,omitempty"`
	PagePath   string       `json:"pagePath"`
}
