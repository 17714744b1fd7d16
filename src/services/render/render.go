// Package render draws the quiz, plan and print pages from embedded
// html/template files.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"Backend-Brightlane-Leadkit/src/catalog"
	"Backend-Brightlane-Leadkit/src/models"
	"Backend-Brightlane-Leadkit/src/services/leads"
	"Backend-Brightlane-Leadkit/src/services/quiz"
)

//go:embed templates/*.html
var templateFS embed.FS

// AutoAdvanceDelay is how long a picked option stays highlighted before the
// page script posts it.
const AutoAdvanceDelay = 350 * time.Millisecond

// QuizPage is the data of GET /quiz and the quiz POST handlers.
type QuizPage struct {
	State      quiz.State
	View       quiz.View
	Fields     leads.ContactFields
	Errors     leads.FieldErrors
	Submission *models.Submission
	Plan       *models.Plan
}

// PlanPage is the standalone plan page.
type PlanPage struct {
	Plan       models.Plan
	Submission *models.Submission
}

// DisclaimerPage asks for confirmation before a PDF download.
type DisclaimerPage struct {
	Plan       models.Plan
	Disclaimer string
}

// planView is what the shared "plan" template receives.
type planView struct {
	Plan     models.Plan
	Expanded bool
}

type Renderer struct {
	siteURL string
	pages   map[string]*template.Template
}

var pageFiles = []string{"quiz", "plan", "disclaimer"}

func New(siteURL string) (*Renderer, error) {
	funcs := template.FuncMap{
		"slug":          catalog.SlugFor,
		"autoAdvanceMs": func() int64 { return AutoAdvanceDelay.Milliseconds() },
		"planView": func(p models.Plan, expanded bool) planView {
			return planView{Plan: p, Expanded: expanded}
		},
		"siteURL": func() string { return siteURL },
		"planURL": func(key models.PlanKey) string { return planURL(siteURL, key) },
		"qrCode":  qrDataURI,
	}

	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/plan_body.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{siteURL: siteURL, pages: map[string]*template.Template{}}
	for _, name := range pageFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}

	printTmpl, err := template.New("print").Funcs(funcs).ParseFS(templateFS, "templates/plan_body.html", "templates/print.html")
	if err != nil {
		return nil, err
	}
	r.pages["print"] = printTmpl
	return r, nil
}

func (r *Renderer) Quiz(p QuizPage) (string, error) {
	return r.execute("quiz", "layout", p)
}

func (r *Renderer) Plan(p PlanPage) (string, error) {
	return r.execute("plan", "layout", p)
}

func (r *Renderer) Disclaimer(p DisclaimerPage) (string, error) {
	return r.execute("disclaimer", "layout", p)
}

// Print is the standalone document handed to the PDF rasterizer: the plan
// region only, every day expanded, no navigation.
func (r *Renderer) Print(p models.Plan) (string, error) {
	return r.execute("print", "print", p)
}

func (r *Renderer) execute(page, entry string, data interface{}) (string, error) {
	t, ok := r.pages[page]
	if !ok {
		return "", fmt.Errorf("render: unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, entry, data); err != nil {
		return "", fmt.Errorf("render %s: %w", page, err)
	}
	return buf.String(), nil
}
