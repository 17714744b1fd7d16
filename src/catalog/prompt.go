package catalog

import (
	"bytes"
	"strings"
	"text/template"

	"Backend-Brightlane-Leadkit/src/models"
)

var promptTmpl = template.Must(
	template.New("prompt").
		Funcs(template.FuncMap{
			"inc": func(i int) int { return i + 1 },
		}).
		Parse(`{{.Role}}

Before you write anything, ask me these questions one at a time and wait for my answer to each:
{{range $i, $q := .Questions}}{{inc $i}}. {{$q}}
{{end}}
Once I have answered, give me:
{{range .Output}}- {{.}}
{{end}}
Here is what I'm working with:
[{{.Placeholder}}]
`),
)

// composePrompt renders the copy-paste body of a step.
func composePrompt(s models.Step) (string, error) {
	var buf bytes.Buffer
	if err := promptTmpl.Execute(&buf, s); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
