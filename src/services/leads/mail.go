package leads

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"Backend-Brightlane-Leadkit/src/models"

	gomail "gopkg.in/gomail.v2"
)

type MailSender interface {
	Send(to, subject, html string) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// NewSMTPSender reports every missing setting at once.
func NewSMTPSender(host string, port int, user, pass, from string) (*SMTPSender, error) {
	missing := []string{}
	if host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if user == "" {
		missing = append(missing, "SMTP_USER")
	}
	if pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if from == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing SMTP env: %v", strings.Join(missing, ", "))
	}
	return &SMTPSender{Host: host, Port: port, User: user, Pass: pass, From: from}, nil
}

func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	return gomail.NewDialer(s.Host, s.Port, s.User, s.Pass).DialAndSend(m)
}

var leadMailTmpl = template.Must(template.New("lead").Parse(`<h2>New lead: {{.FirstName}} {{.LastName}}</h2>
<p><a href="mailto:{{.Email}}">{{.Email}}</a> · {{.WebsiteURL}}</p>
<p>Plan: <strong>{{.PlanName}}</strong> ({{.PlanKey}})</p>
<ul>
<li>Business: {{.Answers.Business}}</li>
<li>Team: {{.Answers.Team}}</li>
<li>Where work piles up: {{.Answers.Pileup}}</li>
<li>AI today: {{.Answers.AIUse}}</li>
<li>Goal: {{.Answers.Goal}}</li>
</ul>
{{with .UTM}}<p>Source: {{.Source}} / {{.Medium}} / {{.Campaign}}</p>{{end}}
<p style="color:#5b6473">{{.CreatedAt}} · {{.PagePath}}</p>`))

// MailSink emails each captured lead to the sales inbox.
type MailSink struct {
	sender MailSender
	to     string
}

func NewMailSink(sender MailSender, to string) *MailSink {
	return &MailSink{sender: sender, to: to}
}

func (s *MailSink) Name() string { return "mail" }

func (s *MailSink) Deliver(ctx context.Context, sub models.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := leadMailTmpl.Execute(&buf, sub); err != nil {
		return fmt.Errorf("render lead mail: %w", err)
	}
	subject := fmt.Sprintf("New lead: %s %s (%s)", sub.FirstName, sub.LastName, sub.PlanName)
	return s.sender.Send(s.to, subject, buf.String())
}
