package notification

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/avlorenzana/jobtrail/internal/domain/application"
)

// EventKind is the closed set of application lifecycle events a
// notification can be sent for. Anything else is rejected up front instead
// of falling through to an empty message.
type EventKind string

const (
	EventAdded   EventKind = "added"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

func ParseEventKind(s string) (EventKind, bool) {
	switch EventKind(s) {
	case EventAdded, EventUpdated, EventDeleted:
		return EventKind(s), true
	}
	return "", false
}

type message struct {
	Subject string
	HTML    string
}

const detailBodyTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #ec4899;">{{.Heading}}</h2>
  <div style="background: linear-gradient(to right, #fce7f3, #fae8ff); padding: 20px; border-radius: 10px; margin: 20px 0;">
    <p><strong>Position:</strong> {{.App.Position}}</p>
    <p><strong>Company:</strong> {{.App.Company}}</p>
    <p><strong>Status:</strong> {{.App.Status}}</p>
    <p><strong>Location:</strong> {{.App.Location}}</p>
    <p><strong>Applied Date:</strong> {{.App.AppliedDate}}</p>
    {{if .App.Notes}}<p><strong>Notes:</strong> {{.App.Notes}}</p>{{end}}
  </div>
  <p style="color: #9333ea;">{{.Footer}}</p>
</div>
`

const deletedBodyTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #ec4899;">{{.Heading}}</h2>
  <div style="background: linear-gradient(to right, #fce7f3, #fae8ff); padding: 20px; border-radius: 10px; margin: 20px 0;">
    <p>You've removed the application for:</p>
    <p><strong>{{.App.Position}}</strong> at <strong>{{.App.Company}}</strong></p>
  </div>
  <p style="color: #9333ea;">{{.Footer}}</p>
</div>
`

var (
	detailBody  = template.Must(template.New("detail").Parse(detailBodyTmpl))
	deletedBody = template.Must(template.New("deleted").Parse(deletedBodyTmpl))
)

type bodyData struct {
	Heading string
	Footer  string
	App     application.JobApplication
}

func buildMessage(kind EventKind, app application.JobApplication) (*message, error) {
	var (
		subject string
		tmpl    *template.Template
		data    bodyData
	)

	switch kind {
	case EventAdded:
		subject = fmt.Sprintf("New Application Added: %s at %s", app.Position, app.Company)
		tmpl = detailBody
		data = bodyData{Heading: "New Job Application Added", Footer: "Keep tracking your applications!", App: app}
	case EventUpdated:
		subject = fmt.Sprintf("Application Updated: %s at %s", app.Position, app.Company)
		tmpl = detailBody
		data = bodyData{Heading: "Job Application Updated", Footer: "Stay on top of your job search!", App: app}
	case EventDeleted:
		subject = fmt.Sprintf("Application Removed: %s at %s", app.Position, app.Company)
		tmpl = deletedBody
		data = bodyData{Heading: "Job Application Removed", Footer: "Keep organizing your applications!", App: app}
	default:
		return nil, fmt.Errorf("no template for event kind %q", kind)
	}

	var html strings.Builder
	if err := tmpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("cannot render notification body: %w", err)
	}

	return &message{Subject: subject, HTML: html.String()}, nil
}
