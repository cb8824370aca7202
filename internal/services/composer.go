// internal/services/composer.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
)

var (
	ErrEmptyDraft             = errors.New("generated email is missing a subject or body")
	ErrGeneratorNotConfigured = errors.New("email generation service not configured")
	ErrIncompleteDraft        = errors.New("generated email is missing required content")
)

// LeaveDetails is everything the composer is allowed to mention.
type LeaveDetails struct {
	ParentEmail string
	StudentName string
	LeaveType   models.LeaveType
	StartDate   string
	EndDate     string
	Reason      string
}

// EmailDraft is the structured answer expected from the text model.
type EmailDraft struct {
	Subject string `json:"emailSubject"`
	Body    string `json:"emailBody"`
}

type EmailDraftGenerator interface {
	GenerateEmailDraft(ctx context.Context, prompt string) (*EmailDraft, error)
}

// ComposedEmail is a draft made safe to send: sanitized HTML plus a plain
// text alternative.
type ComposedEmail struct {
	Subject string
	HTML    string
	Text    string
}

const leavePromptTemplate = `You are an assistant for a college administration system.
Write an email notifying a parent that their child has submitted a leave application.

Requirements:
- Start the body with "Dear Parent,".
- State that a leave application was submitted by {{.StudentName}}.
- Include every leave detail listed below.
- State that the application is pending review by the college administration.
- Keep the subject concise, following the pattern "Leave Application Submitted for {{.StudentName}}".
- Write the body as simple HTML using <p> paragraphs. Do not include scripts, styles or images.

Leave details:
Student Name: {{.StudentName}}
Leave Type: {{.LeaveType}}
Start Date: {{.StartDate}}
End Date: {{.EndDate}}
Reason: {{.Reason}}

Respond with a JSON object with the fields "emailSubject" and "emailBody".`

var leavePrompt = template.Must(template.New("leave_notification").Parse(leavePromptTemplate))

type EmailComposer struct {
	generator  EmailDraftGenerator
	htmlPolicy *bluemonday.Policy
	textPolicy *bluemonday.Policy
}

func NewEmailComposer(generator EmailDraftGenerator) *EmailComposer {
	return &EmailComposer{
		generator:  generator,
		htmlPolicy: bluemonday.UGCPolicy(),
		textPolicy: bluemonday.StrictPolicy(),
	}
}

func RenderLeavePrompt(details LeaveDetails) (string, error) {
	var buf bytes.Buffer
	if err := leavePrompt.Execute(&buf, details); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

func CanonicalSubject(studentName string) string {
	return "Leave Application Submitted for " + studentName
}

// Compose asks the generator for a draft and enforces the structural
// guarantees the prose itself cannot be trusted with.
func (c *EmailComposer) Compose(ctx context.Context, details LeaveDetails) (*ComposedEmail, error) {
	prompt, err := RenderLeavePrompt(details)
	if err != nil {
		return nil, err
	}

	draft, err := c.generator.GenerateEmailDraft(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrEmptyDraft
	}

	subject := strings.TrimSpace(draft.Subject)
	body := strings.TrimSpace(c.htmlPolicy.Sanitize(draft.Body))
	if subject == "" || body == "" {
		return nil, ErrEmptyDraft
	}
	text := c.plainText(body)
	if missing := missingContent(text, details); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteDraft, strings.Join(missing, ", "))
	}
	if !strings.Contains(subject, details.StudentName) {
		subject = CanonicalSubject(details.StudentName)
	}

	return &ComposedEmail{
		Subject: subject,
		HTML:    body,
		Text:    text,
	}, nil
}

// missingContent lists the required elements absent from the plain text
// body. Matching ignores case and runs of whitespace.
func missingContent(text string, details LeaveDetails) []string {
	normalized := normalizeSpace(text)
	required := []struct {
		name, value string
	}{
		{"greeting", "Dear Parent,"},
		{"student name", details.StudentName},
		{"leave type", string(details.LeaveType)},
		{"start date", details.StartDate},
		{"end date", details.EndDate},
		{"pending review notice", "pending review"},
	}

	var missing []string
	for _, r := range required {
		if !strings.Contains(normalized, normalizeSpace(r.value)) {
			missing = append(missing, r.name)
		}
	}
	return missing
}

func normalizeSpace(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

var blockBreaks = strings.NewReplacer(
	"</p>", "</p>\n\n",
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
	"</li>", "</li>\n",
)

func (c *EmailComposer) plainText(body string) string {
	text := html.UnescapeString(c.textPolicy.Sanitize(blockBreaks.Replace(body)))
	return strings.TrimSpace(text)
}
