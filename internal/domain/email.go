package domain

import "context"

// Mailer sends an email with html and text bodies.
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html, and
// text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// EnrollmentConfirmationEmailData is the data for the enrollment confirmation template.
type EnrollmentConfirmationEmailData struct {
	Email        string
	Name         string
	ActivityName string
	Date         string
	StartsAt     string
	EndsAt       string
}

// EmailService sends application emails.
type EmailService interface {
	SendEnrollmentConfirmation(ctx context.Context, data *EnrollmentConfirmationEmailData) error
}
