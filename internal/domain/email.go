package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RsvpReceivedEmailData holds data for the host notification sent after a submission.
type RsvpReceivedEmailData struct {
	To           string
	EventName    string
	GuestID      string
	LastName     string
	NumAttending int
	MaxAttending int
	IsAttending  bool
}

// Notifier informs the event host about submissions.
type Notifier interface {
	RsvpReceived(ctx context.Context, guest *Guest) error
}
