package services

import (
	"context"
	"fmt"
	"log/slog"

	"weddingrsvp/internal/domain"
)

type emailNotifier struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	to        string
	eventName string
	logger    *slog.Logger
}

// NewEmailNotifier returns a Notifier that mails the host at to using the "rsvp_received" template.
// An empty to disables sending.
func NewEmailNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, to, eventName string, logger *slog.Logger) domain.Notifier {
	return &emailNotifier{
		mailer:    mailer,
		renderer:  renderer,
		to:        to,
		eventName: eventName,
		logger:    logger,
	}
}

func (n *emailNotifier) RsvpReceived(ctx context.Context, guest *domain.Guest) error {
	if guest == nil {
		return fmt.Errorf("rsvp notification guest is nil")
	}
	if n.to == "" {
		return nil
	}
	data := &domain.RsvpReceivedEmailData{
		To:           n.to,
		EventName:    n.eventName,
		GuestID:      guest.ID,
		LastName:     guest.LastName,
		NumAttending: guest.NumAttending,
		MaxAttending: guest.MaxAttending,
		IsAttending:  guest.IsAttending,
	}
	subject, htmlBody, textBody, err := n.renderer.Render("rsvp_received", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_received template: %w", err)
	}
	if err := n.mailer.Send(ctx, n.to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send rsvp notification: %w", err)
	}
	n.logger.InfoContext(ctx, "rsvp notification sent", "guest_id", guest.ID)
	return nil
}
