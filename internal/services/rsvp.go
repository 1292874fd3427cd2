package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

// notifyTimeout bounds the host notification so a slow mail provider cannot hold up Submit.
const notifyTimeout = 5 * time.Second

type rsvpService struct {
	guestRepo domain.GuestRepository
	masker    domain.IdentityMasker
	notifier  domain.Notifier
	event     domain.EventDetails
	logger    *slog.Logger

	notifyTimeout time.Duration
}

// NewRsvpService creates an RsvpService. notifier may be nil to disable host notifications.
func NewRsvpService(
	guestRepo domain.GuestRepository,
	masker domain.IdentityMasker,
	notifier domain.Notifier,
	event domain.EventDetails,
	logger *slog.Logger,
) domain.RsvpService {
	return &rsvpService{
		guestRepo: guestRepo,
		masker:    masker,
		notifier:  notifier,
		event:     event,
		logger:    logger,

		notifyTimeout: notifyTimeout,
	}
}

func (s *rsvpService) Validate(ctx context.Context) *domain.EventDetails {
	ev := s.event
	return &ev
}

func (s *rsvpService) Find(ctx context.Context, lastName, address string) (*domain.Guest, error) {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" || strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: lastname and address are required", domain.ErrInvalidInput)
	}
	g, err := s.guestRepo.FindByNameAndAddress(ctx, lastName, address)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find guest: %w", err)
	}
	g.ID = s.masker.Mask(g.ID)
	return g, nil
}

func (s *rsvpService) Check(ctx context.Context, guestID string) (*domain.Guest, error) {
	if guestID == "" {
		return nil, domain.ErrNotFound
	}
	g, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return g, nil
}

// Submit re-reads the guest so the bound is always the stored maxAttending.
// Read and write are separate statements; concurrent submits for one guest are last-writer-wins.
func (s *rsvpService) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Guest, error) {
	if req.ID == "" || req.NumAttending == nil {
		return nil, fmt.Errorf("%w: id and numAttending are required", domain.ErrInvalidInput)
	}
	g, err := s.guestRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown guest", domain.ErrForbidden)
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	n := *req.NumAttending
	if !req.Declined && (n < 0 || n > g.MaxAttending) {
		return nil, fmt.Errorf("%w: numAttending must be between 0 and %d", domain.ErrForbidden, g.MaxAttending)
	}
	if err := s.guestRepo.UpdateAttendance(ctx, g.ID, n, req.Declined); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown guest", domain.ErrForbidden)
		}
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	g.ApplyAttendance(n, req.Declined)

	s.notify(ctx, g)
	return g, nil
}

func (s *rsvpService) notify(ctx context.Context, g *domain.Guest) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	if err := s.notifier.RsvpReceived(ctx, g); err != nil {
		s.logger.WarnContext(ctx, "rsvp notification failed", "guest_id", g.ID, "err", err)
	}
}
