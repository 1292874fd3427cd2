package domain

import "context"

// Guest is an invited party. Rows are created out-of-band and only their attendance is mutated here.
// swagger:model Guest
type Guest struct {
	ID           string `json:"id"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`
	MaxAttending int    `json:"maxAttending"`
	NumAttending int    `json:"numAttending"`
	IsAttending  bool   `json:"isAttending"`
}

// ApplyAttendance sets the attendance fields. A decline always records zero attendees.
func (g *Guest) ApplyAttendance(numAttending int, declined bool) {
	if declined {
		g.NumAttending = 0
		g.IsAttending = false
		return
	}
	g.NumAttending = numAttending
	g.IsAttending = true
}

// AttendanceFor returns the persisted (numAttending, isAttending) pair for a submission.
func AttendanceFor(numAttending int, declined bool) (int, bool) {
	if declined {
		return 0, false
	}
	return numAttending, true
}

// GuestRepository defines storage operations for guests.
// Every method returns ErrNotFound when no row matches.
type GuestRepository interface {
	FindByNameAndAddress(ctx context.Context, lastName, address string) (*Guest, error)
	FindByID(ctx context.Context, id string) (*Guest, error)
	UpdateAttendance(ctx context.Context, id string, numAttending int, declined bool) error
}

// IdentityMasker derives the external identifier of a guest. There is no inverse.
type IdentityMasker interface {
	Mask(internalID string) string
}

// SubmitRequest is a guest's attendance submission. NumAttending is nil when the client omitted it.
type SubmitRequest struct {
	ID           string
	NumAttending *int
	Declined     bool
}

// RsvpService defines the guest-facing RSVP operations. Callers must pass the session gate first.
type RsvpService interface {
	// Validate returns the event details shown once the event key has been accepted.
	Validate(ctx context.Context) *EventDetails
	// Find looks a guest up by last name and address and returns it with a masked id.
	Find(ctx context.Context, lastName, address string) (*Guest, error)
	// Check returns the guest bound to the browser by the rsvp cookie.
	Check(ctx context.Context, guestID string) (*Guest, error)
	// Submit records attendance and returns the guest as persisted.
	Submit(ctx context.Context, req SubmitRequest) (*Guest, error)
}
