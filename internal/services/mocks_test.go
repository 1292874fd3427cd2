package services

import (
	"context"
	"errors"
	"sync"

	"weddingrsvp/internal/domain"
)

// mockGuestRepository is an in-memory GuestRepository that counts calls.
type mockGuestRepository struct {
	mu      sync.Mutex
	guests  map[string]domain.Guest
	err     error
	updates int
	reads   int
}

func newMockGuestRepository(guests ...domain.Guest) *mockGuestRepository {
	m := &mockGuestRepository{guests: make(map[string]domain.Guest)}
	for _, g := range guests {
		m.guests[g.ID] = g
	}
	return m
}

func (m *mockGuestRepository) FindByNameAndAddress(ctx context.Context, lastName, address string) (*domain.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	for _, g := range m.guests {
		if g.Address == address && g.LastName == lastName {
			g := g
			return &g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockGuestRepository) FindByID(ctx context.Context, id string) (*domain.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	g, ok := m.guests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &g, nil
}

func (m *mockGuestRepository) UpdateAttendance(ctx context.Context, id string, numAttending int, declined bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.err != nil {
		return m.err
	}
	g, ok := m.guests[id]
	if !ok {
		return domain.ErrNotFound
	}
	g.NumAttending, g.IsAttending = domain.AttendanceFor(numAttending, declined)
	m.guests[id] = g
	return nil
}

type prefixMasker struct{}

func (prefixMasker) Mask(id string) string { return "masked:" + id }

type mockNotifier struct {
	sent []*domain.Guest
	err  error
}

func (m *mockNotifier) RsvpReceived(ctx context.Context, guest *domain.Guest) error {
	m.sent = append(m.sent, guest)
	return m.err
}

var errDB = errors.New("connection refused")

func intPtr(n int) *int { return &n }
