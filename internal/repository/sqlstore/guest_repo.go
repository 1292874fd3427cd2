package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"weddingrsvp/internal/domain"
)

type guestRepository struct {
	DB      *sql.DB
	Queries Queries
}

// NewGuestRepository returns a GuestRepository running the given query templates against db.
func NewGuestRepository(db *sql.DB, queries Queries) domain.GuestRepository {
	return &guestRepository{DB: db, Queries: queries}
}

func (r *guestRepository) FindByNameAndAddress(ctx context.Context, lastName, address string) (*domain.Guest, error) {
	lastName = strings.TrimSpace(lastName)
	g, err := scanGuest(r.DB.QueryRowContext(ctx, r.Queries.FindByNameAndAddress, address, lastName))
	if err != nil {
		return nil, fmt.Errorf("find guest by name and address: %w", err)
	}
	return g, nil
}

func (r *guestRepository) FindByID(ctx context.Context, id string) (*domain.Guest, error) {
	g, err := scanGuest(r.DB.QueryRowContext(ctx, r.Queries.FindByID, id))
	if err != nil {
		return nil, fmt.Errorf("find guest by id: %w", err)
	}
	return g, nil
}

// UpdateAttendance writes both attendance columns in one statement.
func (r *guestRepository) UpdateAttendance(ctx context.Context, id string, numAttending int, declined bool) error {
	num, attending := domain.AttendanceFor(numAttending, declined)
	res, err := r.DB.ExecContext(ctx, r.Queries.UpdateAttendance, num, attending, id)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update attendance rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanGuest(row *sql.Row) (*domain.Guest, error) {
	g := &domain.Guest{}
	err := row.Scan(&g.ID, &g.LastName, &g.Address, &g.MaxAttending, &g.NumAttending, &g.IsAttending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}
