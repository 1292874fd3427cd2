package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingrsvp/internal/adapters/auth"
	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/domain"
	"weddingrsvp/internal/repository/sqlstore"
	"weddingrsvp/internal/services"
)

const (
	sessionCookie = "eventsession"
	sessionValue  = "letmein"
	rsvpCookie    = "rsvpsession"
)

// countingRepo counts every store call made through it.
type countingRepo struct {
	domain.GuestRepository
	calls atomic.Int64
}

func (c *countingRepo) FindByNameAndAddress(ctx context.Context, lastName, address string) (*domain.Guest, error) {
	c.calls.Add(1)
	return c.GuestRepository.FindByNameAndAddress(ctx, lastName, address)
}

func (c *countingRepo) FindByID(ctx context.Context, id string) (*domain.Guest, error) {
	c.calls.Add(1)
	return c.GuestRepository.FindByID(ctx, id)
}

func (c *countingRepo) UpdateAttendance(ctx context.Context, id string, numAttending int, declined bool) error {
	c.calls.Add(1)
	return c.GuestRepository.UpdateAttendance(ctx, id, numAttending, declined)
}

type testServer struct {
	handler http.Handler
	repo    *countingRepo
	masker  domain.IdentityMasker
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	db, err := sqlstore.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlstore.Seed(ctx, db, []domain.Guest{
		{ID: "g-42", LastName: "Smith", Address: "1 Main St", MaxAttending: 4},
		{ID: "g-7", LastName: "Okafor", Address: "22 Bay Rd", MaxAttending: 2, NumAttending: 1, IsAttending: true},
	}))

	repo := &countingRepo{GuestRepository: sqlstore.NewGuestRepository(db, sqlstore.SQLiteQueries)}
	masker, err := auth.NewBlake2bMasker("pepper")
	require.NoError(t, err)
	gate := services.NewSessionGate(services.SessionGateConfig{
		EventKey:           "secret123",
		SessionCookieName:  sessionCookie,
		SessionCookieValue: sessionValue,
		RsvpCookieName:     rsvpCookie,
		CookiePath:         "/api",
		Expires:            time.Date(2027, 6, 12, 16, 0, 0, 0, time.UTC),
	})
	svc := services.NewRsvpService(repo, masker, nil, domain.EventDetails{Name: "Sam & Alex", ContactEmail: "hosts@example.com"}, logger)

	mux := NewRouter(
		controllers.NewGuestController(logger, svc, gate),
		controllers.NewHealthController(logger, db),
		gate,
		logger,
	)
	return &testServer{handler: mux, repo: repo, masker: masker}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: sessionValue})
	return req
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRouter_ScenarioA_KeyThenLookup(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/guest/validate", nil)
	req.Header.Set("eventkey", "SECRET123")
	rr := s.do(req)
	require.Equal(t, http.StatusOK, rr.Code)
	c := findCookie(rr, sessionCookie)
	require.NotNil(t, c)
	assert.Equal(t, sessionValue, c.Value)
	assert.Equal(t, "/api", c.Path)
	assert.False(t, c.HttpOnly)

	var ev domain.EventDetails
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ev))
	assert.Equal(t, "hosts@example.com", ev.ContactEmail)

	req = httptest.NewRequest(http.MethodGet, "/api/guest/rsvp", nil)
	req.Header.Set("lastname", "Smith")
	req.Header.Set("address", "1 Main St")
	req.AddCookie(c)
	rr = s.do(req)
	require.Equal(t, http.StatusOK, rr.Code)

	var g domain.Guest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, s.masker.Mask("g-42"), g.ID)
	assert.NotEqual(t, "g-42", g.ID)
	assert.Equal(t, 4, g.MaxAttending)
}

func TestRouter_ScenarioB_Submit(t *testing.T) {
	s := newTestServer(t)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/guest/rsvp",
		strings.NewReader(`{"id":"g-42","numAttending":2,"declined":false}`)))
	rr := s.do(req)
	require.Equal(t, http.StatusOK, rr.Code)

	var g domain.Guest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, 2, g.NumAttending)
	assert.True(t, g.IsAttending)
	c := findCookie(rr, rsvpCookie)
	require.NotNil(t, c)
	assert.Equal(t, "g-42", c.Value)

	// The bound cookie now answers the check route.
	req = withSession(httptest.NewRequest(http.MethodGet, "/api/guest/check/rsvp", nil))
	req.AddCookie(c)
	rr = s.do(req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, 2, g.NumAttending)
}

func TestRouter_ScenarioC_OutOfBoundsLeavesGuestUnchanged(t *testing.T) {
	s := newTestServer(t)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/guest/rsvp",
		strings.NewReader(`{"id":"g-7","numAttending":9,"declined":false}`)))
	rr := s.do(req)
	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Nil(t, findCookie(rr, rsvpCookie))

	req = withSession(httptest.NewRequest(http.MethodGet, "/api/guest/check/rsvp", nil))
	req.AddCookie(&http.Cookie{Name: rsvpCookie, Value: "g-7"})
	rr = s.do(req)
	require.Equal(t, http.StatusOK, rr.Code)
	var g domain.Guest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, 1, g.NumAttending)
	assert.True(t, g.IsAttending)
}

func TestRouter_ScenarioD_NoSessionNoStoreCalls(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
	}{
		{"validate", httptest.NewRequest(http.MethodGet, "/api/guest/validate", nil), http.StatusNotFound},
		{"lookup", httptest.NewRequest(http.MethodGet, "/api/guest/rsvp", nil), http.StatusNotFound},
		{"lookup alias", httptest.NewRequest(http.MethodGet, "/api/guest/find/rsvp", nil), http.StatusNotFound},
		{"check", httptest.NewRequest(http.MethodGet, "/api/guest/check/rsvp", nil), http.StatusNotFound},
		{"submit", httptest.NewRequest(http.MethodPost, "/api/guest/rsvp", strings.NewReader(`{"id":"g-42","numAttending":1}`)), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Header.Set("lastname", "Smith")
			tt.req.Header.Set("address", "1 Main St")
			tt.req.AddCookie(&http.Cookie{Name: rsvpCookie, Value: "g-42"})
			rr := s.do(tt.req)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Body.String())
		})
	}
	assert.Zero(t, s.repo.calls.Load())
}

func TestRouter_WrongKeyIsRejected(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/guest/rsvp", nil)
	req.Header.Set("eventkey", "guess")
	req.Header.Set("lastname", "Smith")
	req.Header.Set("address", "1 Main St")
	rr := s.do(req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Nil(t, findCookie(rr, sessionCookie))
	assert.Zero(t, s.repo.calls.Load())
}

func TestRouter_KeyOnLookupAuthorizesAndIssuesCookie(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/guest/find/rsvp", nil)
	req.Header.Set("eventkey", "Secret123")
	req.Header.Set("lastname", "smi")
	req.Header.Set("address", "1 Main St")
	rr := s.do(req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotNil(t, findCookie(rr, sessionCookie))
}

func TestRouter_LookupAddressMustMatchExactly(t *testing.T) {
	s := newTestServer(t)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/guest/rsvp", nil))
	req.Header.Set("lastname", "Smith")
	req.Header.Set("address", "1 Main Street")
	rr := s.do(req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_DeclineAndUnknownGuest(t *testing.T) {
	s := newTestServer(t)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/guest/rsvp",
		strings.NewReader(`{"id":"g-7","numAttending":2,"declined":true}`)))
	rr := s.do(req)
	require.Equal(t, http.StatusOK, rr.Code)
	var g domain.Guest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, 0, g.NumAttending)
	assert.False(t, g.IsAttending)

	req = withSession(httptest.NewRequest(http.MethodPost, "/api/guest/rsvp",
		strings.NewReader(`{"id":"g-999","numAttending":1}`)))
	rr = s.do(req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(withSession(httptest.NewRequest(http.MethodDelete, "/api/guest/rsvp", nil)))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
