package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// Lookup headers sent by the RSVP form.
const (
	LastNameHeader = "lastname"
	AddressHeader  = "address"
)

type GuestController struct {
	Logger  *slog.Logger
	Service domain.RsvpService
	Gate    domain.SessionGate
}

func NewGuestController(logger *slog.Logger, svc domain.RsvpService, gate domain.SessionGate) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
		Gate:    gate,
	}
}

// Validate godoc
// @Summary Exchange the event key for a session cookie
// @Description Accepts the eventkey header (case-insensitive) or an existing session cookie. On a valid key the session cookie is set. Returns the event details.
// @Tags guest
// @Produce json
// @Param eventkey header string false "Event key printed on the invitation"
// @Success 200 {object} domain.EventDetails
// @Failure 404 "Missing or wrong event key"
// @Router /api/guest/validate [get]
func (c *GuestController) Validate(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, c.Service.Validate(r.Context()))
}

// Find godoc
// @Summary Find a guest by last name and address
// @Description Last name matches as a case-insensitive substring, address must match exactly. The returned id is masked.
// @Tags guest
// @Produce json
// @Param lastname header string true "Guest last name"
// @Param address header string true "Guest address"
// @Success 200 {object} domain.Guest
// @Failure 400 "Missing lastname or address"
// @Failure 404 "No session or no matching guest"
// @Failure 500 "Store failure"
// @Router /api/guest/rsvp [get]
func (c *GuestController) Find(w http.ResponseWriter, r *http.Request) {
	lastName := strings.TrimSpace(r.Header.Get(LastNameHeader))
	address := r.Header.Get(AddressHeader)
	if lastName == "" || strings.TrimSpace(address) == "" {
		helpers.WriteStatus(w, http.StatusBadRequest)
		return
	}

	g, err := c.Service.Find(r.Context(), lastName, address)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, g)
}

// Check godoc
// @Summary Get the guest bound to this browser
// @Description Uses the rsvp-session cookie set by a previous submission.
// @Tags guest
// @Produce json
// @Success 200 {object} domain.Guest
// @Failure 404 "No session, no rsvp cookie or unknown guest"
// @Failure 500 "Store failure"
// @Router /api/guest/check/rsvp [get]
func (c *GuestController) Check(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(c.Gate.RsvpCookieName())
	if err != nil || cookie.Value == "" {
		helpers.WriteStatus(w, http.StatusNotFound)
		return
	}

	g, err := c.Service.Check(r.Context(), cookie.Value)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, g)
}

// SubmitRsvpRequest is the request body for POST /api/guest/rsvp.
type SubmitRsvpRequest struct {
	ID           string `json:"id"`
	NumAttending *int   `json:"numAttending"`
	// Attending is the deprecated name of NumAttending, still sent by older forms.
	Attending *int `json:"attending,omitempty"`
	Declined  bool `json:"declined"`
}

// Validate implements helpers.Validator.
func (s *SubmitRsvpRequest) Validate() []string {
	if s.NumAttending == nil {
		s.NumAttending = s.Attending
	}
	s.ID = strings.TrimSpace(s.ID)
	var errs []string
	if s.ID == "" {
		errs = append(errs, "id is required")
	}
	if s.NumAttending == nil {
		errs = append(errs, "numAttending is required")
	}
	return errs
}

// Submit godoc
// @Summary Record or amend attendance
// @Description Records the attendance count for the guest. declined=true records zero attendees regardless of numAttending. Sets the rsvp-session cookie.
// @Tags guest
// @Accept json
// @Produce json
// @Param body body controllers.SubmitRsvpRequest true "Attendance"
// @Success 200 {object} domain.Guest
// @Failure 400 "Malformed body or missing id/numAttending"
// @Failure 401 "No session"
// @Failure 403 "Unknown guest or attendance out of bounds"
// @Failure 500 "Store failure"
// @Router /api/guest/rsvp [post]
func (c *GuestController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRsvpRequest
	if errs := helpers.DecodeAndValidate(w, r, &req); errs != nil {
		c.Logger.DebugContext(r.Context(), "rejected rsvp body", "errors", errs)
		return
	}

	g, err := c.Service.Submit(r.Context(), domain.SubmitRequest{
		ID:           req.ID,
		NumAttending: req.NumAttending,
		Declined:     req.Declined,
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if err := helpers.SetCookie(w, c.Gate.RsvpCookie(g.ID)); err != nil {
		c.Logger.WarnContext(r.Context(), "rsvp cookie not set", "guest_id", g.ID, "err", err)
	}
	helpers.WriteJSON(w, http.StatusOK, g)
}

func (c *GuestController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteStatus(w, http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteStatus(w, http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		c.Logger.InfoContext(r.Context(), "rsvp rejected", "path", r.URL.Path, "reason", err.Error())
		helpers.WriteStatus(w, http.StatusForbidden)
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteStatus(w, http.StatusNotFound)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteStatus(w, http.StatusInternalServerError)
	}
}
