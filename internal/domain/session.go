package domain

import "time"

// GateOutcome is the result of checking a request against the session gate.
type GateOutcome int

const (
	// Unauthorized means neither a valid session cookie nor a valid event key was presented.
	Unauthorized GateOutcome = iota
	// Authorized means the request carried the session cookie.
	Authorized
	// AuthorizedIssue means the event key was valid; the session cookie must be set on the response.
	AuthorizedIssue
)

// CookieSpec describes a cookie to be written on the response.
type CookieSpec struct {
	Name    string
	Value   string
	Path    string
	Expires time.Time
}

// GateDecision is returned by SessionGate.Authorize. Cookie is set only for AuthorizedIssue.
type GateDecision struct {
	Outcome GateOutcome
	Cookie  *CookieSpec
}

// Allowed reports whether the request may proceed.
func (d GateDecision) Allowed() bool {
	return d.Outcome == Authorized || d.Outcome == AuthorizedIssue
}

// SessionGate decides whether a request holds the event session.
type SessionGate interface {
	Authorize(cookies map[string]string, eventKey string) GateDecision
	// RsvpCookie returns the cookie binding a browser to a guest id.
	RsvpCookie(guestID string) CookieSpec
	// RsvpCookieName is the name of the cookie written by RsvpCookie.
	RsvpCookieName() string
}
