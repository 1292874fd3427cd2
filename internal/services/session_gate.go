package services

import (
	"crypto/subtle"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

// SessionGateConfig is the cookie and secret configuration of the gate.
type SessionGateConfig struct {
	EventKey           string
	SessionCookieName  string
	SessionCookieValue string
	RsvpCookieName     string
	CookiePath         string
	Expires            time.Time
}

type sessionGate struct {
	cfg SessionGateConfig
}

// NewSessionGate returns a SessionGate backed by a static shared secret.
func NewSessionGate(cfg SessionGateConfig) domain.SessionGate {
	cfg.EventKey = strings.ToLower(cfg.EventKey)
	return &sessionGate{cfg: cfg}
}

func (g *sessionGate) Authorize(cookies map[string]string, eventKey string) domain.GateDecision {
	if v, ok := cookies[g.cfg.SessionCookieName]; ok && equalSecret(v, g.cfg.SessionCookieValue) {
		return domain.GateDecision{Outcome: domain.Authorized}
	}
	if eventKey != "" && equalSecret(strings.ToLower(eventKey), g.cfg.EventKey) {
		return domain.GateDecision{
			Outcome: domain.AuthorizedIssue,
			Cookie:  g.cookie(g.cfg.SessionCookieName, g.cfg.SessionCookieValue),
		}
	}
	return domain.GateDecision{Outcome: domain.Unauthorized}
}

func (g *sessionGate) RsvpCookie(guestID string) domain.CookieSpec {
	return *g.cookie(g.cfg.RsvpCookieName, guestID)
}

func (g *sessionGate) RsvpCookieName() string {
	return g.cfg.RsvpCookieName
}

func (g *sessionGate) cookie(name, value string) *domain.CookieSpec {
	return &domain.CookieSpec{
		Name:    name,
		Value:   value,
		Path:    g.cfg.CookiePath,
		Expires: g.cfg.Expires,
	}
}

func equalSecret(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
