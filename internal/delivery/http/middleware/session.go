package middleware

import (
	"log/slog"
	"net/http"

	h "weddingrsvp/internal/delivery/http/helpers"
	"weddingrsvp/internal/domain"
)

// EventKeyHeader carries the invitation secret on the first request of a browser.
const EventKeyHeader = "eventkey"

// RequireSession returns a wrapper that admits requests holding the session cookie or a valid event key.
// A valid key writes the session cookie on the response before next runs.
// Denied requests get denyStatus with an empty body: 404 on routes that must not reveal whether
// anything exists, 401 where the caller already targets a known resource.
func RequireSession(gate domain.SessionGate, denyStatus int, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			d := gate.Authorize(h.CookieMap(r), r.Header.Get(EventKeyHeader))
			if !d.Allowed() {
				logger.DebugContext(r.Context(), "session gate denied request", "path", r.URL.Path)
				h.WriteStatus(w, denyStatus)
				return
			}
			if d.Outcome == domain.AuthorizedIssue && d.Cookie != nil {
				if err := h.SetCookie(w, *d.Cookie); err != nil {
					logger.ErrorContext(r.Context(), "session cookie not issued", "err", err)
				}
			}
			next(w, r)
		}
	}
}
