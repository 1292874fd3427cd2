package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"weddingrsvp/internal/domain"
)

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes data as the whole body.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteStatus writes statusCode with an empty body. Error responses never carry detail.
func WriteStatus(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

// SetCookie writes c as a Set-Cookie header. Cookies are readable by the browser app and not secure-only.
// A cookie net/http would silently alter (for example a value containing '"', ';' or non-ASCII bytes)
// is not written and the validation error is returned.
func SetCookie(w http.ResponseWriter, c domain.CookieSpec) error {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Expires:  c.Expires,
		HttpOnly: false,
		Secure:   false,
	}
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("cookie %s: %w", c.Name, err)
	}
	http.SetCookie(w, cookie)
	return nil
}

// CookieMap flattens the request cookies by name. The first cookie of a given name wins.
func CookieMap(r *http.Request) map[string]string {
	cookies := r.Cookies()
	m := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if _, ok := m[c.Name]; !ok {
			m[c.Name] = c.Value
		}
	}
	return m
}
