package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{" https://rsvp.example/ ", ""}, next)

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed bool
	}{
		{"preflight allowed", http.MethodOptions, "https://rsvp.example", http.StatusNoContent, true},
		{"preflight other origin", http.MethodOptions, "https://evil.example", http.StatusNoContent, false},
		{"request allowed", http.MethodGet, "https://rsvp.example", http.StatusOK, true},
		{"request without origin", http.MethodGet, "", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test/api/guest/rsvp", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rr.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
			if tt.method == http.MethodOptions && tt.wantAllowed {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Eventkey")
			}
		})
	}
}
