package admin

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(remote, path, user, pass string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "http://example"+path, nil)
	req.RemoteAddr = remote
	if user != "" {
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(user+":"+pass)))
	}
	return req
}

func newHandler(creds Credentials) http.Handler {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "board_moves_check_total", Help: "check"})
	reg.MustRegister(c)
	c.Inc()
	return Handler(creds, reg, map[string]Gauge{
		"changefeed_subscribers": func() int { return 3 },
	})
}

func TestHandler_LoopbackWithoutCredentials(t *testing.T) {
	t.Parallel()

	h := newHandler(Credentials{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, request("127.0.0.1:1234", "/metrics", "", ""))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "board_moves_check_total 1")

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, request("[::1]:1234", "/state", "", ""))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"changefeed_subscribers":3}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, request("127.0.0.1:1234", "/debug/pprof/cmdline", "", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_RemoteNeedsCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		creds  Credentials
		user   string
		pass   string
		status int
	}{
		{"no creds configured", Credentials{}, "u", "p", http.StatusUnauthorized},
		{"missing header", Credentials{User: "u", Pass: "p"}, "", "", http.StatusUnauthorized},
		{"wrong password", Credentials{User: "u", Pass: "p"}, "u", "WRONG", http.StatusUnauthorized},
		{"correct", Credentials{User: "u", Pass: "p"}, "u", "p", http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			newHandler(tt.creds).ServeHTTP(rr, request("8.8.8.8:54444", "/state", tt.user, tt.pass))
			assert.Equal(t, tt.status, rr.Code)
			if tt.status == http.StatusUnauthorized {
				assert.True(t, strings.HasPrefix(rr.Header().Get("WWW-Authenticate"), "Basic"))
			}
		})
	}
}

func TestIsLoopback(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"127.0.0.1:123": true,
		"127.0.0.1":     true,
		" 127.0.0.1 ":   true,
		"[::1]:123":     true,
		"8.8.8.8:1":     false,
		"not-an-ip:1":   false,
	}
	for in, want := range cases {
		assert.Equal(t, want, isLoopback(in), in)
	}
}

func TestSecureEq(t *testing.T) {
	t.Parallel()

	assert.False(t, secureEq("a", "ab"))
	assert.True(t, secureEq("abc", "abc"))
	assert.False(t, secureEq("abc", "abd"))
}
