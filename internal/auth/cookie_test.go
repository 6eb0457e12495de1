package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAuthCookie(t *testing.T) {
	for _, secure := range []bool{false, true} {
		c := NewAuthCookie(secure)

		assert.Equal(t, CookieName, c.Name)
		assert.Equal(t, CookieValue, c.Value)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, 604800, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
		assert.Equal(t, secure, c.Secure)
	}
}

func TestNewAuthCookie_IsStable(t *testing.T) {
	assert.Equal(t, NewAuthCookie(true).String(), NewAuthCookie(true).String())
}

func TestExpiredAuthCookie(t *testing.T) {
	c := ExpiredAuthCookie(false)

	assert.Equal(t, CookieName, c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.Equal(t, "/", c.Path)
}

func TestHasAuthCookie(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		want   bool
	}{
		{name: "no cookie", cookie: nil, want: false},
		{name: "sentinel value", cookie: &http.Cookie{Name: CookieName, Value: CookieValue}, want: true},
		{name: "wrong value", cookie: &http.Cookie{Name: CookieName, Value: "false"}, want: false},
		{name: "empty value", cookie: &http.Cookie{Name: CookieName, Value: ""}, want: false},
		{name: "other cookie", cookie: &http.Cookie{Name: "session_id", Value: CookieValue}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			assert.Equal(t, tt.want, HasAuthCookie(r))
		})
	}
}
