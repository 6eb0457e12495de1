package auth

import (
	"net/http"
)

// NewAuthCookie builds the cookie issued after a successful password check.
// secure should be true when the site is served over HTTPS in production.
func NewAuthCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    CookieValue,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredAuthCookie tells the browser to drop the auth cookie. A copy of the
// cookie kept elsewhere stays valid; there is no server-side revocation.
func ExpiredAuthCookie(secure bool) *http.Cookie {
	c := NewAuthCookie(secure)
	c.Value = ""
	c.MaxAge = -1
	return c
}

// HasAuthCookie reports whether r carries the auth cookie with the sentinel value.
func HasAuthCookie(r *http.Request) bool {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return c.Value == CookieValue
}
