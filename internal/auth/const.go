package auth

import "time"

const (
	// CookieName is the cookie whose presence marks a browser that has
	// passed the password check.
	CookieName = "site-auth"

	// CookieValue is the fixed sentinel stored in the auth cookie. It is not a
	// session id: any request carrying it is authorized.
	CookieValue = "true"

	// CookieMaxAge is how long the browser keeps the auth cookie.
	CookieMaxAge = 7 * 24 * time.Hour

	// LoginPath serves the password form and receives its submission.
	LoginPath = "/password"

	// APIPathPrefix is never gated.
	APIPathPrefix = "/api"

	// DefaultRedirectTarget is used when no usable redirect target is supplied.
	DefaultRedirectTarget = "/"
)

// Query parameters understood by the login page.
const (
	QueryParamFrom  = "from"
	QueryParamError = "error"
)

// Form fields posted by the login page.
const (
	FormFieldPassword   = "password"
	FormFieldRedirectTo = "redirectTo"
)
