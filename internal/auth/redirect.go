package auth

import (
	"net/url"
	"strings"
)

// LoginRedirectURL builds the login page URL for an unauthenticated request
// to u. The original query is kept; the original path is added as "from"
// unless it is the root or a "from" value is already present.
func LoginRedirectURL(u *url.URL) string {
	query := u.Query()

	if u.Path != "" && u.Path != "/" && !query.Has(QueryParamFrom) {
		query.Set(QueryParamFrom, u.Path)
	}

	target := url.URL{Path: LoginPath, RawQuery: query.Encode()}
	return target.String()
}

// FailedLoginURL is where a wrong password is sent.
func FailedLoginURL() string {
	target := url.URL{
		Path:     LoginPath,
		RawQuery: url.Values{QueryParamError: []string{"1"}}.Encode(),
	}
	return target.String()
}

// SanitizeRedirectTarget returns target when it is a local absolute path and
// DefaultRedirectTarget otherwise, so the login form cannot send a browser
// to another site.
func SanitizeRedirectTarget(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") {
		return DefaultRedirectTarget
	}

	// "//host" and "/\host" are treated as another origin by browsers.
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return DefaultRedirectTarget
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return DefaultRedirectTarget
	}

	return target
}
