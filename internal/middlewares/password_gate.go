package middlewares

import (
	"net/http"
	"portfolio-site/internal/auth"
)

// PasswordGate lets a request through when its path is bypassed or it carries
// the auth cookie, and otherwise redirects it to the login page with the
// original path in the "from" parameter.
func PasswordGate(bypass *auth.Bypass) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if bypass.IsBypassed(r.URL.Path) || auth.HasAuthCookie(r) {
				next.ServeHTTP(w, r)
				return
			}

			http.Redirect(w, r, auth.LoginRedirectURL(r.URL), http.StatusTemporaryRedirect)
		})
	}
}
