package handlers

import (
	"net/http"
	"portfolio-site/internal/auth"
	"portfolio-site/internal/middlewares"
)

// POSTLogoutHandler asks the browser to drop the auth cookie.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	ctx.SetCookie(auth.ExpiredAuthCookie(ctx.Config.IsProduction()))
	ctx.SetJSONStatus(http.StatusOK, "OK")
}
