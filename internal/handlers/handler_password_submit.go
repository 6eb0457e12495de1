package handlers

import (
	"errors"
	"net/http"
	"portfolio-site/internal/auth"
	"portfolio-site/internal/middlewares"

	"github.com/go-chi/chi/v5/middleware"
)

const maxPasswordFormBytes = 64 << 10

// POSTPasswordHandler checks the submitted site password. A match sets the
// auth cookie and redirects to the requested page, a mismatch goes back to the
// login page with error=1, and a missing site password is a server error.
func POSTPasswordHandler(ctx *middlewares.AppContext) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxPasswordFormBytes)
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Debug("Failed to parse password form", "error", err)
		ctx.WriteText(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	submitted := ctx.Request.PostForm.Get(auth.FormFieldPassword)
	redirectTo := auth.SanitizeRedirectTarget(ctx.Request.PostForm.Get(auth.FormFieldRedirectTo))

	err := auth.ErrSecretNotConfigured
	if ctx.Verifier != nil {
		err = ctx.Verifier.Verify(submitted)
	}

	switch {
	case err == nil:
		ctx.SetCookie(auth.NewAuthCookie(ctx.Config.IsProduction()))
		ctx.Redirect(redirectTo, http.StatusSeeOther)
	case errors.Is(err, auth.ErrInvalidPassword):
		ctx.Logger.Warn("Rejected site password",
			"client_ip", middlewares.ClientIP(ctx.Request),
			"request_id", middleware.GetReqID(ctx.Request.Context()))
		ctx.Redirect(auth.FailedLoginURL(), http.StatusSeeOther)
	case errors.Is(err, auth.ErrSecretNotConfigured):
		ctx.Logger.Error("Site password is not configured", "error", err)
		ctx.WriteText(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	default:
		ctx.Logger.Error("Failed to verify password", "error", err)
		ctx.WriteText(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
