package handlers

import (
	"bytes"
	"net/http"
	"portfolio-site/internal/auth"
	"portfolio-site/internal/middlewares"
	"portfolio-site/internal/web"
)

func GETPasswordPageHandler(ctx *middlewares.AppContext) {
	query := ctx.Request.URL.Query()

	redirectTo := query.Get(auth.QueryParamFrom)
	if redirectTo == "" {
		redirectTo = auth.DefaultRedirectTarget
	}

	data := web.PasswordPageData{
		ShowError:  query.Get(auth.QueryParamError) == "1",
		RedirectTo: redirectTo,
	}

	var buf bytes.Buffer
	if err := web.RenderPasswordPage(&buf, data); err != nil {
		ctx.Logger.Error("Failed to render password page", "error", err)
		ctx.WriteText(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	header := ctx.Response.Header()
	header.Set("Content-Type", "text/html; charset=utf-8")
	header.Set("X-Robots-Tag", "noindex, nofollow")
	header.Set("Cache-Control", "no-store")
	ctx.Response.WriteHeader(http.StatusOK)

	if _, err := ctx.Response.Write(buf.Bytes()); err != nil {
		ctx.Logger.Debug("Failed to write password page", "error", err)
	}
}
