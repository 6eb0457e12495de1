package handlers

import (
	"net/http"
	"portfolio-site/internal/auth"
	"portfolio-site/internal/middlewares"
)

type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	if !auth.HasAuthCookie(ctx.Request) {
		ctx.WriteJSON(http.StatusUnauthorized, AuthStatusResponse{Authenticated: false})
		return
	}

	ctx.WriteJSON(http.StatusOK, AuthStatusResponse{Authenticated: true})
}
