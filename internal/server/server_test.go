package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"portfolio-site/internal/auth"
	"portfolio-site/internal/config"
	"portfolio-site/internal/metrics"
	"portfolio-site/internal/middlewares"
	"portfolio-site/internal/testutil"
	"strings"
	"testing"

	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassword = "correct horse"
	indexBody    = "<!doctype html><title>portfolio</title>"
	assetBody    = "console.log('app')"
)

func newTestSite(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(indexBody), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte(assetBody), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "robots.txt"), []byte("User-agent: *\nDisallow: /\n"), 0o644))
	return dir
}

func newTestRouter(t *testing.T, mutate ...func(*config.Config)) http.Handler {
	t.Helper()

	cfg := testutil.NewTestConfig()
	cfg.Gate.Password = testPassword
	cfg.Server.StaticDir = newTestSite(t)
	cfg.CORS = config.DefaultCORSConfig
	for _, m := range mutate {
		m(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	appCtx := middlewares.NewAppContext(context.Background(), cfg, logger, auth.NewVerifier(cfg.Gate.Password))
	return setupRouter(appCtx)
}

func authCookie() *apitest.Cookie {
	return apitest.NewCookie(auth.CookieName).Value(auth.CookieValue)
}

func bodyContains(substr string) func(*http.Response, *http.Request) error {
	return func(res *http.Response, _ *http.Request) error {
		body, err := io.ReadAll(res.Body)
		if err != nil {
			return err
		}
		if !strings.Contains(string(body), substr) {
			return fmt.Errorf("expected body to contain %q, got %q", substr, string(body))
		}
		return nil
	}
}

func TestRouter_RedirectsUnauthenticatedPages(t *testing.T) {
	handler := newTestRouter(t)

	tests := []struct {
		name     string
		target   string
		location string
	}{
		{"root has no from", "/", "/password"},
		{"page carries from", "/experience", "/password?from=%2Fexperience"},
		{"nested page", "/projects/go", "/password?from=%2Fprojects%2Fgo"},
		{"query is kept", "/experience?tab=2", "/password?from=%2Fexperience&tab=2"},
		{"existing from wins", "/experience?from=%2Fother", "/password?from=%2Fother"},
		{"root keeps query", "/?ref=cv", "/password?ref=cv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apitest.New().
				Handler(handler).
				Get(tt.target).
				Expect(t).
				Status(http.StatusTemporaryRedirect).
				Header("Location", tt.location).
				CookieNotPresent(auth.CookieName).
				End()
		})
	}
}

func TestRouter_RedirectsEveryMethod(t *testing.T) {
	handler := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Post("/experience").
		Expect(t).
		Status(http.StatusTemporaryRedirect).
		Header("Location", "/password?from=%2Fexperience").
		End()
}

func TestRouter_RejectsWrongCookieValue(t *testing.T) {
	handler := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Get("/experience").
		Cookie(auth.CookieName, "false").
		Expect(t).
		Status(http.StatusTemporaryRedirect).
		Header("Location", "/password?from=%2Fexperience").
		End()
}

func TestRouter_ServesPagesWithCookie(t *testing.T) {
	handler := newTestRouter(t)

	for _, target := range []string{"/", "/experience", "/projects/go"} {
		apitest.New().
			Handler(handler).
			Get(target).
			Cookies(authCookie()).
			Expect(t).
			Status(http.StatusOK).
			Assert(bodyContains(indexBody)).
			End()
	}
}

func TestRouter_BypassesAssetsAndFiles(t *testing.T) {
	handler := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Get("/assets/app.js").
		Expect(t).
		Status(http.StatusOK).
		Body(assetBody).
		End()

	apitest.New().
		Handler(handler).
		Get("/robots.txt").
		Expect(t).
		Status(http.StatusOK).
		End()

	// Bypassed paths that do not exist never fall back to the site.
	for _, target := range []string{"/favicon.ico", "/assets/missing.js", "/index.html", "/password/extra"} {
		apitest.New().
			Handler(handler).
			Get(target).
			Expect(t).
			Status(http.StatusNotFound).
			HeaderNotPresent("Location").
			End()
	}
}

func TestRouter_ConfiguredBypassPrefix(t *testing.T) {
	handler := newTestRouter(t, func(cfg *config.Config) {
		cfg.Gate.BypassPrefixes = []string{"/assets", "/public"}
	})

	apitest.New().
		Handler(handler).
		Get("/public/cv").
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.New().
		Handler(handler).
		Get("/private").
		Expect(t).
		Status(http.StatusTemporaryRedirect).
		End()
}

func TestRouter_APIIsNotGated(t *testing.T) {
	handler := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Get("/api/v1/health").
		Expect(t).
		Status(http.StatusOK).
		Body(`{"status":"OK"}`).
		End()

	apitest.New().
		Handler(handler).
		Get("/api/auth/status").
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"authenticated":false}`).
		End()

	apitest.New().
		Handler(handler).
		Get("/api/unknown").
		Expect(t).
		Status(http.StatusNotFound).
		HeaderNotPresent("Location").
		End()
}

func TestRouter_APISendsCORSHeaders(t *testing.T) {
	handler := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Get("/api/v1/health").
		Header("Origin", "http://localhost:8080").
		Expect(t).
		Status(http.StatusOK).
		Header("Access-Control-Allow-Origin", "http://localhost:8080").
		End()
}

func TestRouter_LoginPageIsReachable(t *testing.T) {
	handler := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Get("/password").
		Query("from", "/experience").
		Expect(t).
		Status(http.StatusOK).
		Header("Content-Type", "text/html; charset=utf-8").
		Assert(bodyContains(`value="/experience"`)).
		End()

	apitest.New().
		Handler(handler).
		Get("/password").
		Query("error", "1").
		Expect(t).
		Status(http.StatusOK).
		Assert(bodyContains("Incorrect password")).
		End()
}

func TestRouter_LoginFlow(t *testing.T) {
	handler := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Post("/password").
		FormData(auth.FormFieldPassword, testPassword).
		FormData(auth.FormFieldRedirectTo, "/experience").
		Expect(t).
		Status(http.StatusSeeOther).
		Header("Location", "/experience").
		Cookies(apitest.NewCookie(auth.CookieName).
			Value(auth.CookieValue).
			Path("/").
			MaxAge(604800).
			HttpOnly(true).
			Secure(false)).
		End()

	apitest.New().
		Handler(handler).
		Post("/password").
		FormData(auth.FormFieldPassword, "wrong").
		FormData(auth.FormFieldRedirectTo, "/experience").
		Expect(t).
		Status(http.StatusSeeOther).
		Header("Location", "/password?error=1").
		CookieNotPresent(auth.CookieName).
		End()
}

func TestRouter_ProductionCookieIsSecure(t *testing.T) {
	handler := newTestRouter(t, func(cfg *config.Config) {
		cfg.Server.Environment = config.EnvironmentProduction
	})

	apitest.New().
		Handler(handler).
		Post("/password").
		FormData(auth.FormFieldPassword, testPassword).
		Expect(t).
		Status(http.StatusSeeOther).
		Header("Location", "/").
		Cookies(apitest.NewCookie(auth.CookieName).Secure(true)).
		End()
}

func TestRouter_MissingSecretFailsLoudly(t *testing.T) {
	handler := newTestRouter(t, func(cfg *config.Config) {
		cfg.Gate.Password = ""
	})

	apitest.New().
		Handler(handler).
		Post("/password").
		FormData(auth.FormFieldPassword, "").
		Expect(t).
		Status(http.StatusInternalServerError).
		CookieNotPresent(auth.CookieName).
		HeaderNotPresent("Location").
		End()
}

func TestRouter_Logout(t *testing.T) {
	handler := newTestRouter(t)

	apitest.New().
		Handler(handler).
		Post("/api/auth/logout").
		Cookies(authCookie()).
		Expect(t).
		Status(http.StatusOK).
		Cookies(apitest.NewCookie(auth.CookieName).MaxAge(-1)).
		End()
}

func TestDebugRouter_ServesMetrics(t *testing.T) {
	metrics.BuildInfo.WithLabelValues("test", "test").Set(1)

	apitest.New().
		Handler(setupDebugRouter()).
		Get("/metrics").
		Expect(t).
		Status(http.StatusOK).
		Assert(bodyContains("portfolio_site_build_info")).
		End()
}

func TestNew(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Server.StaticDir = newTestSite(t)
	cfg.Server.Debug = &config.ServerDebugConfig{Enabled: true, Host: "localhost", Port: 5123}

	s, err := New(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, s.instanceID)
	assert.Equal(t, ":8080", s.httpServer.Addr)
	require.NotNil(t, s.debugServer)
	assert.Equal(t, "localhost:5123", s.debugServer.Addr)
	assert.NotNil(t, s.Handler())

	_, err = New(nil)
	assert.Error(t, err)
}
