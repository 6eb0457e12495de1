package testutil

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"portfolio-site/internal/config"
	"portfolio-site/internal/middlewares"
	"portfolio-site/internal/mocks"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockVerifier   *mocks.MockCredentialVerifier
	LogHandler     *TestLogHandler
}

// NewTestConfig returns a validated-looking config for handler tests.
func NewTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        config.DefaultServerConfig.Port,
			Environment: config.EnvironmentDevelopment,
			StaticDir:   config.DefaultServerConfig.StaticDir,
		},
		Gate: config.GateConfig{
			Password:       "test-password",
			BypassPrefixes: config.DefaultGateConfig.BypassPrefixes,
		},
		Log: config.DefaultLogConfig,
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, target string) *TestContext {
	req := httptest.NewRequest(method, target, nil)
	return newTestContext(t, req)
}

// NewTestContextWithForm creates a test setup for a urlencoded form submission.
func NewTestContextWithForm(t *testing.T, target string, form url.Values) *TestContext {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return newTestContext(t, req)
}

func newTestContext(t *testing.T, req *http.Request) *TestContext {
	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)
	mockVerifier := mocks.NewMockCredentialVerifier(ctrl)

	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:  req.Context(),
		Config:   NewTestConfig(),
		Logger:   logger,
		Verifier: mockVerifier,
		Request:  req,
		Response: rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockVerifier:   mockVerifier,
		LogHandler:     logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithVerifier replaces the mock verifier, e.g. with a real auth.Verifier or nil.
func (tc *TestContext) WithVerifier(v middlewares.CredentialVerifier) *TestContext {
	tc.AppContext.Verifier = v
	return tc
}

// WithCookie adds a cookie to the request
func (tc *TestContext) WithCookie(c *http.Cookie) *TestContext {
	tc.Request.AddCookie(c)
	return tc
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertLocation checks the redirect target
func (tc *TestContext) AssertLocation(t *testing.T, expected string) {
	t.Helper()
	if location := tc.Response.Header().Get("Location"); location != expected {
		t.Errorf("Expected Location %q, got %q", expected, location)
	}
}

// GetResponseCookie returns the cookie set on the response with the given name.
func (tc *TestContext) GetResponseCookie(name string) *http.Cookie {
	for _, c := range tc.Response.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AssertNoCookies fails when the response sets any cookie.
func (tc *TestContext) AssertNoCookies(t *testing.T) {
	t.Helper()
	if cookies := tc.Response.Result().Cookies(); len(cookies) != 0 {
		t.Errorf("Expected no cookies, got %v", cookies)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

// GetResponseBody returns the raw response body
func (tc *TestContext) GetResponseBody() string {
	return tc.Response.Body.String()
}

func (tc *TestContext) AssertLogsContainMessage(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}
