package web

import (
	"embed"
	"html/template"
	"io"
	"portfolio-site/internal/auth"
)

//go:embed templates/password.html
var templates embed.FS

var passwordTemplate = template.Must(template.ParseFS(templates, "templates/password.html"))

// PasswordPageData is rendered into the login form.
type PasswordPageData struct {
	ShowError  bool
	RedirectTo string
}

// RenderPasswordPage writes the login page to w.
func RenderPasswordPage(w io.Writer, data PasswordPageData) error {
	return passwordTemplate.Execute(w, struct {
		PasswordPageData
		Action        string
		PasswordField string
		RedirectField string
	}{
		PasswordPageData: data,
		Action:           auth.LoginPath,
		PasswordField:    auth.FormFieldPassword,
		RedirectField:    auth.FormFieldRedirectTo,
	})
}
