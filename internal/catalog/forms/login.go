package forms

import (
	"net/url"
	"strings"
)

var loginMessages = map[string]string{
	"Email": "Invalid email address",
}

// LoginForm carries the admin login submission. The flow has no password;
// the service authenticates by email allowlist.
type LoginForm struct {
	Email string `validate:"required,email"`
}

// ParseLoginForm reads a submitted login form.
func ParseLoginForm(values url.Values) LoginForm {
	return LoginForm{Email: strings.TrimSpace(values.Get("email"))}
}

// Validate applies the email rule.
func (f LoginForm) Validate() Errors {
	return collect(f, loginMessages)
}
