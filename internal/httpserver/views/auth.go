package views

import "bitechx.com/catalog/internal/catalog/forms"

// LoginPage is the payload for the admin login screen.
type LoginPage struct {
	Title   string
	Email   string
	Errors  forms.Errors
	Error   string
	Message string
	Next    string
}

// Login builds the login screen. errMsg carries the generic authentication
// failure banner; message carries informational notices like "logged out".
func Login(form forms.LoginForm, errs forms.Errors, errMsg, message, next string) LoginPage {
	return LoginPage{
		Title:   "Admin Login",
		Email:   form.Email,
		Errors:  errs,
		Error:   errMsg,
		Message: message,
		Next:    next,
	}
}
