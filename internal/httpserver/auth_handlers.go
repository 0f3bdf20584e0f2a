package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"bitechx.com/catalog/internal/catalog/forms"
	appsession "bitechx.com/catalog/internal/catalog/session"
	"bitechx.com/catalog/internal/httpserver/middleware"
	"bitechx.com/catalog/internal/httpserver/views"
)

const loggedOutNotice = "You have been logged out."

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromContext(r.Context()).Authenticated() {
		http.Redirect(w, r, productsPath, http.StatusFound)
		return
	}

	message := ""
	if r.URL.Query().Get("logout") == "1" {
		message = loggedOutNotice
	}
	next := middleware.SanitizeNext(r.URL.Query().Get("next"))
	s.render(w, "login", views.Login(forms.LoginForm{}, forms.Errors{}, "", message, next))
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := forms.ParseLoginForm(r.PostForm)
	next := middleware.SanitizeNext(r.PostForm.Get("next"))

	if errs := form.Validate(); !errs.Valid() {
		s.render(w, "login", views.Login(form, errs, "", "", next))
		return
	}

	auth, err := s.api.Login(r.Context(), form.Email)
	if err != nil {
		s.logAPIError(r, "login", err)
		s.render(w, "login", views.Login(form, forms.Errors{}, "Login failed. Please check your email and try again.", "", next))
		return
	}

	sess := appsession.Session{Token: auth.Token, Email: form.Email}
	if err := s.sessions.Save(w, sess); err != nil {
		s.logger.Error("save session", zap.Error(err))
		s.render(w, "login", views.Login(form, forms.Errors{}, "Login failed. Please try again.", "", next))
		return
	}

	target := productsPath
	if next != "" {
		target = next
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	http.Redirect(w, r, loginPath+"?logout=1", http.StatusFound)
}
