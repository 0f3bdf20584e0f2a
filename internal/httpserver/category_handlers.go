package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bitechx.com/catalog/internal/catalog/api"
	"bitechx.com/catalog/internal/catalog/browse"
	"bitechx.com/catalog/internal/catalog/forms"
	"bitechx.com/catalog/internal/httpserver/middleware"
	"bitechx.com/catalog/internal/httpserver/views"
)

// handleCategoryList serves the admin category table. A search term switches
// to the dedicated search endpoint, which has no pagination.
func (s *Server) handleCategoryList(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	q := browse.ParseQuery(r.URL.Query(), s.cfg.CategoryPageSize)

	errMsg := ""
	if r.URL.Query().Get("deleteFailed") == "1" {
		errMsg = "Failed to delete category"
	}

	var (
		items []api.Category
		err   error
	)
	if term, ok := q.Filter.Search(); ok {
		items, err = s.api.SearchCategories(r.Context(), token, term)
	} else {
		items, err = s.api.ListCategories(r.Context(), token, q.Offset, q.Limit)
	}
	if err != nil {
		s.logAPIError(r, "list categories", err)
		errMsg = "Failed to load categories"
	}

	s.render(w, "categories", views.Categories(browse.NewPage(items, q), errMsg))
}

func (s *Server) handleCategoryNewForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "category_form", views.CategoryCreate(forms.CategoryForm{}, forms.Errors{}, ""))
}

func (s *Server) handleCategoryCreate(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := forms.ParseCategoryForm(r.PostForm)
	if errs := form.Validate(); !errs.Valid() {
		s.render(w, "category_form", views.CategoryCreate(form, errs, ""))
		return
	}

	if _, err := s.api.CreateCategory(r.Context(), token, form.Request()); err != nil {
		s.logAPIError(r, "create category", err)
		s.render(w, "category_form", views.CategoryCreate(form, forms.Errors{}, "Failed to create category"))
		return
	}

	http.Redirect(w, r, categoriesPath, http.StatusFound)
}

func (s *Server) handleCategoryEditForm(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	id := chi.URLParam(r, "id")

	category, err := s.api.GetCategory(r.Context(), token, id)
	if err != nil {
		if notFound(err) {
			http.NotFound(w, r)
			return
		}
		s.logAPIError(r, "get category", err)
		http.Redirect(w, r, categoriesPath, http.StatusFound)
		return
	}

	s.render(w, "category_form", views.CategoryEdit(id, forms.CategoryFormFrom(*category), forms.Errors{}, ""))
}

func (s *Server) handleCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := forms.ParseCategoryForm(r.PostForm)
	if errs := form.Validate(); !errs.Valid() {
		s.render(w, "category_form", views.CategoryEdit(id, form, errs, ""))
		return
	}

	if _, err := s.api.UpdateCategory(r.Context(), token, id, form.Request()); err != nil {
		if notFound(err) {
			http.NotFound(w, r)
			return
		}
		s.logAPIError(r, "update category", err)
		s.render(w, "category_form", views.CategoryEdit(id, form, forms.Errors{}, "Failed to update category"))
		return
	}

	http.Redirect(w, r, categoriesPath, http.StatusFound)
}

func (s *Server) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	listQuery := listQueryFrom(r.PostForm.Get("list"), s.cfg.CategoryPageSize)

	if err := s.api.DeleteCategory(r.Context(), token, id); err != nil {
		s.logAPIError(r, "delete category", err)
		values := listQuery.Values()
		values.Set("deleteFailed", "1")
		http.Redirect(w, r, categoriesPath+"?"+values.Encode(), http.StatusFound)
		return
	}

	http.Redirect(w, r, listLocation(categoriesPath, listQuery.Encode()), http.StatusFound)
}
