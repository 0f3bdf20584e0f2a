package httpserver

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"bitechx.com/catalog/internal/catalog/api"
	"bitechx.com/catalog/internal/catalog/browse"
	"bitechx.com/catalog/internal/catalog/forms"
	"bitechx.com/catalog/internal/httpserver/middleware"
	"bitechx.com/catalog/internal/httpserver/views"
)

func (s *Server) handleProductList(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	q := browse.ParseQuery(r.URL.Query(), s.cfg.ProductPageSize)

	errMsg := ""
	if r.URL.Query().Get("deleteFailed") == "1" {
		errMsg = "Failed to delete product"
	}

	items, err := s.api.ListProducts(r.Context(), token, productQuery(q))
	if err != nil {
		s.logAPIError(r, "list products", err)
		errMsg = "Failed to load products"
	}

	categories, err := s.categoryOptions(r.Context(), token)
	if err != nil {
		s.logAPIError(r, "list categories", err)
	}

	s.render(w, "products", views.Products(browse.NewPage(items, q), categories, errMsg))
}

func (s *Server) handleProductNewForm(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token

	categories, err := s.categoryOptions(r.Context(), token)
	if err != nil {
		s.logAPIError(r, "list categories", err)
	}

	s.render(w, "product_form", views.ProductCreate(forms.ProductForm{}, forms.Errors{}, categories, ""))
}

func (s *Server) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := forms.ParseProductForm(r.PostForm)
	if errs := form.Validate(); !errs.Valid() {
		categories, _ := s.categoryOptions(r.Context(), token)
		s.render(w, "product_form", views.ProductCreate(form, errs, categories, ""))
		return
	}

	if _, err := s.api.CreateProduct(r.Context(), token, form.Request()); err != nil {
		s.logAPIError(r, "create product", err)
		categories, _ := s.categoryOptions(r.Context(), token)
		s.render(w, "product_form", views.ProductCreate(form, forms.Errors{}, categories, "Failed to create product"))
		return
	}

	http.Redirect(w, r, productsPath, http.StatusFound)
}

func (s *Server) handleProductEditForm(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	id := chi.URLParam(r, "id")

	product, err := s.api.GetProduct(r.Context(), token, id)
	if err != nil {
		if notFound(err) {
			http.NotFound(w, r)
			return
		}
		s.logAPIError(r, "get product", err)
		http.Redirect(w, r, productsPath, http.StatusFound)
		return
	}

	categories, err := s.categoryOptions(r.Context(), token)
	if err != nil {
		s.logAPIError(r, "list categories", err)
	}

	s.render(w, "product_form", views.ProductEdit(id, forms.ProductFormFrom(*product), forms.Errors{}, categories, ""))
}

func (s *Server) handleProductUpdate(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := forms.ParseProductForm(r.PostForm)
	if errs := form.Validate(); !errs.Valid() {
		categories, _ := s.categoryOptions(r.Context(), token)
		s.render(w, "product_form", views.ProductEdit(id, form, errs, categories, ""))
		return
	}

	if _, err := s.api.UpdateProduct(r.Context(), token, id, form.Request()); err != nil {
		if notFound(err) {
			http.NotFound(w, r)
			return
		}
		s.logAPIError(r, "update product", err)
		categories, _ := s.categoryOptions(r.Context(), token)
		s.render(w, "product_form", views.ProductEdit(id, form, forms.Errors{}, categories, "Failed to update product"))
		return
	}

	http.Redirect(w, r, productsPath, http.StatusFound)
}

// handleProductDelete removes the product and sends the browser back to the
// list page it came from, which re-fetches and renders the fresh page.
func (s *Server) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionFromContext(r.Context()).Token
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	listQuery := listQueryFrom(r.PostForm.Get("list"), s.cfg.ProductPageSize)

	if err := s.api.DeleteProduct(r.Context(), token, id); err != nil {
		s.logAPIError(r, "delete product", err)
		values := listQuery.Values()
		values.Set("deleteFailed", "1")
		http.Redirect(w, r, productsPath+"?"+values.Encode(), http.StatusFound)
		return
	}

	http.Redirect(w, r, listLocation(productsPath, listQuery.Encode()), http.StatusFound)
}

// listQueryFrom re-parses the encoded list state a row form carried, so the
// post-action redirect lands on the page the admin was looking at.
func listQueryFrom(encoded string, limit int) browse.Query {
	values, err := url.ParseQuery(encoded)
	if err != nil {
		return browse.NewQuery(limit)
	}
	return browse.ParseQuery(values, limit)
}

func productQuery(q browse.Query) api.ProductQuery {
	pq := api.ProductQuery{Offset: q.Offset, Limit: q.Limit}
	if term, ok := q.Filter.Search(); ok {
		pq.Search = term
	}
	if id, ok := q.Filter.Category(); ok {
		pq.CategoryID = id
	}
	return pq
}

// categoryOptions fetches the categories for the filter and form dropdowns.
func (s *Server) categoryOptions(ctx context.Context, token string) ([]api.Category, error) {
	return s.api.ListCategories(ctx, token, 0, categoryOptionLimit)
}
