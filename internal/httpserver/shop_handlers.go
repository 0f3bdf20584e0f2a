package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bitechx.com/catalog/internal/catalog/browse"
	"bitechx.com/catalog/internal/httpserver/views"
)

// Storefront handlers run anonymously: no session, no bearer token.

func (s *Server) handleShopIndex(w http.ResponseWriter, r *http.Request) {
	q := browse.ParseQuery(r.URL.Query(), s.cfg.ProductPageSize)

	errMsg := ""
	items, err := s.api.ListProducts(r.Context(), "", productQuery(q))
	if err != nil {
		s.logAPIError(r, "list products", err)
		errMsg = "Failed to load products"
	}

	s.render(w, "shop", views.Shop(browse.NewPage(items, q), errMsg))
}

func (s *Server) handleShopDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := s.api.GetProduct(r.Context(), "", slug)
	if err != nil {
		if notFound(err) {
			http.NotFound(w, r)
			return
		}
		s.logAPIError(r, "get product", err)
		http.Redirect(w, r, shopPath, http.StatusFound)
		return
	}

	s.render(w, "shop_detail", views.ShopDetail(*product, ""))
}
