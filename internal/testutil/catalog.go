package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"bitechx.com/catalog/internal/catalog/api"
)

// FakeCatalog is an in-memory double of the remote catalog service. It
// records what the server under test sent so assertions can inspect the
// outgoing side of each screen.
type FakeCatalog struct {
	mu sync.Mutex

	Token       string
	RejectLogin bool
	FailLists   bool

	Products   []api.Product
	Categories []api.Category

	LastAuthHeader   string
	LastProductQuery url.Values
	LastSearchedText string

	CreatedProducts   []api.ProductRequest
	UpdatedProducts   map[string]api.ProductRequest
	DeletedProducts   []string
	CreatedCategories []api.CategoryRequest
	UpdatedCategories map[string]api.CategoryRequest
	DeletedCategories []string

	nextID int
}

// NewFakeCatalog returns an empty fake issuing the given token on login.
func NewFakeCatalog(token string) *FakeCatalog {
	return &FakeCatalog{
		Token:             token,
		UpdatedProducts:   map[string]api.ProductRequest{},
		UpdatedCategories: map[string]api.CategoryRequest{},
		nextID:            1,
	}
}

// Server starts the fake behind an httptest server. The caller owns Close.
func (f *FakeCatalog) Server() *httptest.Server {
	r := chi.NewRouter()

	r.Post("/auth", f.handleLogin)

	r.Get("/products", f.handleListProducts)
	r.Post("/products", f.handleCreateProduct)
	r.Get("/products/{idOrSlug}", f.handleGetProduct)
	r.Put("/products/{idOrSlug}", f.handleUpdateProduct)
	r.Delete("/products/{idOrSlug}", f.handleDeleteProduct)

	r.Get("/categories", f.handleListCategories)
	r.Get("/categories/search", f.handleSearchCategories)
	r.Post("/categories", f.handleCreateCategory)
	r.Get("/categories/{id}", f.handleGetCategory)
	r.Put("/categories/{id}", f.handleUpdateCategory)
	r.Delete("/categories/{id}", f.handleDeleteCategory)

	return httptest.NewServer(r)
}

// SeedProducts fills the product table with n generated rows, cycling
// through the given categories.
func (f *FakeCatalog) SeedProducts(n int, categories ...api.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("p-%d", f.nextID)
		f.nextID++
		p := api.Product{
			ID:     id,
			Name:   "Product " + id,
			Slug:   "product-" + id,
			Price:  float64(10 + i),
			Images: []string{"https://i.imgur.com/" + id + ".jpg"},
		}
		if len(categories) > 0 {
			p.Category = categories[i%len(categories)]
		}
		f.Products = append(f.Products, p)
	}
}

func (f *FakeCatalog) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if f.RejectLogin {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	writeJSON(w, api.AuthResponse{Token: f.Token})
}

func (f *FakeCatalog) handleListProducts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.LastAuthHeader = r.Header.Get("Authorization")
	f.LastProductQuery = r.URL.Query()
	fail := f.FailLists
	items := append([]api.Product(nil), f.Products...)
	f.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	if term := q.Get("search"); term != "" {
		items = filterProducts(items, func(p api.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), strings.ToLower(term))
		})
	}
	if id := q.Get("categoryId"); id != "" {
		items = filterProducts(items, func(p api.Product) bool {
			return p.Category.ID == id
		})
	}
	writeJSON(w, window(items, q))
}

func (f *FakeCatalog) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "idOrSlug")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.Products {
		if p.ID == key || p.Slug == key {
			writeJSON(w, p)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *FakeCatalog) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var body api.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.LastAuthHeader = r.Header.Get("Authorization")
	f.CreatedProducts = append(f.CreatedProducts, body)
	id := fmt.Sprintf("p-%d", f.nextID)
	f.nextID++
	created := api.Product{
		ID:          id,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Images:      body.Images,
		Slug:        strings.ToLower(strings.ReplaceAll(body.Name, " ", "-")),
		Category:    api.Category{ID: body.CategoryID},
	}
	f.Products = append(f.Products, created)
	f.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, created)
}

func (f *FakeCatalog) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "idOrSlug")
	var body api.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.Products {
		if p.ID == id {
			f.UpdatedProducts[id] = body
			p.Name = body.Name
			p.Description = body.Description
			p.Price = body.Price
			p.Images = body.Images
			p.Category = api.Category{ID: body.CategoryID}
			f.Products[i] = p
			writeJSON(w, p)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *FakeCatalog) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "idOrSlug")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.Products {
		if p.ID == id {
			f.Products = append(f.Products[:i], f.Products[i+1:]...)
			f.DeletedProducts = append(f.DeletedProducts, id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *FakeCatalog) handleListCategories(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	fail := f.FailLists
	items := append([]api.Category(nil), f.Categories...)
	f.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, window(items, r.URL.Query()))
}

func (f *FakeCatalog) handleSearchCategories(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchedText")
	f.mu.Lock()
	f.LastSearchedText = term
	items := append([]api.Category(nil), f.Categories...)
	f.mu.Unlock()

	matched := make([]api.Category, 0, len(items))
	for _, c := range items {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) {
			matched = append(matched, c)
		}
	}
	writeJSON(w, matched)
}

func (f *FakeCatalog) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var body api.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.CreatedCategories = append(f.CreatedCategories, body)
	id := fmt.Sprintf("c-%d", f.nextID)
	f.nextID++
	created := api.Category{
		ID:          id,
		Name:        body.Name,
		Description: body.Description,
		Image:       body.Image,
	}
	f.Categories = append(f.Categories, created)
	f.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, created)
}

func (f *FakeCatalog) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.Categories {
		if c.ID == id {
			writeJSON(w, c)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *FakeCatalog) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var body api.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.Categories {
		if c.ID == id {
			f.UpdatedCategories[id] = body
			c.Name = body.Name
			c.Description = body.Description
			c.Image = body.Image
			f.Categories[i] = c
			writeJSON(w, c)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *FakeCatalog) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.Categories {
		if c.ID == id {
			f.Categories = append(f.Categories[:i], f.Categories[i+1:]...)
			f.DeletedCategories = append(f.DeletedCategories, id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func filterProducts(items []api.Product, keep func(api.Product) bool) []api.Product {
	out := items[:0]
	for _, p := range items {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func window[T any](items []T, q url.Values) []T {
	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
