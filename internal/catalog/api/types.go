package api

import "time"

// Category is a catalog category as returned by the remote service.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product is a catalog product. The category comes embedded, not just as an
// id, and Slug is the URL-safe human-readable identifier distinct from ID.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Images      []string  `json:"images"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthResponse is the payload of a successful login call.
type AuthResponse struct {
	Token string `json:"token"`
}

// ProductRequest is the create/update body for products.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	CategoryID  string   `json:"categoryId"`
	Images      []string `json:"images"`
}

// CategoryRequest is the create/update body for categories.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ProductQuery selects a page of products. Search and CategoryID are never
// both set by callers; the list screens enforce that structurally.
type ProductQuery struct {
	Offset     int
	Limit      int
	Search     string
	CategoryID string
}
