package api

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// ListProducts fetches a page of products. Search and category filters ride
// along as query parameters when set.
func (c *Client) ListProducts(ctx context.Context, token string, q ProductQuery) ([]Product, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(q.Offset))
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.CategoryID != "" {
		params.Set("categoryId", q.CategoryID)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/products?"+params.Encode(), nil, token)
	if err != nil {
		return nil, err
	}
	var payload []Product
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetProduct fetches a single product by id or slug.
func (c *Client) GetProduct(ctx context.Context, token, idOrSlug string) (*Product, error) {
	endpoint := path.Join("/products", url.PathEscape(strings.TrimSpace(idOrSlug)))
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return nil, err
	}
	var payload Product
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CreateProduct creates a product and returns the stored entity.
func (c *Client) CreateProduct(ctx context.Context, token string, body ProductRequest) (*Product, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/products", body, token)
	if err != nil {
		return nil, err
	}
	var payload Product
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateProduct replaces a product's fields and returns the stored entity.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, body ProductRequest) (*Product, error) {
	endpoint := path.Join("/products", url.PathEscape(strings.TrimSpace(id)))
	req, err := c.newJSONRequest(ctx, http.MethodPut, endpoint, body, token)
	if err != nil {
		return nil, err
	}
	var payload Product
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	endpoint := path.Join("/products", url.PathEscape(strings.TrimSpace(id)))
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return err
	}
	return c.decodeInto(req, nil)
}
