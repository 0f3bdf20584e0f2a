package api

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// ListCategories fetches a page of categories.
func (c *Client) ListCategories(ctx context.Context, token string, offset, limit int) ([]Category, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))

	req, err := c.newRequest(ctx, http.MethodGet, "/categories?"+params.Encode(), nil, token)
	if err != nil {
		return nil, err
	}
	var payload []Category
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SearchCategories runs a free-text category search. The endpoint takes no
// pagination parameters.
func (c *Client) SearchCategories(ctx context.Context, token, text string) ([]Category, error) {
	params := url.Values{}
	params.Set("searchedText", text)

	req, err := c.newRequest(ctx, http.MethodGet, "/categories/search?"+params.Encode(), nil, token)
	if err != nil {
		return nil, err
	}
	var payload []Category
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetCategory fetches a single category by id.
func (c *Client) GetCategory(ctx context.Context, token, id string) (*Category, error) {
	endpoint := path.Join("/categories", url.PathEscape(strings.TrimSpace(id)))
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return nil, err
	}
	var payload Category
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// CreateCategory creates a category and returns the stored entity.
func (c *Client) CreateCategory(ctx context.Context, token string, body CategoryRequest) (*Category, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/categories", body, token)
	if err != nil {
		return nil, err
	}
	var payload Category
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateCategory replaces a category's fields and returns the stored entity.
func (c *Client) UpdateCategory(ctx context.Context, token, id string, body CategoryRequest) (*Category, error) {
	endpoint := path.Join("/categories", url.PathEscape(strings.TrimSpace(id)))
	req, err := c.newJSONRequest(ctx, http.MethodPut, endpoint, body, token)
	if err != nil {
		return nil, err
	}
	var payload Category
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DeleteCategory removes a category. Cascading effects on dependent products
// are the service's concern, not enforced here.
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	endpoint := path.Join("/categories", url.PathEscape(strings.TrimSpace(id)))
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return err
	}
	return c.decodeInto(req, nil)
}
