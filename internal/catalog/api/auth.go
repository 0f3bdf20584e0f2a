package api

import (
	"context"
	"net/http"
	"strings"
)

type loginRequest struct {
	Email string `json:"email"`
}

// Login exchanges an allow-listed email for a bearer token. There is no
// password in this flow; the service authenticates by email alone.
func (c *Client) Login(ctx context.Context, email string) (*AuthResponse, error) {
	body := loginRequest{Email: strings.TrimSpace(email)}
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth", body, "")
	if err != nil {
		return nil, err
	}
	var payload AuthResponse
	if err := c.decodeInto(req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
