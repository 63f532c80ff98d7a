package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yeremiapane/restaurant-order-panel/models"
)

// Auth surface. The backend sets an HTTP-only `jwt` cookie on login; the
// client's cookie jar keeps it and sends it on admin and image calls.

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

type VerifyResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, c.AuthURL+"/login", creds, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, c.AuthURL+"/logout", nil, nil)
}

// Verify never fails hard: any error means "not authenticated", matching
// how the panel treats an expired or missing session.
func (c *Client) Verify(ctx context.Context) VerifyResponse {
	var out VerifyResponse
	if err := c.do(ctx, http.MethodGet, c.AuthURL+"/verify", nil, &out); err != nil {
		return VerifyResponse{Authenticated: false}
	}
	return out
}

// SessionCookie exposes the current jwt cookie so the panel can re-issue
// it on its own domain after a login proxy call.
func (c *Client) SessionCookie() *http.Cookie {
	u, err := url.Parse(c.AuthURL)
	if err != nil {
		return nil
	}
	for _, ck := range c.httpClient.Jar.Cookies(u) {
		if ck.Name == "jwt" {
			return ck
		}
	}
	return nil
}
