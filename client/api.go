package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MauItu/inventario-alimentos/entity"
)

// API is the remote access client. It translates the logical operations
// onto the HTTP resource surface, decodes the response envelope once and
// normalizes every failure into *Error. It never retries; retry policy,
// if any, belongs to the caller.
type API struct {
	baseURL string
	client  *http.Client
}

// NewAPI creates a remote access client for the given server base URL.
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// envelope mirrors entity.Envelope with the payload left raw so each
// operation can decode its own data shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// do issues one request and decodes the envelope into out (when non-nil).
func (a *API) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("build request: %v", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("decode response: %v", err)}
	}

	// The HTTP status alone is not trusted; the envelope's success flag
	// decides the outcome.
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("server rejected request (status %d)", resp.StatusCode)
		}
		return &Error{Kind: kindForStatus(resp.StatusCode), Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: KindTransport, Message: fmt.Sprintf("decode payload: %v", err)}
		}
	}
	return nil
}

// FindIdentity looks an identity up by email.
func (a *API) FindIdentity(ctx context.Context, email string) (*entity.Identity, error) {
	var identity entity.Identity
	if err := a.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(email), nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// CreateIdentity registers a new identity. A duplicate email is a
// Conflict failure.
func (a *API) CreateIdentity(ctx context.Context, email string) (*entity.Identity, error) {
	var identity entity.Identity
	req := entity.CreateUserRequest{Email: email}
	if err := a.do(ctx, http.MethodPost, "/api/users", req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// ListItems fetches the full item list owned by email.
func (a *API) ListItems(ctx context.Context, email string) ([]entity.Item, error) {
	var items []entity.Item
	path := "/api/products?email=" + url.QueryEscape(email)
	if err := a.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem stores an item for email and returns the canonical stored
// form with its server-assigned id.
func (a *API) CreateItem(ctx context.Context, item *entity.Item, email string) (*entity.Item, error) {
	var created entity.Item
	req := entity.CreateItemRequest{Item: *item, Email: email}
	if err := a.do(ctx, http.MethodPost, "/api/products", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteItem removes the item scoped by (id, email) jointly.
func (a *API) DeleteItem(ctx context.Context, id, email string) error {
	path := "/api/products?id=" + url.QueryEscape(id) + "&email=" + url.QueryEscape(email)
	return a.do(ctx, http.MethodDelete, path, nil, nil)
}

// GenerateRecipes requests a weekly recipe plan for email's pantry.
func (a *API) GenerateRecipes(ctx context.Context, email string) (*entity.RecipeResult, error) {
	var result entity.RecipeResult
	req := entity.RecipeRequest{Email: email}
	if err := a.do(ctx, http.MethodPost, "/api/recipes", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
