// Package catalogapi reads products and categories from the external
// catalog REST API. Every response is a {"data": [...]} envelope.
package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

// Client implements port.CatalogSource.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ port.CatalogSource = (*Client)(nil)

func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

type envelope[T any] struct {
	Data []T `json:"data"`
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	return get[domain.Product](ctx, c, "/api/products")
}

// Categories accepts both plain names and {id, name} objects.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	raw, err := get[json.RawMessage](ctx, c, "/api/categories")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		var name string
		if err = json.Unmarshal(r, &name); err != nil {
			var obj struct {
				Name string `json:"name"`
			}
			if err = json.Unmarshal(r, &obj); err != nil {
				return nil, fmt.Errorf("catalog: decode category: %w", err)
			}
			name = obj.Name
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func get[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("catalog %s: unexpected status %d", path, resp.StatusCode)
	}
	var env envelope[T]
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("catalog %s: decode: %w", path, err)
	}
	if env.Data == nil {
		env.Data = []T{}
	}
	return env.Data, nil
}
