package catalogapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProducts(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/api/products": `{"data":[{"id":"PRD-1","name":"Lamp","category":"home","status":"active","price":4999,"stock":3}]}`,
	})
	c := New(srv.URL+"/", srv.Client())

	ps, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "PRD-1", ps[0].ID)
	assert.Equal(t, int64(4999), ps[0].Price)
}

func TestCategories_StringsAndObjects(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/api/categories": `{"data":["home",{"id":2,"name":"garden"},{"id":3}]}`,
	})
	c := New(srv.URL, srv.Client())

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "garden"}, cats)
}

func TestEmptyEnvelope(t *testing.T) {
	srv := newServer(t, map[string]string{"/api/products": `{}`})
	c := New(srv.URL, srv.Client())

	ps, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ps)
	assert.Empty(t, ps)
}

func TestUpstreamError(t *testing.T) {
	srv := newServer(t, nil)
	c := New(srv.URL, srv.Client())

	_, err := c.Categories(context.Background())
	assert.ErrorContains(t, err, "unexpected status 404")
}
