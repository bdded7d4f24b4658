package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/config/configs"
)

func TestStatic(t *testing.T) {
	p := NewStatic(map[string]string{"s3cret": "ops@example.com"})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/banners", nil)
	s, err := p.Session(context.Background(), r)
	require.NoError(t, err)
	assert.Nil(t, s)

	r.Header.Set("Authorization", "Bearer wrong")
	s, err = p.Session(context.Background(), r)
	require.NoError(t, err)
	assert.Nil(t, s)

	r.Header.Set("Authorization", "Bearer s3cret")
	s, err = p.Session(context.Background(), r)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "ops@example.com", s.User.Email)
	assert.Equal(t, "ops", s.User.Name)
}

func TestRemote_ForwardsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session-token=abc", r.Header.Get("Cookie"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"u1","name":"Sarah Johnson","email":"sarah@example.com","role":"admin"},"expires":"2999-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	p := NewRemote(srv.URL, srv.Client())
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Cookie", "session-token=abc")

	s, err := p.Session(context.Background(), r)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "sarah@example.com", s.User.Email)
	assert.Equal(t, "admin", s.User.Role)
}

func TestRemote_AnonymousBodies(t *testing.T) {
	for _, body := range []string{"", "{}", "null"} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		p := NewRemote(srv.URL, srv.Client())

		s, err := p.Session(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err, body)
		assert.Nil(t, s, body)
		srv.Close()
	}
}

func TestRemote_Expired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"email":"sarah@example.com"},"expires":"2020-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	p := NewRemote(srv.URL, srv.Client())
	s, err := p.Session(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestRemote_Statuses(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusUnauthorized)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()
	p := NewRemote(srv.URL, srv.Client())

	s, err := p.Session(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Nil(t, s)

	status.Store(http.StatusBadGateway)
	_, err = p.Session(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	p, err := New(configs.Session{Mode: configs.SessionDisabled})
	require.NoError(t, err)
	s, err := p.Session(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "admin", s.User.Role)

	p, err = New(configs.Session{Mode: configs.SessionRemote, URL: "http://auth.local/api/auth/session", Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &Remote{}, p)

	_, err = New(configs.Session{Mode: "oauth"})
	assert.Error(t, err)
}
