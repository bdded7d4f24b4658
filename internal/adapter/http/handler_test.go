package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/adapter/memory"
	"backoffice/internal/adapter/usecase"
	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
	"backoffice/internal/core/port/mocks"
)

var admin = &domain.Session{User: domain.SessionUser{ID: "1", Name: "admin", Email: "admin@example.com", Role: "admin"}}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	repos := memory.NewRepositories()
	repos.Banners = memory.NewStore(
		domain.Banner{ID: "b1", Title: "Summer Sale", Status: domain.BannerActive, Position: domain.PositionHero, Type: domain.BannerPromotional,
			Performance: domain.AdPerformance{Impressions: 1000, Clicks: 50}},
		domain.Banner{ID: "b2", Title: "Winter Promo", Status: domain.BannerDraft, Position: domain.PositionSidebar, Type: domain.BannerSeasonal},
	)
	repos.Products = memory.NewStore(
		domain.Product{ID: "p1", Name: "Desk Lamp", Category: "home", Status: domain.ProductActive, Stock: 4, Price: 2599},
	)
	svc := usecase.NewConsoleUseCase(usecase.Deps{
		Repos: repos,
		Now:   func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
	})

	sessions := mocks.NewMockSessionProvider(t)
	sessions.EXPECT().Session(mock.Anything, mock.Anything).Return(admin, nil).Maybe()

	return NewHandler(svc, sessions, slog.New(slog.DiscardHandler), 0)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRequireSession_Unauthorized(t *testing.T) {
	svc := usecase.NewConsoleUseCase(usecase.Deps{Repos: memory.NewRepositories()})
	sessions := mocks.NewMockSessionProvider(t)
	sessions.EXPECT().Session(mock.Anything, mock.Anything).Return(nil, nil).Once()
	h := NewHandler(svc, sessions, slog.New(slog.DiscardHandler), 0)

	rec := do(t, h.Router(), http.MethodGet, "/api/v1/banners", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}

func TestSession_ReturnsResolvedUser(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodGet, "/api/v1/session", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "admin@example.com", got.User.Email)
}

func TestListBanners_FilterKeepsFullStats(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodGet, "/api/v1/banners?status=draft", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got port.Listing[domain.Banner, port.BannerStats]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "b2", got.Items[0].Record.ID)
	assert.Equal(t, 1, got.Matched)
	assert.Equal(t, 2, got.Stats.Total)
	assert.Equal(t, 1, got.Stats.Active)
	assert.Equal(t, int64(1000), got.Stats.Impressions)
}

func TestListBanners_InvalidPage(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodGet, "/api/v1/banners?limit=-1", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBanner(t *testing.T) {
	h := newTestHandler(t)

	t.Run("found", func(t *testing.T) {
		rec := do(t, h.Router(), http.MethodGet, "/api/v1/banners/b1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var got domain.Banner
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Summer Sale", got.Title)
	})

	t.Run("missing", func(t *testing.T) {
		rec := do(t, h.Router(), http.MethodGet, "/api/v1/banners/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	})
}

func TestSetBannerStatus(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{name: "ok", path: "/api/v1/banners/b2/status", body: `{"status":"active"}`, code: http.StatusOK},
		{name: "unknown status", path: "/api/v1/banners/b2/status", body: `{"status":"archived"}`, code: http.StatusBadRequest},
		{name: "bad json", path: "/api/v1/banners/b2/status", body: `{`, code: http.StatusBadRequest},
		{name: "missing record", path: "/api/v1/banners/zz/status", body: `{"status":"active"}`, code: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			rec := do(t, h.Router(), http.MethodPatch, tt.path, tt.body)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestSetBannerStatus_IsVisibleInListing(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodPatch, "/api/v1/banners/b2/status", `{"status":"active"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h.Router(), http.MethodGet, "/api/v1/banners?status=active", "")
	var got port.Listing[domain.Banner, port.BannerStats]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Matched)
	assert.Equal(t, 2, got.Stats.Active)
}

func TestExportCSV(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodGet, "/api/v1/banners/export.csv?status=active&limit=0", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "banners.csv")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,title,status"))
	assert.True(t, strings.HasPrefix(lines[1], "b1,Summer Sale,active"))
}

func TestSettings(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var s domain.SystemSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, domain.DefaultSettings().General.StoreName, s.General.StoreName)

	s.General.StoreName = "Acme"
	s.General.Currency = "eur"
	body, err := json.Marshal(s)
	require.NoError(t, err)

	rec = do(t, h.Router(), http.MethodPut, "/api/v1/settings", string(body))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, "Acme", s.General.StoreName)
	assert.Equal(t, "EUR", s.General.Currency)

	s.General.StoreName = " "
	body, err = json.Marshal(s)
	require.NoError(t, err)
	rec = do(t, h.Router(), http.MethodPut, "/api/v1/settings", string(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h.Router(), http.MethodPost, "/api/v1/settings/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, domain.DefaultSettings().General.StoreName, s.General.StoreName)
}

func TestOverview(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodGet, "/api/v1/overview", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got port.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Banners.Total)
	assert.Equal(t, 1, got.Products.Total)
}

func TestCatalogEndpoints(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h.Router(), http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products struct {
		Data []domain.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products.Data, 1)
	assert.Equal(t, "p1", products.Data[0].ID)

	rec = do(t, h.Router(), http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["home"]}`, rec.Body.String())
}

func TestResources_MatchMountedPages(t *testing.T) {
	h := newTestHandler(t)
	var keys []string
	for _, p := range pages(h.svc) {
		keys = append(keys, p.key())
	}
	assert.Equal(t, Resources, keys)
}

func TestExportCSV_UnknownResource(t *testing.T) {
	h := newTestHandler(t)
	var buf strings.Builder

	err := ExportCSV(context.Background(), h.svc, "widgets", url.Values{}, &buf)

	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestExportCSV_AppliesQuery(t *testing.T) {
	h := newTestHandler(t)
	var buf strings.Builder

	err := ExportCSV(context.Background(), h.svc, "banners", url.Values{"search": {"winter"}}, &buf)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "b2,"))
}

// brokenBanners fails every read.
type brokenBanners struct{}

func (brokenBanners) List(context.Context) ([]domain.Banner, error) {
	return nil, errors.New("db down")
}

func (brokenBanners) Get(context.Context, string) (*domain.Banner, error) {
	return nil, errors.New("db down")
}

func (brokenBanners) Save(context.Context, domain.Banner) error { return errors.New("db down") }

func TestStorageFailure_IsInternalError(t *testing.T) {
	repos := memory.NewRepositories()
	repos.Banners = brokenBanners{}
	svc := usecase.NewConsoleUseCase(usecase.Deps{Repos: repos})
	sessions := mocks.NewMockSessionProvider(t)
	sessions.EXPECT().Session(mock.Anything, mock.Anything).Return(admin, nil)
	h := NewHandler(svc, sessions, slog.New(slog.DiscardHandler), 0)

	for _, path := range []string{"/api/v1/banners", "/api/v1/banners/export.csv", "/api/v1/banners/b1"} {
		t.Run(path, func(t *testing.T) {
			rec := do(t, h.Router(), http.MethodGet, path, "")

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Empty(t, rec.Header().Get("Content-Disposition"))
			assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
		})
	}
}
