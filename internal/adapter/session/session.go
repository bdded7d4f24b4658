// Package session resolves the console user of a request. The console
// does no authentication itself; it trusts an upstream session source.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/config/configs"
	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

// New builds the provider selected by cfg.Mode.
func New(cfg configs.Session) (port.SessionProvider, error) {
	switch cfg.Mode {
	case configs.SessionStatic:
		return NewStatic(cfg.Tokens), nil
	case configs.SessionRemote:
		return NewRemote(cfg.URL, &http.Client{Timeout: cfg.Timeout}), nil
	case configs.SessionDisabled:
		return Disabled{}, nil
	}
	return nil, fmt.Errorf("session: unknown mode %q", cfg.Mode)
}

// Static accepts bearer tokens from a fixed token -> email table.
type Static struct {
	tokens map[string]string
}

func NewStatic(tokens map[string]string) *Static {
	return &Static{tokens: tokens}
}

func (s *Static) Session(_ context.Context, r *http.Request) (*domain.Session, error) {
	token, ok := bearer(r)
	if !ok {
		return nil, nil
	}
	email, ok := s.tokens[token]
	if !ok {
		return nil, nil
	}
	return &domain.Session{User: domain.SessionUser{
		ID:    email,
		Name:  strings.SplitN(email, "@", 2)[0],
		Email: email,
		Role:  "admin",
	}}, nil
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

// Remote asks an external session endpoint (for example a NextAuth
// /api/auth/session route) about the caller, forwarding its cookies and
// authorization header.
type Remote struct {
	url    string
	client *http.Client
	now    func() time.Time
}

func NewRemote(url string, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{url: url, client: client, now: time.Now}
}

func (s *Remote) Session(ctx context.Context, r *http.Request) (*domain.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c := r.Header.Get("Cookie"); c != "" {
		req.Header.Set("Cookie", c)
	}
	if a := r.Header.Get("Authorization"); a != "" {
		req.Header.Set("Authorization", a)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session endpoint: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("session endpoint: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("session endpoint: %w", err)
	}
	// an anonymous caller gets an empty body, "null" or "{}"
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	var sess *domain.Session
	if err = json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("session endpoint: decode: %w", err)
	}
	if sess == nil || sess.User.Email == "" {
		return nil, nil
	}
	if !sess.Expires.IsZero() && sess.Expires.Before(s.now()) {
		return nil, nil
	}
	return sess, nil
}

// Disabled treats every request as a local administrator.
type Disabled struct{}

var localAdmin = domain.Session{User: domain.SessionUser{
	ID:    "local",
	Name:  "Local Admin",
	Email: "admin@localhost",
	Role:  "admin",
}}

func (Disabled) Session(context.Context, *http.Request) (*domain.Session, error) {
	s := localAdmin
	return &s, nil
}
