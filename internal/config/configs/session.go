package configs

import (
	"fmt"
	"time"
)

const (
	SessionStatic   = "static"
	SessionRemote   = "remote"
	SessionDisabled = "disabled"
)

// Session configures how console requests are authenticated.
//
// static: Tokens maps bearer tokens to user emails.
// remote: URL is the external session endpoint (e.g. /api/auth/session).
// disabled: every request runs as a local admin. Development only.
type Session struct {
	Mode    string            `env:"MODE" envDefault:"disabled"`
	URL     string            `env:"URL"`
	Tokens  map[string]string `env:"TOKENS"`
	Timeout time.Duration     `env:"TIMEOUT" envDefault:"3s"`
}

func (s Session) Validate() error {
	switch s.Mode {
	case SessionDisabled:
		return nil
	case SessionStatic:
		if len(s.Tokens) == 0 {
			return fmt.Errorf("session: static mode requires SESSION_TOKENS")
		}
		return nil
	case SessionRemote:
		if s.URL == "" {
			return fmt.Errorf("session: remote mode requires SESSION_URL")
		}
		return nil
	}
	return fmt.Errorf("session: unknown mode %q", s.Mode)
}
