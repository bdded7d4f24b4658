package usecase

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) GetSettings(ctx context.Context) (*domain.SystemSettings, error) {
	s, err := u.repos.Settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if s == nil {
		def := domain.DefaultSettings()
		return &def, nil
	}
	return s, nil
}

func (u *ConsoleUseCase) UpdateSettings(ctx context.Context, s domain.SystemSettings) (*domain.SystemSettings, error) {
	if err := validateSettings(s); err != nil {
		return nil, err
	}
	s.General.Currency = strings.ToUpper(s.General.Currency)
	s.UpdatedAt = u.now().UTC()
	if err := u.repos.Settings.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return &s, nil
}

func (u *ConsoleUseCase) ResetSettings(ctx context.Context) (*domain.SystemSettings, error) {
	return u.UpdateSettings(ctx, domain.DefaultSettings())
}

func validateSettings(s domain.SystemSettings) error {
	switch {
	case strings.TrimSpace(s.General.StoreName) == "":
		return fmt.Errorf("%w: store name is required", port.ErrInvalidSettings)
	case !isCurrencyCode(s.General.Currency):
		return fmt.Errorf("%w: currency must be a 3-letter code", port.ErrInvalidSettings)
	case s.Security.SessionTimeoutMinutes <= 0:
		return fmt.Errorf("%w: session timeout must be positive", port.ErrInvalidSettings)
	case s.Security.PasswordMinLength < 0:
		return fmt.Errorf("%w: password length cannot be negative", port.ErrInvalidSettings)
	case s.Shipping.FreeShippingThreshold < 0:
		return fmt.Errorf("%w: free shipping threshold cannot be negative", port.ErrInvalidSettings)
	}
	return nil
}

// isCurrencyCode reports whether c is three ASCII letters, in any case.
func isCurrencyCode(c string) bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if !('a' <= c[i] && c[i] <= 'z' || 'A' <= c[i] && c[i] <= 'Z') {
			return false
		}
	}
	return true
}
