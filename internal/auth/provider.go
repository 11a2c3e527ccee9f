package auth

import (
	"context"
	"time"

	"github.com/deespora/backoffice/internal/config"
)

type AuthResponse struct {
	Token     string
	Email     string
	ExpiresAt time.Time
}

// Claims are what a valid gateway token proves
type Claims struct {
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// Provider checks admin credentials and issues and validates the tokens the
// gateway accepts
type Provider interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

func NewProvider(cfg *config.Configuration) (Provider, error) {
	return NewEnvAuth(cfg)
}
