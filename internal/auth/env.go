package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/deespora/backoffice/internal/config"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/types"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "backoffice"

// envAuth authenticates the single admin configured through the environment
type envAuth struct {
	email    string
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewEnvAuth fails when the admin email or password is not configured
func NewEnvAuth(cfg *config.Configuration) (*envAuth, error) {
	email := strings.TrimSpace(cfg.Auth.AdminEmail)
	if email == "" || cfg.Auth.AdminPassword == "" {
		return nil, ierr.NewError("admin credentials are not configured").
			WithHint("Set BACKOFFICE_AUTH_ADMIN_EMAIL and BACKOFFICE_AUTH_ADMIN_PASSWORD").
			Mark(ierr.ErrSystem)
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &envAuth{
		email:    email,
		password: cfg.Auth.AdminPassword,
		secret:   signingKey(cfg.Auth),
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// signingKey uses the configured secret, or derives one from the admin
// password so that every instance of the function signs with the same key
func signingKey(cfg config.AuthConfig) []byte {
	if cfg.Secret != "" {
		return []byte(cfg.Secret)
	}
	sum := sha256.Sum256([]byte(tokenIssuer + ":" + cfg.AdminEmail + ":" + cfg.AdminPassword))
	return sum[:]
}

func (a *envAuth) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if !a.matches(email, password) {
		return nil, ierr.NewError("invalid credentials").
			WithHint("Invalid credentials").
			Mark(ierr.ErrUnauthorized)
	}

	expiresAt := a.now().Add(a.ttl)
	token, err := a.generateToken(email, expiresAt)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}

	return &AuthResponse{
		Token:     token,
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}

// matches compares exactly. The password may be configured as a bcrypt hash.
func (a *envAuth) matches(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) == 1

	var passwordOK bool
	if isBcryptHash(a.password) {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(a.password), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	}
	return emailOK && passwordOK
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}

func (a *envAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	claims := &jwt.RegisteredClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrUnauthorized)
		}
		return a.secret, nil
	})

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Your session has expired. Please log in again").
			Mark(ierr.ErrUnauthorized)
	}

	if !parsedToken.Valid || claims.Subject == "" || claims.Issuer != tokenIssuer {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token").
			Mark(ierr.ErrUnauthorized)
	}

	out := &Claims{Email: claims.Subject, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (a *envAuth) generateToken(email string, expiresAt time.Time) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   email,
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TOKEN),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}
