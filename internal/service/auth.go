package service

import (
	"context"

	"github.com/deespora/backoffice/internal/api/dto"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/session"
	"github.com/deespora/backoffice/internal/types"
)

// AuthService logs the operator in against the backend and keeps the
// resulting session
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*session.Session, error)
	Logout(ctx context.Context) error
	// Current returns the saved session, or nil when logged out
	Current(ctx context.Context) (*session.Session, error)
	// RequireSession fails with ErrUnauthorized when nobody is logged in
	RequireSession(ctx context.Context) (*session.Session, error)
	// Authorize returns ctx carrying the saved session's token and email
	Authorize(ctx context.Context) (context.Context, error)
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*session.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.Backend.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, ierr.NewError("login response carried no token").
			WithHint("Login failed. Please try again.").
			Mark(ierr.ErrUnauthorized)
	}

	sess := &session.Session{
		Token: result.Token,
		Email: req.Email,
	}
	if result.User != nil {
		sess.User = result.User.Raw
		if result.User.Email != "" {
			sess.Email = result.User.Email
		}
	}

	if err := s.Sessions.Save(sess); err != nil {
		return nil, err
	}
	s.Logger.WithContext(ctx).Infow("logged in", "email", sess.Email)
	return sess, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.Sessions.Clear(); err != nil {
		return err
	}
	s.Logger.WithContext(ctx).Infow("logged out")
	return nil
}

func (s *authService) Current(ctx context.Context) (*session.Session, error) {
	return s.Sessions.Load()
}

func (s *authService) RequireSession(ctx context.Context) (*session.Session, error) {
	sess, err := s.Sessions.Load()
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Token == "" {
		return nil, ierr.NewError("no saved session").
			WithHint("You are not logged in. Run 'backoffice login' first").
			Mark(ierr.ErrUnauthorized)
	}
	return sess, nil
}

func (s *authService) Authorize(ctx context.Context) (context.Context, error) {
	sess, err := s.RequireSession(ctx)
	if err != nil {
		return ctx, err
	}
	ctx = types.SetBackendToken(ctx, sess.Token)
	ctx = types.SetAdminEmail(ctx, sess.Email)
	return ctx, nil
}
