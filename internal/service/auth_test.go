package service

import (
	"net/http"
	"testing"

	"github.com/deespora/backoffice/internal/api/dto"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/session"
	"github.com/deespora/backoffice/internal/types"
	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	BaseServiceSuite
	auth AuthService
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceSuite.SetupTest()
	s.auth = NewAuthService(s.params)
}

func (s *AuthServiceSuite) TestLoginPersistsSession() {
	s.http.RegisterJSON(http.MethodPost, "/auth/login", http.StatusOK,
		`{"success":true,"message":{"token":"jwt-1","user":{"_id":"1","email":"Admin@Example.com","role":"admin"}}}`)

	sess, err := s.auth.Login(s.ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "secret"})
	s.Require().NoError(err)
	s.Equal("jwt-1", sess.Token)
	s.Equal("Admin@Example.com", sess.Email)
	s.Equal("admin", sess.User["role"])

	saved, err := s.auth.Current(s.ctx)
	s.Require().NoError(err)
	s.Equal(sess.Token, saved.Token)

	ctx, err := s.auth.Authorize(s.ctx)
	s.Require().NoError(err)
	s.Equal("jwt-1", types.GetBackendToken(ctx))
}

func (s *AuthServiceSuite) TestLoginFailureKeepsNoSession() {
	s.http.RegisterJSON(http.MethodPost, "/auth/login", http.StatusUnauthorized, `{"success":false,"message":"Invalid email or password"}`)

	_, err := s.auth.Login(s.ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "nope"})
	s.True(ierr.IsUnauthorized(err))

	sess, err := s.auth.Current(s.ctx)
	s.NoError(err)
	s.Nil(sess)
}

func (s *AuthServiceSuite) TestRequireSession() {
	_, err := s.auth.RequireSession(s.ctx)
	s.True(ierr.IsUnauthorized(err))

	s.Require().NoError(s.sessions.Save(&session.Session{Token: "tok", Email: "admin@example.com"}))
	sess, err := s.auth.RequireSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("tok", sess.Token)

	s.Require().NoError(s.auth.Logout(s.ctx))
	_, err = s.auth.RequireSession(s.ctx)
	s.True(ierr.IsUnauthorized(err))
}
