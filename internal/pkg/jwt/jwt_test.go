//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"acara-api/internal/domain/user"
	"acara-api/internal/pkg/clock"
	"acara-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type JWTServiceTestSuite struct {
	suite.Suite
	clock   *clock.MockClock
	service *jwt.Service
	userID  uuid.UUID
}

func TestJWTServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JWTServiceTestSuite))
}

func (s *JWTServiceTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour, s.clock)
	s.userID = uuid.New()
}

func (s *JWTServiceTestSuite) TestAccessTokenRoundTrip() {
	token, err := s.service.GenerateAccessToken(s.userID, user.RoleMember)
	s.Require().NoError(err)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(s.userID, claims.UserID)
	s.Equal(user.RoleMember.String(), claims.Role)
	s.Equal(jwt.TokenTypeAccess, claims.TokenType)
}

func (s *JWTServiceTestSuite) TestRefreshTokenCarriesType() {
	token, err := s.service.GenerateRefreshToken(s.userID, user.RoleAdmin)
	s.Require().NoError(err)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(jwt.TokenTypeRefresh, claims.TokenType)
	s.Equal(user.RoleAdmin.String(), claims.Role)
}

func (s *JWTServiceTestSuite) TestExpiredTokenRejected() {
	s.clock.Set(time.Now().Add(-time.Hour))
	token, err := s.service.GenerateAccessToken(s.userID, user.RoleMember)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.ErrorIs(err, jwt.ErrExpiredToken)
}

func (s *JWTServiceTestSuite) TestTamperedSignatureRejected() {
	token, err := s.service.GenerateAccessToken(s.userID, user.RoleMember)
	s.Require().NoError(err)

	other := jwt.NewService("other-secret", 15*time.Minute, 168*time.Hour, s.clock)
	_, err = other.ValidateToken(token)
	s.ErrorIs(err, jwt.ErrInvalidToken)
}

func (s *JWTServiceTestSuite) TestGarbageTokenRejected() {
	_, err := s.service.ValidateToken("not.a.token")
	s.ErrorIs(err, jwt.ErrInvalidToken)
}
