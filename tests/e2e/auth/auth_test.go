//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"acara-api/internal/handler/dto/request"
	resdto "acara-api/internal/handler/dto/response"
	apptest "acara-api/tests/common/httptest"
	"acara-api/tests/e2e"
	"acara-api/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) register(username, email string) resdto.RegisterResponse {
	w := apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", request.RegisterRequest{
		FullName:        "Carol Tester",
		Username:        username,
		Email:           email,
		Password:        "password123",
		PasswordConfirm: "password123",
	}, "")
	require.Equal(s.T(), http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	var res resdto.RegisterResponse
	require.NoError(s.T(), apptest.DecodeResponseBody(s.T(), w.Body, &res))
	require.NotEmpty(s.T(), res.ActivationCode)
	return res
}

func (s *AuthSuite) TestRegistrationFlow() {
	s.Run("register, activate, then log in and fetch profile", func() {
		reg := s.register("carol", "carol@example.com")

		// Accounts stay locked until the activation code is redeemed.
		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login", request.LoginRequest{
			Identifier: "carol@example.com",
			Password:   "password123",
		}, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "not activated")

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/activation", request.ActivateRequest{
			Code: reg.ActivationCode,
		}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, "activation failed: %s", w.Body.String())

		token := helper.LoginUser(s.T(), s.Router, "carol@example.com")

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, token)
		var profile resdto.UserResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &profile)
		s.Equal("carol", profile.Username)
		s.Equal("carol@example.com", profile.Email)
		s.Equal("member", profile.Role)
		s.True(profile.IsActive)
	})

	s.Run("activation codes are single use", func() {
		reg := s.register("dave", "dave@example.com")

		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/activation", request.ActivateRequest{
			Code: reg.ActivationCode,
		}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/activation", request.ActivateRequest{
			Code: reg.ActivationCode,
		}, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "activation")
	})

	s.Run("duplicate email is rejected", func() {
		s.register("erin", "erin@example.com")

		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", request.RegisterRequest{
			FullName:        "Erin Clone",
			Username:        "erin2",
			Email:           "erin@example.com",
			Password:        "password123",
			PasswordConfirm: "password123",
		}, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already taken")
	})
}

func (s *AuthSuite) TestTokenRefresh() {
	s.Run("refresh token yields a fresh pair", func() {
		reg := s.register("frank", "frank@example.com")
		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/activation", request.ActivateRequest{
			Code: reg.ActivationCode,
		}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login", request.LoginRequest{
			Identifier: "frank",
			Password:   "password123",
		}, "")
		var login resdto.LoginResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &login)

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/refresh", request.RefreshTokenRequest{
			RefreshToken: login.RefreshToken,
		}, "")
		var pair resdto.TokenPairResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &pair)
		s.NotEmpty(pair.AccessToken)
		s.NotEmpty(pair.RefreshToken)

		// The refreshed access token must authenticate requests.
		w = apptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, pair.AccessToken)
		var profile resdto.UserResponse
		apptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &profile)
		s.Equal("frank", profile.Username)
	})

	s.Run("access token is rejected as refresh token", func() {
		reg := s.register("grace", "grace@example.com")
		w := apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/activation", request.ActivateRequest{
			Code: reg.ActivationCode,
		}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		token := helper.LoginUser(s.T(), s.Router, "grace@example.com")

		w = apptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/refresh", request.RefreshTokenRequest{
			RefreshToken: token,
		}, "")
		apptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}
