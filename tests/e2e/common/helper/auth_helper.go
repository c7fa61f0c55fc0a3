//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"acara-api/internal/handler/dto/request"
	resdto "acara-api/internal/handler/dto/response"
	"acara-api/tests/common/dbtest"
	apptest "acara-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// All fixture users share the password behind dbtest's bcrypt hash.
const fixturePassword = "password123"

// LoginUser authenticates through the real login endpoint and returns
// the access token for use in Authorization headers.
func LoginUser(t *testing.T, router *gin.Engine, identifier string) string {
	t.Helper()

	w := apptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", request.LoginRequest{
		Identifier: identifier,
		Password:   fixturePassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var res resdto.LoginResponse
	require.NoError(t, apptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.AccessToken)

	return res.AccessToken
}

// CreateAndLogin inserts an active user and logs it in, returning the
// user ID and access token.
func CreateAndLogin(t *testing.T, router *gin.Engine, db dbtest.DBLike, username, email, role string) (uuid.UUID, string) {
	t.Helper()

	userID := dbtest.CreateTestUser(t, db, username, email, role)
	token := LoginUser(t, router, email)
	return userID, token
}
