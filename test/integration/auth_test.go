package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cofoundr_backend/internal/models"
	"cofoundr_backend/test/helpers"
)

func TestRegisterAndVerify(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Ada",
		"email":    "ada@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "ada@test.com").Error)
	assert.Equal(t, models.UserStatusPending, user.Status)
	assert.False(t, user.IsVerified)
	require.NotEmpty(t, user.VerificationToken)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/verify?token="+user.VerificationToken, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	require.NoError(t, ts.DB.First(&user, "email = ?", "ada@test.com").Error)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerificationToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	payload := map[string]interface{}{
		"name":     "Ada",
		"email":    "dup@test.com",
		"password": "password123",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", payload)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestVerifyWithBogusToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/verify?token=not-a-real-token", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateUser(t, ts.DB, &models.User{Name: "Bob", Email: "bob@test.com"}, "password123")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "bob@test.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLoginSuspendedUser(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	user := &models.User{Name: "Eve", Email: "eve@test.com", Status: models.UserStatusSuspended}
	helpers.CreateUser(t, ts.DB, user, "password123")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "eve@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRefreshRotation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateUser(t, ts.DB, &models.User{Name: "Cora", Email: "cora@test.com"}, "password123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "cora@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var login struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.RefreshToken)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var refreshed struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken, "refresh must rotate the token")

	// The consumed token is dead.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateUser(t, ts.DB, &models.User{Name: "Dan", Email: "dan@test.com"}, "password123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "dan@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
