package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cofoundr_backend/internal/models"
)

// CreateUser inserts a user directly, hashing the password if it is not
// already a bcrypt hash. Defaults to active and verified so the user is
// immediately usable in feed and match flows.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User, rawPassword string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	require.NoError(t, err, "hashing test password must not fail")
	user.PasswordHash = string(hash)

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if user.Role == "" {
		user.Role = models.UserRoleMember
	}
	user.IsVerified = true

	require.NoError(t, db.Create(user).Error, "creating test user must not fail")
}

// CreateAndLoginUser creates an active user and logs them in through the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string) (string, *models.User) {
	user := &models.User{Name: name, Email: email}
	CreateUser(t, ts.DB, user, password)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateMember creates a logged-in member with a unique email.
func CreateMember(t *testing.T, ts *TestServer, name string) (string, *models.User) {
	email := fmt.Sprintf("member_%s_%d@test.com", name, time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, name, email, "password123")
}

// SetProfile fills a user's matching profile through the API: base fields,
// skills and tags in one call for test brevity.
func SetProfile(t *testing.T, ts *TestServer, token string, profile map[string]interface{}, skills, offers, lookingFor []string) {
	if profile != nil {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profile", token, profile)
		require.Equal(t, http.StatusOK, res.StatusCode, "profile update should succeed, got: "+body)
	}
	if skills != nil {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profile/skills", token, map[string]interface{}{"skills": skills})
		require.Equal(t, http.StatusOK, res.StatusCode, "skills update should succeed, got: "+body)
	}
	if offers != nil {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profile/offers", token, map[string]interface{}{"labels": offers})
		require.Equal(t, http.StatusOK, res.StatusCode, "offers update should succeed, got: "+body)
	}
	if lookingFor != nil {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profile/looking-for", token, map[string]interface{}{"labels": lookingFor})
		require.Equal(t, http.StatusOK, res.StatusCode, "looking-for update should succeed, got: "+body)
	}
}

// Like expresses interest from the token holder toward the target user and
// returns the decoded response.
func Like(t *testing.T, ts *TestServer, token, targetID string, message *string) (int, map[string]interface{}) {
	payload := map[string]interface{}{"to_user_id": targetID}
	if message != nil {
		payload["message"] = *message
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/likes", token, payload)

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		decoded = nil
	}
	return res.StatusCode, decoded
}
