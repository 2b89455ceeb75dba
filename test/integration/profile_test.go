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

func TestUpdateAndReadProfile(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateMember(t, ts, "alice")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"headline":          "Technical co-founder",
		"bio":               "Ten years of backend work.",
		"location":          "Berlin",
		"availability":      80,
		"equity_preference": "equity",
		"remote_preference": "remote",
		"languages":         []string{"English", "German"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	helpers.SetProfile(t, ts, token, nil,
		[]string{"Go", "PostgreSQL"},
		[]string{"Engineering"},
		[]string{"Sales"},
	)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var profile struct {
		Headline     string `json:"headline"`
		Location     string `json:"location"`
		Availability *int   `json:"availability"`
		Skills       []struct {
			Skill struct {
				Name string `json:"name"`
			} `json:"skill"`
		} `json:"skills"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, "Technical co-founder", profile.Headline)
	assert.Equal(t, "Berlin", profile.Location)
	require.NotNil(t, profile.Availability)
	assert.Equal(t, 80, *profile.Availability)
}

func TestProfileValidationRejectsBadValues(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateMember(t, ts, "bob")

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"equity_preference": "sandwiches",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"availability": 140,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSkillNamesAreNormalized(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateMember(t, ts, "carol")
	helpers.SetProfile(t, ts, token, nil, []string{"  Go ", "Go", "Machine  Learning"}, nil, nil)

	var count int64
	require.NoError(t, ts.DB.Model(&models.UserSkill{}).Where("user_id = ?", user.ID).Count(&count).Error)
	// "  Go " collapses into "Go"; inner whitespace is squeezed too.
	assert.EqualValues(t, 2, count)

	var skill models.Skill
	require.NoError(t, ts.DB.First(&skill, "name = ?", "Machine Learning").Error)
}

func TestViewOtherMemberPublicProfile(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, _ := helpers.CreateMember(t, ts, "ann")
	tokenB, userB := helpers.CreateMember(t, ts, "ben")
	helpers.SetProfile(t, ts, tokenB, map[string]interface{}{"headline": "Designer"}, nil, nil, nil)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users/"+userB.ID, tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var public struct {
		ID       string `json:"id"`
		Headline string `json:"headline"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &public))
	assert.Equal(t, userB.ID, public.ID)
	assert.Equal(t, "Designer", public.Headline)
	assert.Empty(t, public.Email, "public profile must not leak the email address")
}

func TestStartupLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateMember(t, ts, "dora")
	otherToken, _ := helpers.CreateMember(t, ts, "evan")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/startups", token, map[string]interface{}{
		"name":           "Acme Robotics",
		"pitch":          "Robots for small warehouses.",
		"stage":          "mvp",
		"target_markets": []string{"logistics"},
		"team_size":      3,
		"hiring_needs":   []string{"Sales lead"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var startup struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &startup))

	// Another member cannot touch it, and cannot learn that it exists.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/startups/"+startup.ID, otherToken, map[string]interface{}{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/startups/"+startup.ID, token, map[string]interface{}{
		"name":  "Acme Robotics",
		"stage": "beta",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/startups/"+startup.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestDeleteAccountRemovesData(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, userA := helpers.CreateMember(t, ts, "fred")
	tokenB, userB := helpers.CreateMember(t, ts, "gina")

	// Form a match and exchange a message, then delete one side.
	status, _ := helpers.Like(t, ts, tokenA, userB.ID, nil)
	require.Equal(t, http.StatusOK, status)
	status, result := helpers.Like(t, ts, tokenB, userA.ID, nil)
	require.Equal(t, http.StatusCreated, status)
	matchID := result["match"].(map[string]interface{})["id"].(string)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": "hello",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/profile", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	ts.DB.Model(&models.User{}).Where("id = ?", userA.ID).Count(&count)
	assert.EqualValues(t, 0, count)
	ts.DB.Model(&models.Match{}).Where("id = ?", matchID).Count(&count)
	assert.EqualValues(t, 0, count, "matches of a deleted user are erased")
	ts.DB.Model(&models.Message{}).Where("match_id = ?", matchID).Count(&count)
	assert.EqualValues(t, 0, count, "conversation history of a deleted user is erased")
}
