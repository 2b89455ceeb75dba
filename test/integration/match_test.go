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

// formMatch wires a mutual like between two fresh members and returns both
// tokens, both users and the match id.
func formMatch(t *testing.T, ts *helpers.TestServer) (string, string, *models.User, *models.User, string) {
	tokenA, userA := helpers.CreateMember(t, ts, "left")
	tokenB, userB := helpers.CreateMember(t, ts, "right")

	status, _ := helpers.Like(t, ts, tokenA, userB.ID, nil)
	require.Equal(t, http.StatusOK, status)
	status, result := helpers.Like(t, ts, tokenB, userA.ID, nil)
	require.Equal(t, http.StatusCreated, status)

	matchID := result["match"].(map[string]interface{})["id"].(string)
	return tokenA, tokenB, userA, userB, matchID
}

func TestListMatchesShowsPartnerAndLikeMessage(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, userA := helpers.CreateMember(t, ts, "ada")
	tokenB, userB := helpers.CreateMember(t, ts, "ben")

	note := "Your MVP looks great"
	status, _ := helpers.Like(t, ts, tokenA, userB.ID, &note)
	require.Equal(t, http.StatusOK, status)
	status, _ = helpers.Like(t, ts, tokenB, userA.ID, nil)
	require.Equal(t, http.StatusCreated, status)

	// B sees A as partner together with the note A attached.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/matches", tokenB, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list struct {
		Matches []struct {
			ID      string `json:"id"`
			Partner struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"partner"`
			LikeMessage *string `json:"like_message"`
		} `json:"matches"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, userA.ID, list.Matches[0].Partner.ID)
	require.NotNil(t, list.Matches[0].LikeMessage)
	assert.Equal(t, note, *list.Matches[0].LikeMessage)

	// A's view points back at B, without a note.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/matches", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, userB.ID, list.Matches[0].Partner.ID)
	assert.Nil(t, list.Matches[0].LikeMessage)
}

func TestUnmatchHidesMatchFromBothSides(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, tokenB, _, _, matchID := formMatch(t, ts)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/matches/"+matchID, tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	for _, token := range []string{tokenA, tokenB} {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/matches", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var list struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &list))
		assert.Equal(t, 0, list.Total)
	}

	// Repeat unmatch is a no-op, not an error.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/matches/"+matchID, tokenA, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUnmatchByOutsiderLooksLikeMissingMatch(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, _, _, _, matchID := formMatch(t, ts)
	outsiderToken, _ := helpers.CreateMember(t, ts, "outsider")

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/matches/"+matchID, outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// The match is untouched.
	var stored models.Match
	require.NoError(t, ts.DB.First(&stored, "id = ?", matchID).Error)
	assert.True(t, stored.Active)
}

func TestDissolvedPairNeverReforms(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, tokenB, userA, userB, matchID := formMatch(t, ts)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/matches/"+matchID, tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Both directed edges still exist, so fresh likes conflict, and the
	// old match row stays inactive.
	status, _ := helpers.Like(t, ts, tokenA, userB.ID, nil)
	assert.Equal(t, http.StatusConflict, status)
	status, _ = helpers.Like(t, ts, tokenB, userA.ID, nil)
	assert.Equal(t, http.StatusConflict, status)

	var count int64
	ts.DB.Model(&models.Match{}).Count(&count)
	assert.EqualValues(t, 1, count)

	var stored models.Match
	require.NoError(t, ts.DB.First(&stored, "id = ?", matchID).Error)
	assert.False(t, stored.Active)
}
