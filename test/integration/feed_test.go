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

type feedResponse struct {
	Candidates []struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		MatchScore   int      `json:"match_score"`
		MatchReasons []string `json:"match_reasons"`
	} `json:"candidates"`
	Total int `json:"total"`
}

func getFeed(t *testing.T, ts *helpers.TestServer, token string) feedResponse {
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/recommendations", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var feed feedResponse
	require.NoError(t, json.Unmarshal([]byte(body), &feed))
	return feed
}

func TestFeedExcludesSelfAndLiked(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, userA := helpers.CreateMember(t, ts, "viewer")
	_, userB := helpers.CreateMember(t, ts, "liked")
	_, userC := helpers.CreateMember(t, ts, "fresh")

	status, _ := helpers.Like(t, ts, tokenA, userB.ID, nil)
	require.Equal(t, http.StatusOK, status)

	feed := getFeed(t, ts, tokenA)
	ids := make(map[string]bool)
	for _, c := range feed.Candidates {
		ids[c.ID] = true
	}
	assert.False(t, ids[userA.ID], "viewer must not see themselves")
	assert.False(t, ids[userB.ID], "already-liked members drop out of the feed")
	assert.True(t, ids[userC.ID])
}

func TestFeedExcludesInactiveUsers(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, _ := helpers.CreateMember(t, ts, "viewer")

	pending := &models.User{Name: "Pending", Email: "pending@test.com", Status: models.UserStatusPending}
	helpers.CreateUser(t, ts.DB, pending, "password123")

	suspended := &models.User{Name: "Suspended", Email: "suspended@test.com"}
	helpers.CreateUser(t, ts.DB, suspended, "password123")
	require.NoError(t, ts.DB.Model(suspended).Update("status", models.UserStatusSuspended).Error)

	feed := getFeed(t, ts, tokenA)
	for _, c := range feed.Candidates {
		assert.NotEqual(t, pending.ID, c.ID)
		assert.NotEqual(t, suspended.ID, c.ID)
	}
}

func TestFeedRanksByCompatibility(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenViewer, _ := helpers.CreateMember(t, ts, "viewer")
	helpers.SetProfile(t, ts, tokenViewer,
		map[string]interface{}{"location": "Berlin", "availability": 80},
		[]string{"Go", "PostgreSQL"},
		[]string{"Engineering"},
		[]string{"Sales"},
	)

	// Strong fit: complementary tags, shared skills, same city.
	tokenStrong, strong := helpers.CreateMember(t, ts, "strong")
	helpers.SetProfile(t, ts, tokenStrong,
		map[string]interface{}{"location": "Berlin", "availability": 75},
		[]string{"Go", "PostgreSQL"},
		[]string{"Sales"},
		[]string{"Engineering"},
	)

	// Weak fit: nothing in common.
	tokenWeak, weak := helpers.CreateMember(t, ts, "weak")
	helpers.SetProfile(t, ts, tokenWeak,
		map[string]interface{}{"location": "Osaka"},
		[]string{"Ceramics"},
		nil, nil,
	)

	feed := getFeed(t, ts, tokenViewer)
	require.GreaterOrEqual(t, len(feed.Candidates), 2)

	positions := make(map[string]int)
	scores := make(map[string]int)
	for i, c := range feed.Candidates {
		positions[c.ID] = i
		scores[c.ID] = c.MatchScore
	}
	assert.Less(t, positions[strong.ID], positions[weak.ID], "stronger fit ranks first")
	assert.Greater(t, scores[strong.ID], scores[weak.ID])

	for _, c := range feed.Candidates {
		if c.ID == strong.ID {
			assert.NotEmpty(t, c.MatchReasons)
			assert.LessOrEqual(t, len(c.MatchReasons), 3)
		}
	}
}
