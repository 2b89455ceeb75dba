package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cofoundr_backend/internal/models"
	"cofoundr_backend/test/helpers"
)

type messageListResponse struct {
	Messages []struct {
		ID        string    `json:"id"`
		SenderID  string    `json:"sender_id"`
		Body      string    `json:"body"`
		CreatedAt time.Time `json:"created_at"`
	} `json:"messages"`
	Total int `json:"total"`
}

func TestConversationBetweenParticipants(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, tokenB, userA, userB, matchID := formMatch(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": "Hi! Want to talk this week?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenB, map[string]interface{}{
		"body": "Sure, Thursday works.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/matches/"+matchID+"/messages", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list messageListResponse
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, 2, list.Total)
	// Oldest first.
	assert.Equal(t, userA.ID, list.Messages[0].SenderID)
	assert.Equal(t, userB.ID, list.Messages[1].SenderID)
	assert.Equal(t, "Hi! Want to talk this week?", list.Messages[0].Body)
}

func TestConversationHiddenFromOutsiders(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, _, _, _, matchID := formMatch(t, ts)
	outsiderToken, _ := helpers.CreateMember(t, ts, "outsider")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": "private note",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// An outsider gets the same 404 as a nonexistent match, for both read
	// and write, so match ids cannot be probed.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/matches/"+matchID+"/messages", outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", outsiderToken, map[string]interface{}{
		"body": "let me in",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestConversationClosedAfterUnmatch(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, tokenB, _, _, matchID := formMatch(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": "first",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/matches/"+matchID, tokenB, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": "anyone there?",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/matches/"+matchID+"/messages", tokenA, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestMessageBodyBounds(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, _, _, _, matchID := formMatch(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": "",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": strings.Repeat("x", 1001),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": strings.Repeat("x", 1000),
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestMessagePagination(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, _, userA, _, matchID := formMatch(t, ts)

	// Insert directly with spaced timestamps so the cursor has something to
	// slice through.
	base := time.Now().Add(-1 * time.Hour)
	for i := 0; i < 10; i++ {
		msg := models.Message{
			MatchID:   matchID,
			SenderID:  userA.ID,
			Body:      fmt.Sprintf("message %02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, ts.DB.Create(&msg).Error)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/matches/"+matchID+"/messages?limit=3", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page messageListResponse
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Equal(t, 3, page.Total)
	// A limited page returns the newest window, oldest first within it.
	assert.Equal(t, "message 07", page.Messages[0].Body)
	assert.Equal(t, "message 09", page.Messages[2].Body)

	// Page backwards from the cursor.
	before := page.Messages[0].CreatedAt.Format(time.RFC3339Nano)
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/matches/"+matchID+"/messages?limit=3&before="+before, tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Equal(t, 3, page.Total)
	assert.Equal(t, "message 04", page.Messages[0].Body)
	assert.Equal(t, "message 06", page.Messages[2].Body)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/matches/"+matchID+"/messages?before=not-a-time", tokenA, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMarkReadStampsPartnerMessages(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	tokenA, tokenB, userA, _, matchID := formMatch(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages", tokenA, map[string]interface{}{
		"body": "unread until you open it",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/matches/"+matchID+"/messages/read", tokenB, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var msg models.Message
	require.NoError(t, ts.DB.First(&msg, "match_id = ? AND sender_id = ?", matchID, userA.ID).Error)
	assert.NotNil(t, msg.ReadAt)
}
