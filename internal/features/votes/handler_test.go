package votes

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newVoteRouter(t *testing.T) (*gin.Engine, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _, reportID, voterID := newVoteService(t)
	handler := NewHandler(svc)

	r := gin.New()
	r.POST("/votes", handler.CastVote)
	r.DELETE("/votes/:reportId/:voterId", handler.RemoveVote)
	return r, reportID, voterID
}

func castBody(reportID, voterID primitive.ObjectID, value int) string {
	body, _ := json.Marshal(CastVoteRequest{
		ReportID: reportID.Hex(),
		VoterID:  voterID.Hex(),
		Value:    &value,
	})
	return string(body)
}

func TestCastVote_HTTPStatusPerAction(t *testing.T) {
	r, reportID, voterID := newVoteRouter(t)

	// First cast creates the vote.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/votes", strings.NewReader(castBody(reportID, voterID, 1)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 201, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	require.Equal(t, "created", data["action"])
	require.Equal(t, float64(1), data["value"])

	// Repeating the same value toggles it off with a 200 and null value.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/votes", strings.NewReader(castBody(reportID, voterID, 1)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data = body["data"].(map[string]any)
	require.Equal(t, "removed", data["action"])
	require.Nil(t, data["value"])
}

func TestCastVote_BadRequests(t *testing.T) {
	r, reportID, voterID := newVoteRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/votes", strings.NewReader(`{"reportId":"nope","voterId":"`+voterID.Hex()+`","value":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_ID", body["code"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/votes", strings.NewReader(castBody(reportID, voterID, 5)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_VOTE_VALUE", body["code"])
}

func TestCastVote_ZeroValueIsInvalidNotMissing(t *testing.T) {
	r, reportID, voterID := newVoteRouter(t)

	// An explicit 0 is present but out of range, not a missing field.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/votes", strings.NewReader(castBody(reportID, voterID, 0)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_VOTE_VALUE", body["code"])

	// Leaving value out entirely is the missing-field case.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/votes",
		strings.NewReader(`{"reportId":"`+reportID.Hex()+`","voterId":"`+voterID.Hex()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "MISSING_FIELD", body["code"])
}

func TestCastVote_MalformedBody(t *testing.T) {
	r, _, _ := newVoteRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/votes", strings.NewReader(`{"reportId":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_BODY", body["code"])

	// Wrong type for value is malformed, not missing.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/votes", strings.NewReader(`{"reportId":"x","voterId":"y","value":"up"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_BODY", body["code"])
}

func TestRemoveVote_NotFound(t *testing.T) {
	r, reportID, voterID := newVoteRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/votes/"+reportID.Hex()+"/"+voterID.Hex(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 404, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "VOTE_NOT_FOUND", body["code"])
}
