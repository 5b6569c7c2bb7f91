package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	testutils "github.com/frontiertower/floorfinder-sub000/api/controllers/testing"
	"github.com/frontiertower/floorfinder-sub000/api/models"
	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/frontiertower/floorfinder-sub000/ratings"
	"github.com/frontiertower/floorfinder-sub000/scoring"
	"github.com/frontiertower/floorfinder-sub000/storage"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func juryRooms() []*storage.Room {
	return []*storage.Room{
		{ID: "r1", Name: "201 SF2", TeamName: "Alpha", ProjectName: "Holo Maps", FloorID: "floor-2"},
		{ID: "r2", Name: "1001 SF10", TeamName: "Gamma", ProjectName: "Arcade", FloorID: "floor-10"},
		{ID: "r3", Name: "202", TeamName: "Private", FloorID: "floor-2"},
	}
}

func setupJuryTestController(t *testing.T, judges ...string) (*ratings.Service, *gin.Engine) {
	return setupJuryTestControllerWithStore(t, storage.NewMemoryKeyValueStorage(), judges...)
}

// setupJuryTestControllerWithStore builds an instance on a given store, so
// several instances can share one store.
func setupJuryTestControllerWithStore(t *testing.T, remote storage.KeyValueStorage, judges ...string) (*ratings.Service, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()
	t.Setenv("ADMIN_TOKEN", testAdminToken)

	service := ratings.NewService(ratings.Config{
		Rooms:   testutils.NewMemoryRoomStorage(juryRooms()...),
		Remote:  remote,
		Judges:  judges,
		Metrics: ratings.NewMetrics(prometheus.NewRegistry()),
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewJuryController(service).RegisterRoutes(r)
	NewAdminController(service).RegisterRoutes(r)
	return service, r
}

func openTestSession(t *testing.T, router *gin.Engine, judgeID string) string {
	t.Helper()
	w := testutils.PerformRequest(router, http.MethodPost, "/api/jury/sessions", models.OpenSessionRequest{JudgeID: judgeID}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, judgeID, resp.JudgeID)
	return resp.SessionID
}

func putScore(router *gin.Engine, session, teamKey string, field scoring.Dimension, value int) *httptest.ResponseRecorder {
	body := models.UpdateFieldRequest{Field: string(field), Score: &value}
	return testutils.PerformRequest(router, http.MethodPut, "/api/jury/sessions/"+session+"/ratings/"+teamKey, body, nil)
}

func putText(router *gin.Engine, session, teamKey string, field scoring.Field, value string) *httptest.ResponseRecorder {
	body := models.UpdateFieldRequest{Field: string(field), Text: &value}
	return testutils.PerformRequest(router, http.MethodPut, "/api/jury/sessions/"+session+"/ratings/"+teamKey, body, nil)
}

func TestOpenJurySession(t *testing.T) {
	_, router := setupJuryTestController(t, "judge-1")

	openTestSession(t, router, "judge-1")

	w := testutils.PerformRequest(router, http.MethodPost, "/api/jury/sessions", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutils.PerformRequest(router, http.MethodPost, "/api/jury/sessions", models.OpenSessionRequest{JudgeID: "stranger"}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutils.PerformRequest(router, http.MethodGet, "/api/jury/judges", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var judges []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &judges))
	assert.Equal(t, []string{"judge-1"}, judges)
}

func TestListJuryTeams(t *testing.T) {
	_, router := setupJuryTestController(t)

	w := testutils.PerformRequest(router, http.MethodGet, "/api/jury/teams?sort=teamNumber&dir=desc", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var teams []models.TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 2)
	assert.Equal(t, "Gamma-floor-10", teams[0].Key)
	assert.Equal(t, 10, teams[0].FloorLevel)
	assert.Equal(t, "SF2", teams[1].TeamNumber)
}

func TestUpdateRatingField(t *testing.T) {
	_, router := setupJuryTestController(t)
	session := openTestSession(t, router, "judge-1")

	w := putScore(router, session, "Alpha-floor-2", scoring.Concept, 4)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RatingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ratings.Persisted, resp.Mode)
	assert.Equal(t, 4, resp.Rating.Concept)
	assert.Equal(t, 4.0, resp.Rating.Total)
	assert.True(t, resp.Enabled[scoring.Field(scoring.Concept)])
	assert.False(t, resp.Enabled[scoring.Field(scoring.HandTracking)])

	w = putText(router, session, "Alpha-floor-2", scoring.FieldTrack, "Hand Tracking")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Enabled[scoring.Field(scoring.HandTracking)])

	w = putScore(router, session, "Alpha-floor-2", scoring.HandTracking, 2)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3.0, resp.Rating.Total)
}

func TestUpdateRatingField_Errors(t *testing.T) {
	_, router := setupJuryTestController(t)
	session := openTestSession(t, router, "judge-1")
	path := "/api/jury/sessions/" + session + "/ratings/Alpha-floor-2"

	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"missing field", path, map[string]int{"score": 3}, http.StatusBadRequest},
		{"dimension without score", path, map[string]string{"field": "concept"}, http.StatusBadRequest},
		{"text field without text", path, map[string]string{"field": "notes"}, http.StatusBadRequest},
		{"unknown field", path, map[string]interface{}{"field": "charisma", "score": 3}, http.StatusBadRequest},
		{"score out of range", path, map[string]interface{}{"field": "concept", "score": 6}, http.StatusBadRequest},
		{"disabled field", path, map[string]interface{}{"field": "handTracking", "score": 3}, http.StatusBadRequest},
		{"unknown team", "/api/jury/sessions/" + session + "/ratings/Nobody-floor-1", map[string]interface{}{"field": "concept", "score": 3}, http.StatusNotFound},
		{"unknown session", "/api/jury/sessions/nope/ratings/Alpha-floor-2", map[string]interface{}{"field": "concept", "score": 3}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutils.PerformRequest(router, http.MethodPut, tt.path, tt.body, nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestJudgeRatingsListing(t *testing.T) {
	_, router := setupJuryTestController(t)
	session := openTestSession(t, router, "judge-1")

	require.Equal(t, http.StatusOK, putScore(router, session, "Gamma-floor-10", scoring.Quality, 5).Code)
	require.Equal(t, http.StatusOK, putText(router, session, "Gamma-floor-10", scoring.FieldTrack, "Entertainment").Code)

	w := testutils.PerformRequest(router, http.MethodGet, "/api/jury/sessions/"+session+"/ratings?sort=total&dir=desc", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.JudgeRowsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "judge-1", resp.JudgeID)
	assert.Equal(t, ratings.Persisted, resp.Mode)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "Gamma-floor-10", resp.Rows[0].Team.Key)
	require.NotNil(t, resp.Rows[0].Rating)
	assert.Nil(t, resp.Rows[1].Rating)

	w = testutils.PerformRequest(router, http.MethodGet, "/api/jury/sessions/"+session+"/ratings?track=Entertainment", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Rows, 1)
}

func TestExportAndImportRatings(t *testing.T) {
	_, router := setupJuryTestController(t)
	session := openTestSession(t, router, "judge-1")
	require.Equal(t, http.StatusOK, putScore(router, session, "Alpha-floor-2", scoring.Concept, 3).Code)

	w := testutils.PerformRequest(router, http.MethodGet, "/api/jury/sessions/"+session+"/export.json", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "persisted", w.Header().Get("X-Persist-Mode"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ratings-judge-1.json")
	backup := w.Body.Bytes()

	var snap scoring.Snapshot
	require.NoError(t, json.Unmarshal(backup, &snap))
	assert.Equal(t, "judge-1", snap.JudgeID)
	assert.Contains(t, snap.Ratings, "Alpha-floor-2")

	require.Equal(t, http.StatusOK, putScore(router, session, "Gamma-floor-10", scoring.Concept, 1).Code)

	w = testutils.PerformRawRequest(router, http.MethodPost, "/api/jury/sessions/"+session+"/import", backup, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result ratings.ImportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Imported)
	assert.Empty(t, result.Diagnostics)

	w = testutils.PerformRequest(router, http.MethodGet, "/api/jury/sessions/"+session+"/export.csv", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 2)

	w = testutils.PerformRawRequest(router, http.MethodPost, "/api/jury/sessions/"+session+"/import", []byte("not json"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearAndCloseSession(t *testing.T) {
	_, router := setupJuryTestController(t)
	session := openTestSession(t, router, "judge-1")
	require.Equal(t, http.StatusOK, putScore(router, session, "Alpha-floor-2", scoring.Concept, 3).Code)

	w := testutils.PerformRequest(router, http.MethodDelete, "/api/jury/sessions/"+session+"/ratings", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mode models.ModeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mode))
	assert.Equal(t, ratings.Persisted, mode.Mode)

	w = testutils.PerformRequest(router, http.MethodDelete, "/api/jury/sessions/"+session, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(router, http.MethodGet, "/api/jury/sessions/"+session+"/ratings", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutils.PerformRequest(router, http.MethodDelete, "/api/jury/sessions/"+session, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAggregateRatings(t *testing.T) {
	_, router := setupJuryTestController(t)

	for judge, value := range map[string]int{"judge-1": 4, "judge-2": 2} {
		session := openTestSession(t, router, judge)
		require.Equal(t, http.StatusOK, putScore(router, session, "Alpha-floor-2", scoring.Concept, value).Code)
		require.Equal(t, http.StatusOK, putText(router, session, "Alpha-floor-2", scoring.FieldNotes, "seen by "+judge).Code)
	}

	w := testutils.PerformRequest(router, http.MethodGet, "/api/jury/aggregate?sort=total&dir=desc", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result ratings.AggregateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Partial)
	assert.Equal(t, []string{"judge-1", "judge-2"}, result.Judges)
	require.Len(t, result.Rows, 2)
	top := result.Rows[0]
	require.NotNil(t, top.Aggregate)
	assert.Equal(t, 3.0, top.Aggregate.Average)
	assert.Equal(t, 2, top.Aggregate.JudgeCount)

	w = testutils.PerformRequest(router, http.MethodGet, "/api/jury/aggregate/export.csv", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, w.Body.String(), `"[judge-1] seen by judge-1 | [judge-2] seen by judge-2"`)
}

func TestSessionServedByAnyInstance(t *testing.T) {
	remote := storage.NewMemoryKeyValueStorage()
	_, first := setupJuryTestControllerWithStore(t, remote)
	_, second := setupJuryTestControllerWithStore(t, remote)

	session := openTestSession(t, first, "judge-1")
	require.Equal(t, http.StatusOK, putScore(second, session, "Alpha-floor-2", scoring.Concept, 4).Code)

	w := testutils.PerformRequest(first, http.MethodGet, "/api/jury/sessions/"+session+"/ratings", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.JudgeRowsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var alpha *scoring.Rating
	for _, row := range resp.Rows {
		if row.Team.Key == "Alpha-floor-2" {
			alpha = row.Rating
		}
	}
	require.NotNil(t, alpha)
	assert.Equal(t, 4, alpha.Concept)

	w = testutils.PerformRequest(second, http.MethodDelete, "/api/jury/sessions/"+session, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = testutils.PerformRequest(first, http.MethodGet, "/api/jury/sessions/"+session+"/ratings", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAggregateKeepsJudgeAfterSessionClosed(t *testing.T) {
	_, router := setupJuryTestController(t)
	session := openTestSession(t, router, "judge-1")
	require.Equal(t, http.StatusOK, putScore(router, session, "Alpha-floor-2", scoring.Concept, 4).Code)
	require.Equal(t, http.StatusOK, testutils.PerformRequest(router, http.MethodDelete, "/api/jury/sessions/"+session, nil, nil).Code)

	w := testutils.PerformRequest(router, http.MethodGet, "/api/jury/judges", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["judge-1"]`, w.Body.String())
	assert.Empty(t, w.Header().Get(judgesIncompleteHeader))

	w = testutils.PerformRequest(router, http.MethodGet, "/api/jury/aggregate", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result ratings.AggregateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, []string{"judge-1"}, result.Judges)
}
