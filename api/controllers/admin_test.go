package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/frontiertower/floorfinder-sub000/api/controllers/testing"
	"github.com/frontiertower/floorfinder-sub000/api/models"
	"github.com/frontiertower/floorfinder-sub000/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRequiresToken(t *testing.T) {
	_, router := setupJuryTestController(t)

	w := testutils.PerformRequest(router, http.MethodGet, "/api/admin/sessions", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutils.PerformRequest(router, http.MethodGet, "/api/admin/sessions", nil, map[string]string{"x-admin-token": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSessions(t *testing.T) {
	_, router := setupJuryTestController(t)
	first := openTestSession(t, router, "judge-1")
	openTestSession(t, router, "judge-2")

	w := testutils.PerformRequest(router, http.MethodGet, "/api/admin/sessions", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	var sessions []models.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	assert.Len(t, sessions, 2)

	w = testutils.PerformRequest(router, http.MethodDelete, "/api/admin/sessions/"+first, nil, adminHeaders())
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(router, http.MethodDelete, "/api/admin/sessions/"+first, nil, adminHeaders())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminResetRatings(t *testing.T) {
	service, router := setupJuryTestController(t)
	session := openTestSession(t, router, "judge-1")
	require.Equal(t, http.StatusOK, putScore(router, session, "Alpha-floor-2", scoring.Concept, 5).Code)

	w := testutils.PerformRequest(router, http.MethodPost, "/api/admin/ratings/reset", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ResetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"judge-1"}, resp.Reset)
	assert.Empty(t, resp.Failed)

	s, err := service.Session(context.Background(), session)
	require.NoError(t, err)
	set, _, err := s.Ratings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, set.Ratings)
}

func TestAdminDimensions(t *testing.T) {
	_, router := setupJuryTestController(t)

	w := testutils.PerformRequest(router, http.MethodGet, "/api/admin/dimensions", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	var dims []models.DimensionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dims))
	require.Len(t, dims, 6)
	assert.Equal(t, scoring.Concept, dims[0].Key)
	assert.Empty(t, dims[0].TrackKeyword)
	assert.Equal(t, "hand tracking", dims[5].TrackKeyword)
}

func TestAdminResetRatings_JudgeWithClosedSession(t *testing.T) {
	_, router := setupJuryTestController(t)
	session := openTestSession(t, router, "judge-1")
	require.Equal(t, http.StatusOK, putScore(router, session, "Alpha-floor-2", scoring.Concept, 4).Code)
	require.Equal(t, http.StatusOK, testutils.PerformRequest(router, http.MethodDelete, "/api/jury/sessions/"+session, nil, nil).Code)

	w := testutils.PerformRequest(router, http.MethodPost, "/api/admin/ratings/reset", nil, adminHeaders())
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ResetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"judge-1"}, resp.Reset)

	w = testutils.PerformRequest(router, http.MethodGet, "/api/jury/judges", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
