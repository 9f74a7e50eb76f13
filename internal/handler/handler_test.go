package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"WhatToDo-App/internal/application"
	"WhatToDo-App/internal/domain/helper"
	"WhatToDo-App/internal/domain/model"
	"WhatToDo-App/internal/repository"
	"WhatToDo-App/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCurationRepository struct {
	result *model.SearchResult
	err    error
}

func (s *stubCurationRepository) FindActivities(ctx context.Context, criteria model.Criteria, unit model.UnitSystem, refinement string) (*model.SearchResult, error) {
	return s.result, s.err
}

func newTestRouter(curation *stubCurationRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	blobs := repository.NewMemoryBlobRepository()
	return NewRouter(
		NewRecommendationHandler(usecase.NewRecommendationUseCase(curation)),
		NewActivityHandler(application.NewActivityStore(blobs)),
		NewPlanHandler(application.NewPlanStore(blobs)),
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostSearch(t *testing.T) {
	activities := helper.GroupByCategory([]model.Activity{
		{ActivityName: "Comedy Club", Category: "Nightlife"},
		{ActivityName: "Brewery", Category: "Food & Dining"},
	})
	router := newTestRouter(&stubCurationRepository{result: &model.SearchResult{
		Activities:      activities,
		GroundingChunks: []model.GroundingChunk{},
	}})

	criteria := model.DefaultCriteria()
	criteria.Location = "Austin, TX"
	w := doJSON(t, router, http.MethodPost, "/activities/search", model.SearchRequest{Criteria: criteria})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Regexp(t, `"activities":\{"Nightlife":.*"Food `, w.Body.String())

	var resp model.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.UnitSystemImperial, resp.Unit)
	assert.Equal(t, []string{"Nightlife", "Food & Dining"}, resp.Activities.Categories())
}

func TestPostSearch_ValidationError(t *testing.T) {
	router := newTestRouter(&stubCurationRepository{})

	criteria := model.DefaultCriteria()
	criteria.Location = "NY"
	w := doJSON(t, router, http.MethodPost, "/activities/search", model.SearchRequest{Criteria: criteria})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "criteria.location")

	criteria.Location = "New York, NY"
	criteria.Distance = 500
	w = doJSON(t, router, http.MethodPost, "/activities/search", model.SearchRequest{Criteria: criteria})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "criteria.distance")
}

func TestPostSearch_CurationFailure(t *testing.T) {
	router := newTestRouter(&stubCurationRepository{err: model.NewCurationError(errors.New("bad json"))})

	criteria := model.DefaultCriteria()
	criteria.Location = "Berlin"
	w := doJSON(t, router, http.MethodPost, "/activities/search", model.SearchRequest{Criteria: criteria})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.CurationFailedMessage, body["error"])
}

func TestActivityEndpoints(t *testing.T) {
	router := newTestRouter(&stubCurationRepository{})
	hike := model.Activity{ActivityName: "City Park Hike", CostPerPerson: "$0", Category: "Outdoor Adventures"}

	w := doJSON(t, router, http.MethodPost, "/profile/activities", hike)
	require.Equal(t, http.StatusOK, w.Code)

	changed := hike
	changed.CostPerPerson = "$10"
	w = doJSON(t, router, http.MethodPost, "/profile/activities", changed)
	require.Equal(t, http.StatusOK, w.Code)

	var list savedActivitiesResponse
	w = doJSON(t, router, http.MethodGet, "/profile/activities", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.SavedActivities, 1)
	assert.Equal(t, "$0", list.SavedActivities[0].CostPerPerson)

	w = doJSON(t, router, http.MethodDelete, "/profile/activities/"+url.PathEscape(hike.ActivityName), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.SavedActivities)

	w = doJSON(t, router, http.MethodPost, "/profile/activities/toggle", hike)
	require.Equal(t, http.StatusOK, w.Code)
	var toggled savedActivitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	require.NotNil(t, toggled.Saved)
	assert.True(t, *toggled.Saved)

	w = doJSON(t, router, http.MethodPost, "/profile/activities", model.Activity{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteActivity_NameWithSlash(t *testing.T) {
	router := newTestRouter(&stubCurationRepository{})
	jazz := model.Activity{ActivityName: "Rock / Jazz Night", Category: "Nightlife"}
	hike := model.Activity{ActivityName: "City Park Hike", Category: "Outdoor Adventures"}

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/profile/activities", jazz).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/profile/activities", hike).Code)

	w := doJSON(t, router, http.MethodDelete, "/profile/activities/Rock%20%2F%20Jazz%20Night", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list savedActivitiesResponse
	w = doJSON(t, router, http.MethodGet, "/profile/activities", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.SavedActivities, 1)
	assert.Equal(t, "City Park Hike", list.SavedActivities[0].ActivityName)

	w = doJSON(t, router, http.MethodDelete, "/profile/activities/", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanEndpoints(t *testing.T) {
	router := newTestRouter(&stubCurationRepository{})

	results := helper.GroupByCategory([]model.Activity{{ActivityName: "Zoo", Category: "Family"}})
	payload := model.NewPlanPayload{Name: "  Weekend  ", FormData: model.DefaultCriteria(), Results: results}

	w := doJSON(t, router, http.MethodPost, "/plans", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	payload.Name = "Evening"
	w = doJSON(t, router, http.MethodPost, "/plans", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var list plansResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Plans, 2)
	assert.Equal(t, "Evening", list.Plans[0].Name)
	assert.Equal(t, "Weekend", list.Plans[1].Name)

	w = doJSON(t, router, http.MethodGet, "/plans/"+list.Plans[1].ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plan model.SavedPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, []string{"Family"}, plan.Results.Categories())

	w = doJSON(t, router, http.MethodDelete, "/plans/unknown", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Plans, 2)

	w = doJSON(t, router, http.MethodGet, "/plans/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	payload.Name = "   "
	w = doJSON(t, router, http.MethodPost, "/plans", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&stubCurationRepository{})
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
