package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerwright/daggle/utils"
)

func TestCreateCompetition(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")

	status, resp := doJSON(t, r, http.MethodPost, "/api/v1/competitions", token, competitionPayload("Titanic Survival"))
	require.Equal(t, http.StatusCreated, status)
	require.Zero(t, resp.Code, resp.Msg)

	var data struct {
		Slug                 string `json:"slug"`
		Status               string `json:"status"`
		MaxTeamSize          int    `json:"max_team_size"`
		DailySubmissionLimit int    `json:"daily_submission_limit"`
		IsPublic             bool   `json:"is_public"`
		HasTruthSet          bool   `json:"has_truth_set"`
	}
	decodeData(t, resp, &data)
	assert.Equal(t, "titanic-survival", data.Slug)
	assert.Equal(t, "draft", data.Status)
	assert.Equal(t, 1, data.MaxTeamSize)
	assert.Equal(t, 5, data.DailySubmissionLimit)
	assert.True(t, data.IsPublic)
	assert.False(t, data.HasTruthSet)
}

func TestCreateCompetitionSlugCollision(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")

	assert.Equal(t, "titanic-survival", createCompetition(t, r, token, "Titanic Survival"))
	assert.Equal(t, "titanic-survival-1", createCompetition(t, r, token, "Titanic Survival"))
	assert.Equal(t, "titanic-survival-2", createCompetition(t, r, token, "Titanic Survival"))
}

func TestCreateCompetitionRejectsBadDateOrder(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")

	payload := competitionPayload("Backwards Dates")
	payload["start_date"] = time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339)
	payload["end_date"] = time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/competitions", token, payload)
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)
	assert.Equal(t, "End date must be after start date", resp.Msg)

	// Equal dates are also rejected; the window must be non-empty.
	when := time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)
	payload["start_date"] = when
	payload["end_date"] = when
	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/competitions", token, payload)
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)
	assert.Equal(t, "End date must be after start date", resp.Msg)
}

func TestCreateCompetitionRejectsUnknownMetric(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")

	payload := competitionPayload("Strange Metric")
	payload["evaluation_metric"] = "vibes"

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/competitions", token, payload)
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)
	assert.Contains(t, resp.Msg, "Unknown evaluation metric")
}

func TestCreateCompetitionRequiresSponsorRole(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "participant", "participant")

	status, _ := doJSON(t, r, http.MethodPost, "/api/v1/competitions", token, competitionPayload("Nope"))
	assert.Equal(t, http.StatusForbidden, status)
}

func TestCreateCompetitionFieldValidation(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")

	tests := []struct {
		name   string
		mutate func(gin.H)
	}{
		{"short title", func(p gin.H) { p["title"] = "ab" }},
		{"short short_description", func(p gin.H) { p["short_description"] = "too short" }},
		{"bad difficulty", func(p gin.H) { p["difficulty"] = "expert" }},
		{"team size out of range", func(p gin.H) { p["max_team_size"] = 11 }},
		{"daily limit out of range", func(p gin.H) { p["daily_submission_limit"] = 101 }},
		{"missing start date", func(p gin.H) { delete(p, "start_date") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := competitionPayload("Field Validation")
			tt.mutate(payload)
			_, resp := doJSON(t, r, http.MethodPost, "/api/v1/competitions", token, payload)
			assert.Equal(t, utils.CodeInvalidParams, resp.Code)
		})
	}
}

func TestListCompetitionsShowsOnlyPublicActive(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")

	draft := createCompetition(t, r, token, "Still Draft")
	active := createCompetition(t, r, token, "Open Competition")
	activateCompetition(t, r, token, active)

	hidden := createCompetition(t, r, token, "Private Competition")
	_, resp := doJSON(t, r, http.MethodPatch, "/api/v1/competitions/"+hidden, token, gin.H{
		"status": "active", "is_public": false,
	})
	require.Zero(t, resp.Code, resp.Msg)

	status, resp := doJSON(t, r, http.MethodGet, "/api/v1/competitions", "", nil)
	require.Equal(t, http.StatusOK, status)

	var items []struct {
		Slug string `json:"slug"`
	}
	decodeData(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, active, items[0].Slug)
	assert.NotEqual(t, draft, items[0].Slug)
}

func TestListMyCompetitions(t *testing.T) {
	r := setupAPI(t)
	mine := registerAndLogin(t, r, "sponsor-a", "sponsor")
	other := registerAndLogin(t, r, "sponsor-b", "sponsor")

	createCompetition(t, r, mine, "Mine One")
	createCompetition(t, r, mine, "Mine Two")
	createCompetition(t, r, other, "Someone Elses")

	status, resp := doJSON(t, r, http.MethodGet, "/api/v1/profile/competitions", mine, nil)
	require.Equal(t, http.StatusOK, status)

	var items []json.RawMessage
	decodeData(t, resp, &items)
	assert.Len(t, items, 2)
}

func TestGetCompetitionNotFound(t *testing.T) {
	r := setupAPI(t)

	status, resp := doJSON(t, r, http.MethodGet, "/api/v1/competitions/no-such-slug", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, utils.CodeNotFound, resp.Code)
}

func TestUpdateCompetitionTitleRegeneratesSlug(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")
	slug := createCompetition(t, r, token, "Original Title")

	status, resp := doJSON(t, r, http.MethodPatch, "/api/v1/competitions/"+slug, token, gin.H{
		"title": "Renamed Competition",
	})
	require.Equal(t, http.StatusOK, status)
	require.Zero(t, resp.Code, resp.Msg)

	var data struct {
		Slug  string `json:"slug"`
		Title string `json:"title"`
	}
	decodeData(t, resp, &data)
	assert.Equal(t, "renamed-competition", data.Slug)
	assert.Equal(t, "Renamed Competition", data.Title)

	// The old slug no longer resolves.
	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/competitions/"+slug, "", nil)
	assert.Equal(t, utils.CodeNotFound, resp.Code)
}

func TestUpdateCompetitionRevalidatesDates(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")
	slug := createCompetition(t, r, token, "Date Checks")

	// Moving the end before the existing start must be rejected.
	_, resp := doJSON(t, r, http.MethodPatch, "/api/v1/competitions/"+slug, token, gin.H{
		"end_date": time.Now().UTC().Add(time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)
	assert.Equal(t, "End date must be after start date", resp.Msg)
}

func TestUpdateCompetitionRequiresOwnership(t *testing.T) {
	r := setupAPI(t)
	owner := registerAndLogin(t, r, "owner", "sponsor")
	intruder := registerAndLogin(t, r, "intruder", "sponsor")
	slug := createCompetition(t, r, owner, "Owned Competition")

	_, resp := doJSON(t, r, http.MethodPatch, "/api/v1/competitions/"+slug, intruder, gin.H{
		"title": "Hijacked Competition",
	})
	assert.Equal(t, utils.CodeForbidden, resp.Code)
}

func TestDeleteCompetition(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "sponsor", "sponsor")
	slug := createCompetition(t, r, token, "Short Lived")

	status, resp := doJSON(t, r, http.MethodDelete, "/api/v1/competitions/"+slug, token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Zero(t, resp.Code, resp.Msg)

	_, resp = doJSON(t, r, http.MethodGet, "/api/v1/competitions/"+slug, "", nil)
	assert.Equal(t, utils.CodeNotFound, resp.Code)
}
