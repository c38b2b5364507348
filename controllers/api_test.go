package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/routes"
	"github.com/seerwright/daggle/services"
	"github.com/seerwright/daggle/utils"
)

// setupAPI wires a full router against an in-memory sqlite database and a
// miniredis instance, both scoped to this test.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	prevDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prevDB })
	require.NoError(t, database.MigrateTables())

	mr := miniredis.RunT(t)
	prevRDB := database.RDB
	database.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RDB = prevRDB })

	utils.InitJWT("test-secret", time.Hour)
	require.NoError(t, services.InitStorage(t.TempDir()))
	require.NoError(t, services.SeedRuleTemplates())

	return routes.SetupRouter()
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

type apiResp struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, resp apiResp, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) (int, apiResp) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResp
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

// doUpload posts a multipart form with one file plus optional extra fields.
func doUpload(t *testing.T, r http.Handler, path, token, fileName string, fileContent []byte, fields map[string]string) (int, apiResp) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(fileContent)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResp
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

// registerAndLogin creates a user through the API and returns their token.
func registerAndLogin(t *testing.T, r http.Handler, username, role string) string {
	t.Helper()

	status, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":        username + "@example.com",
		"username":     username,
		"password":     "password123",
		"display_name": username,
		"role":         role,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Zero(t, resp.Code, resp.Msg)

	status, resp = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	require.Zero(t, resp.Code, resp.Msg)

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}

func competitionPayload(title string) gin.H {
	return gin.H{
		"title":             title,
		"short_description": "Predict something interesting",
		"description":       "A full description of the problem and the data.",
		"difficulty":        "beginner",
		"evaluation_metric": "rmse",
		"start_date":        time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
		"end_date":          time.Now().UTC().Add(30 * 24 * time.Hour).Format(time.RFC3339),
	}
}

// createCompetition creates a draft competition and returns its slug.
func createCompetition(t *testing.T, r http.Handler, token, title string) string {
	t.Helper()

	status, resp := doJSON(t, r, http.MethodPost, "/api/v1/competitions", token, competitionPayload(title))
	require.Equal(t, http.StatusCreated, status)
	require.Zero(t, resp.Code, resp.Msg)

	var data struct {
		Slug string `json:"slug"`
	}
	decodeData(t, resp, &data)
	require.NotEmpty(t, data.Slug)
	return data.Slug
}

// activateCompetition opens the submission window, starting yesterday.
func activateCompetition(t *testing.T, r http.Handler, token, slug string) {
	t.Helper()

	status, resp := doJSON(t, r, http.MethodPatch, "/api/v1/competitions/"+slug, token, gin.H{
		"status":     "active",
		"start_date": time.Now().UTC().Add(-24 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, status)
	require.Zero(t, resp.Code, resp.Msg)
}
