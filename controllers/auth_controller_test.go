package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerwright/daggle/database"
	"github.com/seerwright/daggle/models"
	"github.com/seerwright/daggle/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "alice", "participant")
	assert.NotEmpty(t, token)

	// The token works against a protected route.
	status, resp := doJSON(t, r, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Zero(t, resp.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	r := setupAPI(t)
	registerAndLogin(t, r, "alice", "participant")

	status, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":        "alice@example.com",
		"username":     "alice2",
		"password":     "password123",
		"display_name": "Alice Again",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, utils.CodeDuplicate, resp.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r := setupAPI(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":        "bob@example.com",
		"username":     "bob",
		"password":     "short",
		"display_name": "Bob",
	})
	assert.Equal(t, utils.CodeInvalidParams, resp.Code)
}

func TestRegisterIgnoresAdminRole(t *testing.T) {
	r := setupAPI(t)

	status, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":        "eve@example.com",
		"username":     "eve",
		"password":     "password123",
		"display_name": "Eve",
		"role":         "admin",
	})
	// The binder rejects roles outside participant/sponsor.
	assert.Equal(t, http.StatusOK, status)

	var count int64
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	assert.Zero(t, count)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupAPI(t)
	registerAndLogin(t, r, "alice", "participant")

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, utils.CodeBadCredentials, resp.Code)
	assert.Equal(t, "Incorrect email or password", resp.Msg)
}

func TestLoginUnknownEmail(t *testing.T) {
	r := setupAPI(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "ghost@example.com",
		"password": "password123",
	})
	// Same message as a wrong password; the API does not leak which was wrong.
	assert.Equal(t, utils.CodeBadCredentials, resp.Code)
	assert.Equal(t, "Incorrect email or password", resp.Msg)
}

func TestLoginDisabledAccount(t *testing.T) {
	r := setupAPI(t)
	registerAndLogin(t, r, "alice", "participant")

	require.NoError(t, database.DB.Model(&models.User{}).
		Where("username = ?", "alice").Update("is_active", false).Error)

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, utils.CodeAccountDisabled, resp.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	r := setupAPI(t)

	status, _ := doJSON(t, r, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUpdateProfile(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "alice", "participant")

	status, resp := doJSON(t, r, http.MethodPut, "/api/v1/profile", token, gin.H{
		"display_name": "Alice Cooper",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Zero(t, resp.Code)

	var user models.User
	require.NoError(t, database.DB.Where("username = ?", "alice").First(&user).Error)
	assert.Equal(t, "Alice Cooper", user.DisplayName)
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	r := setupAPI(t)
	token := registerAndLogin(t, r, "alice", "participant")

	status, resp := doJSON(t, r, http.MethodPut, "/api/v1/profile", token, gin.H{
		"password": "new-password-456",
	})
	require.Equal(t, http.StatusOK, status)
	require.Zero(t, resp.Code, resp.Msg)

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "new-password-456",
	})
	assert.Zero(t, resp.Code, "new password must work")

	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, utils.CodeBadCredentials, resp.Code, "old password must stop working")
}
