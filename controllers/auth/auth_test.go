package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"codeeasy/config"
	"codeeasy/database"
	"codeeasy/models"
	authRoutes "codeeasy/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDbSeq int64

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:       "3000",
		JWTKey:     "test-secret",
		SaltRound:  bcrypt.MinCost,
		AdminEmail: "admin@codeeasy.in",
	}

	dsn := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", atomic.AddInt64(&testDbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, url string, body interface{}, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	parsed := map[string]interface{}{}
	if resp.Body != nil {
		json.NewDecoder(resp.Body).Decode(&parsed)
	}
	return resp, parsed
}

func TestSignupAndLogin(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doRequest(t, app, "POST", "/auth/signup", map[string]interface{}{
		"name":     "Priya Sharma",
		"email":    "priya@example.com",
		"password": "strong-password",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["status"])

	user := body["data"].(map[string]interface{})
	assert.Equal(t, models.RoleUser, user["role"])

	resp, body = doRequest(t, app, "POST", "/auth/login", map[string]interface{}{
		"email":    "priya@example.com",
		"password": "strong-password",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)

	payload := map[string]interface{}{
		"name":     "Priya Sharma",
		"email":    "priya@example.com",
		"password": "strong-password",
	}
	resp, _ := doRequest(t, app, "POST", "/auth/signup", payload, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/auth/signup", payload, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doRequest(t, app, "POST", "/auth/signup", map[string]interface{}{
		"name":     "P",
		"email":    "not-an-email",
		"password": "short",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "name")
	assert.Contains(t, errors, "email")
	assert.Contains(t, errors, "password")
}

func TestSignupAdminEmailGetsAdminRole(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doRequest(t, app, "POST", "/auth/signup", map[string]interface{}{
		"name":     "Administrator",
		"email":    "admin@codeeasy.in",
		"password": "admin-password",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	user := body["data"].(map[string]interface{})
	assert.Equal(t, models.RoleAdmin, user["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "POST", "/auth/signup", map[string]interface{}{
		"name":     "Priya Sharma",
		"email":    "priya@example.com",
		"password": "strong-password",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doRequest(t, app, "POST", "/auth/login", map[string]interface{}{
		"email":    "priya@example.com",
		"password": "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password!", body["message"])
}

func TestMeReportsAdminFlag(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "POST", "/auth/signup", map[string]interface{}{
		"name":     "Administrator",
		"email":    "admin@codeeasy.in",
		"password": "admin-password",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, body := doRequest(t, app, "POST", "/auth/login", map[string]interface{}{
		"email":    "admin@codeeasy.in",
		"password": "admin-password",
	}, nil)
	token := body["data"].(map[string]interface{})["token"].(string)

	resp, body = doRequest(t, app, "GET", "/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["isAdmin"])
}

func TestMeRequiresToken(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "GET", "/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
