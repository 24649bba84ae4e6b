package contactController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"codeeasy/config"
	"codeeasy/database"
	"codeeasy/middleware"
	"codeeasy/models"
	contactRoutes "codeeasy/routers/contactRoutes"

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
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	dsn := fmt.Sprintf("file:contacttest%d?mode=memory&cache=shared", atomic.AddInt64(&testDbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ContactMessage{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	contactRoutes.SetupContactRoutes(app)
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

func adminHeaders(t *testing.T) map[string]string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-pass-123"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.User{
		Name:     "Administrator",
		Email:    "admin@codeeasy.in",
		Role:     models.RoleAdmin,
		Password: string(hashed),
	}
	require.NoError(t, database.Database.Db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func validMessage() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Rahul Kumar",
		"email":   "rahul@example.com",
		"phone":   "9876543210",
		"course":  "Python",
		"message": "I would like to know the batch timings.",
	}
}

func TestSubmitMessage(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doRequest(t, app, "POST", "/contact/submit", validMessage(), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	reference := body["data"].(map[string]interface{})["reference"].(string)
	assert.NotEmpty(t, reference)

	var message models.ContactMessage
	require.NoError(t, database.Database.Db.First(&message).Error)
	assert.Equal(t, reference, message.Reference)
	assert.Equal(t, models.ContactStatusNew, message.Status)
}

func TestSubmitMessageValidation(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doRequest(t, app, "POST", "/contact/submit", map[string]interface{}{
		"name":    "",
		"email":   "not-an-email",
		"phone":   "12",
		"message": "",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "name")
	assert.Contains(t, errors, "email")
	assert.Contains(t, errors, "phone")
	assert.Contains(t, errors, "message")

	var count int64
	require.NoError(t, database.Database.Db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmitMessageCountsCharactersNotBytes(t *testing.T) {
	app := setupTestApp(t)

	// Devanagari name and message stay within the character limits even
	// though each rune is 3 bytes
	payload := validMessage()
	payload["name"] = strings.Repeat("क", 100)
	payload["message"] = strings.Repeat("ध", 2000)
	resp, _ := doRequest(t, app, "POST", "/contact/submit", payload, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload = validMessage()
	payload["name"] = strings.Repeat("क", 101)
	payload["message"] = strings.Repeat("ध", 2001)
	resp, body := doRequest(t, app, "POST", "/contact/submit", payload, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "name")
	assert.Contains(t, errors, "message")
}

func TestSubmitMessagePhoneOptional(t *testing.T) {
	app := setupTestApp(t)

	payload := validMessage()
	delete(payload, "phone")
	resp, _ := doRequest(t, app, "POST", "/contact/submit", payload, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminListAndMarkHandled(t *testing.T) {
	app := setupTestApp(t)
	headers := adminHeaders(t)

	resp, _ := doRequest(t, app, "POST", "/contact/submit", validMessage(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, app, "GET", "/admin/contact/list", nil, headers)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	messages := body["data"].(map[string]interface{})["messages"].([]interface{})
	require.Len(t, messages, 1)
	id := uint(messages[0].(map[string]interface{})["ID"].(float64))

	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/admin/contact/%d/handled", id), nil, headers)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.ContactMessage
	require.NoError(t, database.Database.Db.First(&updated, id).Error)
	assert.Equal(t, models.ContactStatusHandled, updated.Status)

	// Status filter only returns what is still open
	resp, body = doRequest(t, app, "GET", "/admin/contact/list?status=new", nil, headers)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	open, _ := body["data"].(map[string]interface{})["messages"].([]interface{})
	assert.Empty(t, open)
}

func TestContactInboxRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doRequest(t, app, "GET", "/admin/contact/list", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
