package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"courtier_backend/internal/controller"
	"courtier_backend/internal/middleware"
	"courtier_backend/internal/model"
	"courtier_backend/internal/repositories"
	"courtier_backend/pkg/utils/jwt"
	"courtier_backend/pkg/utils/storage"
)

const (
	testAdminEmail    = "broker@example.com"
	testAdminPassword = "super-secret"
)

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	jwt.Init("test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Property{},
		&model.Lead{},
		&model.Viewing{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{Email: testAdminEmail, Password: string(hash)}).Error)

	propertyRepo := repositories.NewPropertyRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	viewingRepo := repositories.NewViewingRepository(db)
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	uploader, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	app := fiber.New()
	api := app.Group("/api")
	auth := middleware.AuthRequired(sessionRepo)

	controller.NewAuthController(userRepo, sessionRepo).RegisterRoutes(api, auth)
	controller.NewPropertyController(propertyRepo).RegisterRoutes(api, auth)
	controller.NewLeadController(leadRepo, "").RegisterRoutes(api, auth)
	controller.NewViewingController(viewingRepo, propertyRepo, "").RegisterRoutes(api, auth)
	controller.NewUploadController(uploader).RegisterRoutes(api, auth)
	controller.NewStatsController(db).RegisterRoutes(api, auth)

	return &testApp{app: app, db: db}
}

func (ta *testApp) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
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

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (ta *testApp) login(t *testing.T) string {
	t.Helper()
	resp := ta.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func condoPayload() fiber.Map {
	return fiber.Map{
		"title":       "Condo au centre-ville",
		"description": "Lumineux 4 1/2 avec vue",
		"price":       "350000",
		"address":     "123 Rue Sainte-Catherine",
		"bedrooms":    2,
		"bathrooms":   1,
		"squareFeet":  800,
		"status":      "active",
	}
}

func TestPropertyLifecycle(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	resp := ta.request(t, http.MethodPost, "/api/properties", token, condoPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Condo au centre-ville", created["title"])
	assert.Equal(t, "350000", created["price"])
	assert.Equal(t, float64(2), created["bedrooms"])
	assert.Equal(t, "active", created["status"])
	assert.Equal(t, "Montreal", created["city"])
	assert.Equal(t, "Quebec", created["province"])
	assert.Equal(t, "condo-au-centre-ville", created["slug"])

	// Public read, no token.
	resp = ta.request(t, http.MethodGet, "/api/properties/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decodeBody(t, resp)
	assert.Equal(t, id, fetched["id"])

	resp = ta.request(t, http.MethodPatch, "/api/properties/"+id, token, fiber.Map{"status": "sold"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	patched := decodeBody(t, resp)
	assert.Equal(t, "sold", patched["status"])
	assert.Equal(t, "Condo au centre-ville", patched["title"])

	resp = ta.request(t, http.MethodDelete, "/api/properties/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])

	resp = ta.request(t, http.MethodGet, "/api/properties/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ta.request(t, http.MethodDelete, "/api/properties/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPropertyCreateValidation(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	payload := condoPayload()
	payload["price"] = "350,000"
	delete(payload, "title")

	resp := ta.request(t, http.MethodPost, "/api/properties", token, payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Validation failed", body["error"])

	details, ok := body["details"].([]interface{})
	require.True(t, ok)
	fields := make([]string, 0, len(details))
	for _, d := range details {
		entry := d.(map[string]interface{})
		fields = append(fields, entry["field"].(string))
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "price")
}

func TestPropertyWritesRequireAuth(t *testing.T) {
	ta := setupApp(t)

	resp := ta.request(t, http.MethodPost, "/api/properties", "", condoPayload())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ta.request(t, http.MethodGet, "/api/properties", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutRevokesToken(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	resp := ta.request(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])

	// The JWT itself is still within its TTL; the session is gone.
	resp = ta.request(t, http.MethodPost, "/api/properties", token, condoPayload())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ta := setupApp(t)

	resp := ta.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    testAdminEmail,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ta.request(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": testAdminPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMe(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	resp := ta.request(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, testAdminEmail, user["email"])
}

func TestLeadCreatePublicAndStatusServerAssigned(t *testing.T) {
	ta := setupApp(t)

	resp := ta.request(t, http.MethodPost, "/api/leads", "", fiber.Map{
		"name":    "Jean Tremblay",
		"email":   "jean@example.com",
		"phone":   "5141234567",
		"message": "Je suis intéressé par le condo",
		"status":  "closed",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lead := decodeBody(t, resp)
	assert.Equal(t, "new", lead["status"], "client-sent status must be ignored")
	assert.Nil(t, lead["propertyId"])
}

func TestLeadCreateRejectsBadEmail(t *testing.T) {
	ta := setupApp(t)

	resp := ta.request(t, http.MethodPost, "/api/leads", "", fiber.Map{
		"name":    "Jean Tremblay",
		"email":   "not-an-email",
		"phone":   "5141234567",
		"message": "Je suis intéressé par le condo",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Validation failed", body["error"])

	details := body["details"].([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "email", details[0].(map[string]interface{})["field"])
}

func TestLeadStatusUpdate(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	resp := ta.request(t, http.MethodPost, "/api/leads", "", fiber.Map{
		"name":    "Jean Tremblay",
		"email":   "jean@example.com",
		"phone":   "5141234567",
		"message": "Je suis intéressé par le condo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["id"].(string)

	resp = ta.request(t, http.MethodPatch, "/api/leads/"+id, token, fiber.Map{"status": "contacted"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "contacted", decodeBody(t, resp)["status"])

	resp = ta.request(t, http.MethodPatch, "/api/leads/"+id, token, fiber.Map{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid status value", body["error"])
	statuses := body["validStatuses"].([]interface{})
	assert.Len(t, statuses, 4)
	assert.Contains(t, statuses, "new")

	// Listing leads is back office only.
	resp = ta.request(t, http.MethodGet, "/api/leads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestViewingRequiresExistingProperty(t *testing.T) {
	ta := setupApp(t)

	resp := ta.request(t, http.MethodPost, "/api/viewings", "", fiber.Map{
		"propertyId":    uuid.NewString(),
		"name":          "Marie Gagnon",
		"email":         "marie@example.com",
		"phone":         "4381234567",
		"preferredDate": "2026-09-15",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Validation failed", body["error"])
	details := body["details"].([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "propertyId", details[0].(map[string]interface{})["field"])
}

func TestViewingLifecycle(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	resp := ta.request(t, http.MethodPost, "/api/properties", token, condoPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	propertyID := decodeBody(t, resp)["id"].(string)

	resp = ta.request(t, http.MethodPost, "/api/viewings", "", fiber.Map{
		"propertyId":    propertyID,
		"name":          "Marie Gagnon",
		"email":         "marie@example.com",
		"phone":         "4381234567",
		"preferredDate": "2026-09-15",
		"preferredTime": "14:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	viewing := decodeBody(t, resp)
	assert.Equal(t, "pending", viewing["status"])
	id := viewing["id"].(string)

	resp = ta.request(t, http.MethodPatch, "/api/viewings/"+id, token, fiber.Map{"status": "confirmed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "confirmed", decodeBody(t, resp)["status"])

	resp = ta.request(t, http.MethodDelete, "/api/viewings/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["success"])
}

func TestViewingMissingPropertyID(t *testing.T) {
	ta := setupApp(t)

	resp := ta.request(t, http.MethodPost, "/api/viewings", "", fiber.Map{
		"name":  "Marie Gagnon",
		"email": "marie@example.com",
		"phone": "4381234567",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Validation failed", body["error"])
}

func TestDashboardStats(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	for _, status := range []string{"active", "active", "sold"} {
		payload := condoPayload()
		payload["status"] = status
		resp := ta.request(t, http.MethodPost, "/api/properties", token, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp := ta.request(t, http.MethodPost, "/api/leads", "", fiber.Map{
		"name":    "Jean Tremblay",
		"email":   "jean@example.com",
		"phone":   "5141234567",
		"message": "Je suis intéressé par le condo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ta.request(t, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody(t, resp)
	assert.Equal(t, float64(3), stats["totalProperties"])
	assert.Equal(t, float64(2), stats["activeProperties"])
	assert.Equal(t, float64(0), stats["pendingProperties"])
	assert.Equal(t, float64(1), stats["soldProperties"])
	assert.Equal(t, float64(1), stats["totalLeads"])
	assert.Equal(t, float64(1), stats["newLeads"])
	assert.Equal(t, float64(0), stats["totalViewings"])

	resp = ta.request(t, http.MethodGet, "/api/dashboard/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboardStatsStorageFailure(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	// A failing count must surface as a generic 500, never a 200 of zeros.
	require.NoError(t, ta.db.Migrator().DropTable(&model.Property{}))

	resp := ta.request(t, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to fetch stats", decodeBody(t, resp)["error"])
}

type uploadFile struct {
	name        string
	contentType string
	data        []byte
}

func multipartUpload(t *testing.T, files []uploadFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadPropertyImages(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	body, contentType := multipartUpload(t, []uploadFile{
		{name: "kitchen.jpg", contentType: "image/jpeg", data: []byte("fake jpeg bytes")},
		{name: "garden.png", contentType: "image/png", data: []byte("fake png bytes")},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload/property-images", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	urls, ok := result["imageUrls"].([]interface{})
	require.True(t, ok)
	require.Len(t, urls, 2)
	for _, u := range urls {
		assert.True(t, strings.HasPrefix(u.(string), "/uploads/properties/"))
	}
}

func TestUploadRejectsBadFiles(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	body, contentType := multipartUpload(t, []uploadFile{
		{name: "virus.exe", contentType: "application/octet-stream", data: []byte("nope")},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload/property-images", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// No multipart body at all.
	resp = ta.request(t, http.MethodPost, "/api/upload/property-images", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessionExpiryRejected(t *testing.T) {
	ta := setupApp(t)
	token := ta.login(t)

	require.NoError(t, ta.db.Model(&model.Session{}).
		Where("1 = 1").
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	resp := ta.request(t, http.MethodPost, "/api/properties", token, condoPayload())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
