package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/everafter/gallery-backend/internal/handler"
	"github.com/everafter/gallery-backend/internal/models"
	"github.com/everafter/gallery-backend/internal/repository"
	"github.com/everafter/gallery-backend/internal/service"
	"github.com/everafter/gallery-backend/pkg/database"
	"github.com/everafter/gallery-backend/pkg/utils"
)

// setupApp builds the full Fiber app over an in-memory SQLite database seeded
// with the default admin and demo customers.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	adminRepo := repository.NewGormAdminRepository(db)
	customerRepo := repository.NewGormCustomerRepository(db)
	settingsRepo := repository.NewGormSettingsRepository(db)
	statsRepo := repository.NewGormStatsRepository(db)
	galleryRepo := repository.NewGormGalleryRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	logger := zap.NewNop()
	authService := service.NewAuthService(adminRepo, customerRepo, settingsRepo, logger)
	customerService := service.NewCustomerService(customerRepo, settingsRepo, statsRepo, logger)
	galleryService := service.NewGalleryService(galleryRepo, logger)
	userService := service.NewUserService(userRepo)

	require.NoError(t, database.Seed(adminRepo, customerService, true, logger))

	validator := utils.NewValidator()
	app := fiber.New()
	handler.RegisterRoutes(app,
		handler.NewAuthHandler(authService, validator),
		handler.NewCustomerHandler(customerService, validator),
		handler.NewGalleryHandler(galleryService, validator),
		handler.NewUserHandler(userService, validator),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw := new(bytes.Buffer)
	_, err = raw.ReadFrom(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw.Bytes()
}

func TestAdminLogin_Endpoint(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/admin/login", fiber.Map{
		"username": "admin",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp models.AdminLoginResponse
	require.NoError(t, json.Unmarshal(raw, &loginResp))
	assert.True(t, loginResp.Success)
	assert.Equal(t, "admin", loginResp.Admin.Username)
	assert.NotContains(t, string(raw), "password")

	resp, _ = doJSON(t, app, http.MethodPost, "/api/admin/login", fiber.Map{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/admin/login", fiber.Map{
		"username": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCustomerLogin_Endpoint(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/customer/login", fiber.Map{
		"username": "john_jane",
		"password": "demo123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp models.CustomerLoginResponse
	require.NoError(t, json.Unmarshal(raw, &loginResp))
	assert.True(t, loginResp.Success)
	assert.Equal(t, "john_jane", loginResp.Customer.Username)
	assert.Equal(t, "john.jane@example.com", loginResp.Customer.Email)
	require.NotNil(t, loginResp.Settings)
	assert.Equal(t, "john_jane's Wedding Gallery", loginResp.Settings.SiteName)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/customer/login", fiber.Map{
		"username": "john_jane",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeactivatedCustomerLogin_Endpoint(t *testing.T) {
	app := setupApp(t)

	var customers []models.CustomerWithStats
	_, raw := doJSON(t, app, http.MethodGet, "/api/admin/customers", nil)
	require.NoError(t, json.Unmarshal(raw, &customers))
	require.NotEmpty(t, customers)

	var johnID uint
	for _, c := range customers {
		if c.Username == "john_jane" {
			johnID = c.ID
		}
	}
	require.NotZero(t, johnID)

	resp, _ := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/customers/%d", johnID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Correct password, deactivated account: still 401.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/customer/login", fiber.Map{
		"username": "john_jane",
		"password": "demo123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateCustomer_Endpoint(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/admin/customers", fiber.Map{
		"username": "new_couple",
		"email":    "new.couple@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.CreateCustomerResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotNil(t, created.Customer)
	assert.True(t, created.Customer.IsActive)

	// Settings and stats exist immediately after creation.
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/customer/%d/settings", created.Customer.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/customer/%d/profile", created.Customer.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var profile models.CustomerProfile
	require.NoError(t, json.Unmarshal(raw, &profile))
	require.NotNil(t, profile.Settings)
	require.NotNil(t, profile.Stats)
	assert.Equal(t, created.Customer.ID, profile.Stats.CustomerID)
}

func TestCreateCustomerValidation_Endpoint(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/admin/customers", fiber.Map{
		"username": "bad",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(raw, &apiErr))
	assert.NotEmpty(t, apiErr.Message)
	require.NotEmpty(t, apiErr.Errors)

	fields := make([]string, 0, len(apiErr.Errors))
	for _, fe := range apiErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestCreateCustomerDuplicate_Endpoint(t *testing.T) {
	app := setupApp(t)

	_, raw := doJSON(t, app, http.MethodGet, "/api/admin/customers", nil)
	var before []models.CustomerWithStats
	require.NoError(t, json.Unmarshal(raw, &before))

	resp, raw := doJSON(t, app, http.MethodPost, "/api/admin/customers", fiber.Map{
		"username": "john_jane",
		"email":    "fresh@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(raw, &apiErr))
	assert.Equal(t, "Username already exists", apiErr.Message)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/admin/customers", fiber.Map{
		"username": "fresh_name",
		"email":    "john.jane@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &apiErr))
	assert.Equal(t, "Email already exists", apiErr.Message)

	_, raw = doJSON(t, app, http.MethodGet, "/api/admin/customers", nil)
	var after []models.CustomerWithStats
	require.NoError(t, json.Unmarshal(raw, &after))
	assert.Len(t, after, len(before), "failed creates must not mutate storage")
}

func TestUpdateAndDeactivateUnknownCustomer_Endpoint(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/api/admin/customers/9999", fiber.Map{
		"email": "ghost@example.com",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/admin/customers/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSettingsAndStats_Endpoints(t *testing.T) {
	app := setupApp(t)

	_, raw := doJSON(t, app, http.MethodGet, "/api/admin/customers", nil)
	var customers []models.CustomerWithStats
	require.NoError(t, json.Unmarshal(raw, &customers))
	require.NotEmpty(t, customers)
	id := customers[0].ID

	resp, raw := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/customer/%d/settings", id), fiber.Map{
		"site_name":     "Our Big Day",
		"primary_color": "#112233",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var settingsResp models.UpdateSettingsResponse
	require.NoError(t, json.Unmarshal(raw, &settingsResp))
	assert.Equal(t, "Our Big Day", settingsResp.Settings.SiteName)
	assert.Equal(t, "#112233", settingsResp.Settings.PrimaryColor)
	assert.Equal(t, models.DefaultAccentColor, settingsResp.Settings.AccentColor)

	resp, raw = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/customer/%d/stats", id), fiber.Map{
		"total_views": 42,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var statsResp models.UpdateStatsResponse
	require.NoError(t, json.Unmarshal(raw, &statsResp))
	assert.Equal(t, 42, statsResp.Stats.TotalViews)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/customer/9999/settings", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/customer/9999/stats", fiber.Map{"total_views": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGalleryLifecycle_Endpoints(t *testing.T) {
	app := setupApp(t)

	_, raw := doJSON(t, app, http.MethodGet, "/api/admin/customers", nil)
	var customers []models.CustomerWithStats
	require.NoError(t, json.Unmarshal(raw, &customers))
	require.NotEmpty(t, customers)
	customerID := customers[0].ID

	// Listing is empty, never an error.
	resp, raw := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/customer/%d/galleries", customerID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var galleries []models.WeddingGallery
	require.NoError(t, json.Unmarshal(raw, &galleries))
	assert.Empty(t, galleries)

	// Create a draft.
	resp, raw = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/customer/%d/galleries", customerID), fiber.Map{
		"slug":         "a-b",
		"title":        "T",
		"couple_names": "A & B",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var gallery models.WeddingGallery
	require.NoError(t, json.Unmarshal(raw, &gallery))
	assert.Equal(t, "a-b", gallery.Slug)
	assert.Equal(t, customerID, gallery.CustomerID)
	assert.False(t, gallery.IsPublished)

	// Drafts and unknown slugs are indistinguishable on the public route.
	respDraft, rawDraft := doJSON(t, app, http.MethodGet, "/api/gallery/a-b", nil)
	respMissing, rawMissing := doJSON(t, app, http.MethodGet, "/api/gallery/no-such", nil)
	assert.Equal(t, http.StatusNotFound, respDraft.StatusCode)
	assert.Equal(t, http.StatusNotFound, respMissing.StatusCode)
	assert.Equal(t, string(rawMissing), string(rawDraft))

	// Duplicate slug fails and the gallery count is unchanged.
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/customer/%d/galleries", customerID), fiber.Map{
		"slug":         "a-b",
		"title":        "Other",
		"couple_names": "C & D",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/customer/%d/galleries", customerID), nil)
	require.NoError(t, json.Unmarshal(raw, &galleries))
	assert.Len(t, galleries, 1)

	// Publish, then partial-update the description only.
	resp, raw = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/galleries/%d", gallery.ID), fiber.Map{
		"is_published": true,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var published models.WeddingGallery
	require.NoError(t, json.Unmarshal(raw, &published))
	assert.True(t, published.IsPublished)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/gallery/a-b", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.WeddingGallery
	require.NoError(t, json.Unmarshal(raw, &fetched))
	assert.Equal(t, gallery.ID, fetched.ID)

	resp, raw = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/galleries/%d", gallery.ID), fiber.Map{
		"description": "x",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.WeddingGallery
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "x", updated.Description)
	assert.Equal(t, "a-b", updated.Slug)
	assert.Equal(t, "T", updated.Title)
	assert.Equal(t, "A & B", updated.CoupleNames)

	// Delete, then everything 404s.
	resp, raw = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/galleries/%d", gallery.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted models.MessageResponse
	require.NoError(t, json.Unmarshal(raw, &deleted))
	assert.Contains(t, deleted.Message, "deleted successfully")

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/galleries/%d", gallery.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, "/api/gallery/a-b", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGalleryValidation_Endpoint(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/customer/1/galleries", fiber.Map{
		"slug": "Bad Slug!",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(raw, &apiErr))
	require.NotEmpty(t, apiErr.Errors)

	fields := make([]string, 0, len(apiErr.Errors))
	for _, fe := range apiErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "slug")
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "couplenames")
}

func TestGalleryUpdateEmptySlug_Endpoint(t *testing.T) {
	app := setupApp(t)

	_, raw := doJSON(t, app, http.MethodGet, "/api/admin/customers", nil)
	var customers []models.CustomerWithStats
	require.NoError(t, json.Unmarshal(raw, &customers))
	require.NotEmpty(t, customers)

	resp, raw := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/customer/%d/galleries", customers[0].ID), fiber.Map{
		"slug":         "keeper",
		"title":        "T",
		"couple_names": "A & B",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var gallery models.WeddingGallery
	require.NoError(t, json.Unmarshal(raw, &gallery))

	// Blanking the slug must be rejected, not applied.
	resp, raw = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/galleries/%d", gallery.ID), fiber.Map{
		"slug": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(raw, &apiErr))
	require.NotEmpty(t, apiErr.Errors)
	assert.Equal(t, "slug", apiErr.Errors[0].Field)

	_, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/customer/%d/galleries", customers[0].ID), nil)
	var galleries []models.WeddingGallery
	require.NoError(t, json.Unmarshal(raw, &galleries))
	require.Len(t, galleries, 1)
	assert.Equal(t, "keeper", galleries[0].Slug)
}

func TestLegacyUserCreate_Endpoint(t *testing.T) {
	app := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{
		"username": "legacy_user",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, json.Unmarshal(raw, &user))
	assert.Equal(t, "legacy_user", user.Username)
	assert.NotContains(t, string(raw), "secret1")

	resp, _ = doJSON(t, app, http.MethodPost, "/api/users", fiber.Map{
		"username": "legacy_user",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
