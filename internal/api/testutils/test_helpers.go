package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/xGiancox/Barberiaapp/internal/api"
	"github.com/xGiancox/Barberiaapp/internal/config"
	"github.com/xGiancox/Barberiaapp/internal/earnings"
	"github.com/xGiancox/Barberiaapp/internal/models"
	"github.com/xGiancox/Barberiaapp/internal/repository"
	"github.com/xGiancox/Barberiaapp/internal/service"
)

// TestContext holds all dependencies for tests
type TestContext struct {
	Router     *gin.Engine
	Repository repository.Repository
	Service    service.Service
	JWTSecret  []byte
	DB         *sqlx.DB

	OwnerID   string
	OwnerJWT  string
	BarberID  string
	BarberJWT string

	dbPath string
}

// SetupTestContext creates a new test context backed by a temporary sqlite
// database, with the seeded owner and one barber account ready to use.
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "barberia-test-*.db")
	assert.NoError(t, err, "Failed to create temp database file")
	tmpFile.Close()

	cfg := config.LoadConfig()
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLitePath = tmpFile.Name()
	cfg.Auth.JWTSecret = "test-secret-key"

	// Set up database (creates schema and seeds the owner account)
	db, err := config.SetupDatabase(cfg)
	assert.NoError(t, err, "Failed to set up test database")

	// Create repository
	repo := repository.NewSQLRepository(db)

	// Create service
	svc := service.NewDefaultService(repo, cfg.Auth.JWTSecret)

	// Create API handler
	handler := api.NewHandler(svc)

	// Set up Gin router
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Add middleware for JWT secret
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(cfg.Auth.JWTSecret))
		c.Next()
	})

	// Set up routes
	handler.SetupRoutes(router)

	owner, err := repo.GetUserByEmail(context.Background(), cfg.Seed.OwnerEmail)
	assert.NoError(t, err, "Failed to load seeded owner")
	assert.NotNil(t, owner, "Seeded owner account missing")

	barberID := createTestBarber(t, repo)

	return &TestContext{
		Router:     router,
		Repository: repo,
		Service:    svc,
		JWTSecret:  []byte(cfg.Auth.JWTSecret),
		DB:         db,
		OwnerID:    owner.ID,
		OwnerJWT:   signJWT(t, cfg.Auth.JWTSecret, owner.ID, earnings.RoleOwner),
		BarberID:   barberID,
		BarberJWT:  signJWT(t, cfg.Auth.JWTSecret, barberID, earnings.RoleBarber),
		dbPath:     tmpFile.Name(),
	}
}

// CleanupTestContext cleans up test resources
func CleanupTestContext(tc *TestContext) {
	if tc.DB != nil {
		tc.DB.Close()
	}
	if tc.dbPath != "" {
		os.Remove(tc.dbPath)
	}
}

// Helper functions
func createTestBarber(t *testing.T, repo repository.Repository) string {
	t.Helper()

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("testpassword"), bcrypt.DefaultCost)

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     "barber@example.com",
		Name:      "Test Barber",
		Password:  string(hashedPassword),
		Role:      earnings.RoleBarber,
		CreatedAt: time.Now().UTC(),
	}

	err := repo.CreateUser(context.Background(), user)
	assert.NoError(t, err, "Failed to create test barber")

	return user.ID
}

func signJWT(t *testing.T, secret, userID string, role earnings.Role) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	assert.NoError(t, err, "Failed to generate JWT token")

	return tokenString
}

// PerformRequest executes an HTTP request against the router
func PerformRequest(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer

	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// AuthHeaders returns headers with Authorization token
func AuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}

// CreateCut records a haircut through the API and fails the test on any
// non-201 response.
func CreateCut(t *testing.T, tc *TestContext, token, date string, price float64, quantity int) models.HairCut {
	t.Helper()

	w := PerformRequest(tc.Router, http.MethodPost, "/api/cuts", models.CreateHairCutRequest{
		DateCut:  date,
		Price:    price,
		Quantity: quantity,
	}, AuthHeaders(token))
	assert.Equal(t, http.StatusCreated, w.Code, "CreateCut failed: %s", w.Body.String())

	var resp models.HairCutResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Cut
}

// Date returns today+offsetDays as a YYYY-MM-DD string in UTC.
func Date(offsetDays int) string {
	return time.Now().UTC().AddDate(0, 0, offsetDays).Format(earnings.DateLayout)
}
