package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fitclub_backend/database"
	"fitclub_backend/internal/app"
	"fitclub_backend/internal/config"
	"fitclub_backend/internal/logger"
	"fitclub_backend/pkg/contextkeys"
)

// TestServer drives the full router against a real database. Every
// request runs inside the transaction handed to SendRequest, so tests
// stay isolated and nothing is left behind after rollback.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer connects to TEST_DATABASE_URL, migrates the schema and
// builds the router. Tests are skipped when the variable is not set.
func NewTestServer(t *testing.T) *TestServer {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set, skipping integration tests")
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.DSN = dsn
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.TTLMinutes = 60
	cfg.CORS.FrontendURL = "http://localhost:5173"
	config.AppConfig = cfg

	gin.SetMode(gin.TestMode)
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to the test database (%s): %v", dsn, err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate the test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	return &TestServer{Router: router, DB: db}
}

func (ts *TestServer) Close() {
	sqlDB, err := ts.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// BeginTransaction opens the transaction a test runs inside.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Failed to begin test transaction: %v", tx.Error)
	}
	return tx
}

func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	tx.Rollback()
}

// SendRequest serves the request in-process with the transaction placed on
// the request context, where DBMiddleware picks it up.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	ts.Router.ServeHTTP(recorder, req)

	res := recorder.Result()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}
