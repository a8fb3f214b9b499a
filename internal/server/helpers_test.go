package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret-key-long-enough-for-hmac",
		Port:                 "0",
		Env:                  "test",
		PageSize:             10,
		IndexCacheTTLSeconds: 20,
	}
}

// setupTestServer builds a Server over an in-memory sqlite DB and an
// optional Redis client, with routes mounted on a bare Fiber app.
func setupTestServer(t *testing.T, redisClient *redis.Client) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	s, err := NewServerWithDeps(testConfig(), db, redisClient)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// createUser inserts a user directly and returns it with a bearer token.
// Tests that exercise the signup/login flow itself go through the handlers.
func createUser(t *testing.T, s *Server, username string) (*models.User, string) {
	t.Helper()

	user := &models.User{Username: username, Email: username + "@example.com", Password: "pw"}
	require.NoError(t, s.db.Create(user).Error)

	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)
	return user, token
}

func createGroup(t *testing.T, s *Server, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Title: "Group " + slug, Slug: slug, Description: "test group"}
	require.NoError(t, s.db.Create(group).Error)
	return group
}

// doJSON performs a request against the app, optionally authenticated.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
