package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/s4shantanu/socialconnect/internal/handlers"
	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/s4shantanu/socialconnect/internal/repositories"
	"github.com/s4shantanu/socialconnect/internal/services"
	"github.com/s4shantanu/socialconnect/internal/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// authAs injects verified-looking claims, standing in for the JWT middleware.
func authAs(userID uint) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user", &models.JwtCustomClaims{UserID: userID, Username: fmt.Sprintf("user%d", userID)})
			return next(c)
		}
	}
}

type apiEnv struct {
	db    *gorm.DB
	store *repositories.Store
	like  *handlers.LikeHandler
	follw *handlers.FollowHandler
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Profile{}, &models.Follow{}, &models.Post{},
		&models.Like{}, &models.Comment{}, &models.Notification{},
	))

	store := repositories.NewStore(db)
	events := services.NewEmitter()
	events.Subscribe(services.NewNotificationService(store))

	return &apiEnv{
		db:    db,
		store: store,
		like:  handlers.NewLikeHandler(services.NewEngagementService(store, events)),
		follw: handlers.NewFollowHandler(services.NewFollowService(store, events)),
	}
}

func (a *apiEnv) router(userID uint) *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	api := e.Group("/api/v1")
	api.Use(authAs(userID))
	a.like.RegisterLikeRoutes(api)
	a.follw.RegisterFollowRoutes(api)
	return e
}

func (a *apiEnv) seedUser(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", IsActive: true}
	require.NoError(t, a.db.Create(u).Error)
	return u
}

func (a *apiEnv) seedPost(t *testing.T, authorID uint) *models.Post {
	t.Helper()
	p := &models.Post{AuthorID: authorID, Content: "hello", Status: models.StatusActive}
	require.NoError(t, a.db.Create(p).Error)
	return p
}

func doRequest(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLikeEndpointIdempotent(t *testing.T) {
	env := newAPIEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	post := env.seedPost(t, bob.ID)

	e := env.router(alice.ID)
	path := fmt.Sprintf("/api/v1/posts/%d/like", post.ID)

	rec := doRequest(e, http.MethodPost, path)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["liked"])

	// Second like: still success, flagged as already liked.
	rec = doRequest(e, http.MethodPost, path)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, "already liked", body["detail"])

	rec = doRequest(e, http.MethodDelete, path)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["liked"])
}

func TestLikeEndpointUnknownPost(t *testing.T) {
	env := newAPIEnv(t)
	alice := env.seedUser(t, "alice")

	rec := doRequest(env.router(alice.ID), http.MethodPost, "/api/v1/posts/9999/like")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFollowEndpoint(t *testing.T) {
	env := newAPIEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	e := env.router(alice.ID)

	rec := doRequest(e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", bob.ID))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", bob.ID))
	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "already following", body["detail"])

	// Self-follow is rejected outright.
	rec = doRequest(e, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/follow", alice.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d/follow", bob.ID))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["deleted"])
}
