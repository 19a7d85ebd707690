package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/s4shantanu/socialconnect/internal/repositories"
	"github.com/s4shantanu/socialconnect/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full engagement core over an in-memory database, with the
// notification fan-out subscribed the same way the router does it.
type testEnv struct {
	db            *gorm.DB
	store         *repositories.Store
	follow        *services.FollowService
	engagement    *services.EngagementService
	feed          *services.FeedService
	notifications *services.NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every session sees the same :memory: database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Follow{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
	)
	require.NoError(t, err)

	store := repositories.NewStore(db)
	events := services.NewEmitter()
	notifications := services.NewNotificationService(store)
	events.Subscribe(notifications)

	return &testEnv{
		db:            db,
		store:         store,
		follow:        services.NewFollowService(store, events),
		engagement:    services.NewEngagementService(store, events),
		feed:          services.NewFeedService(store),
		notifications: notifications,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		IsActive: true,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createPost(t *testing.T, authorID uint, content string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		AuthorID:  authorID,
		Content:   content,
		Category:  models.CategoryGeneral,
		Status:    models.StatusActive,
		CreatedAt: createdAt,
	}
	require.NoError(t, e.db.Create(post).Error)
	return post
}

func (e *testEnv) reloadPost(t *testing.T, id uint) *models.Post {
	t.Helper()
	var post models.Post
	require.NoError(t, e.db.First(&post, id).Error)
	return &post
}

func (e *testEnv) notificationsFor(t *testing.T, recipientID uint) []models.Notification {
	t.Helper()
	ns, _, err := e.notifications.List(context.Background(), recipientID, 1, 50)
	require.NoError(t, err)
	return ns
}
