package repositories

import (
	"errors"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	ListActiveUsers(search string) ([]models.User, error)
	ListUsersByIDs(ids []uint) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user %d", id)
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user %q", username)
		}
		return nil, err
	}
	return &user, nil
}

// ListActiveUsers returns active users, optionally filtered by a username
// substring match.
func (r *PostgresUserRepository) ListActiveUsers(search string) ([]models.User, error) {
	var users []models.User
	q := r.db.Where("is_active = ?", true)
	if search != "" {
		q = q.Where("username LIKE ?", "%"+search+"%")
	}
	err := q.Order("username").Find(&users).Error
	return users, err
}

func (r *PostgresUserRepository) ListUsersByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
