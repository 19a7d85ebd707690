package repositories

import (
	"github.com/s4shantanu/socialconnect/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetOrCreateByUserID(userID uint) (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetOrCreateByUserID fetches the profile for a user, creating an empty one
// on first access. Profiles never exist independently of their user.
func (r *PostgresProfileRepository) GetOrCreateByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where(models.Profile{UserID: userID}).
		Attrs(models.Profile{Visibility: models.VisibilityPublic}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) UpdateProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
