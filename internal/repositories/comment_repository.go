package repositories

import (
	"errors"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetActiveCommentByID(id uint) (*models.Comment, error)
	ListActiveByPostID(postID uint) ([]models.Comment, error)
	SoftDeleteComment(id uint) (bool, error)
	CountActiveByPostID(postID uint) (int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *PostgresCommentRepository) GetActiveCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("status = ?", models.StatusActive).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("comment %d", id)
		}
		return nil, err
	}
	return &comment, nil
}

// ListActiveByPostID returns a post's active comments, oldest first.
func (r *PostgresCommentRepository) ListActiveByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ? AND status = ?", postID, models.StatusActive).
		Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// SoftDeleteComment tombstones a comment. The status guard in the WHERE
// clause means only one of two racing deletes reports flipped=true, which is
// what keeps the post's comment counter from being decremented twice.
func (r *PostgresCommentRepository) SoftDeleteComment(id uint) (bool, error) {
	res := r.db.Model(&models.Comment{}).
		Where("id = ? AND status = ?", id, models.StatusActive).
		Update("status", models.StatusDeleted)
	return res.RowsAffected > 0, res.Error
}

func (r *PostgresCommentRepository) CountActiveByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("post_id = ? AND status = ?", postID, models.StatusActive).
		Count(&count).Error
	return count, err
}
