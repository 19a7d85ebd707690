package repositories

import (
	"errors"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. The counter
// adjustment methods are relative updates and may only be called from inside
// the engagement service's transactions; nothing else may touch the counters.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetActivePostByID(id uint) (*models.Post, error)
	ListActivePosts(offset, limit int) ([]models.Post, int64, error)
	ListFeedPosts(authorIDs []uint, offset, limit int) ([]models.Post, int64, error)
	CountActiveByAuthor(authorID uint) (int64, error)
	UpdatePost(post *models.Post) error
	SoftDeletePost(id uint) (bool, error)
	AdjustLikeCount(postID uint, delta int) error
	AdjustCommentCount(postID uint, delta int) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID fetches a post regardless of status. Audit/admin paths only.
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("post %d", id)
		}
		return nil, err
	}
	return &post, nil
}

// GetActivePostByID fetches a post, treating soft-deleted ones as absent.
func (r *PostgresPostRepository) GetActivePostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("status = ?", models.StatusActive).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("post %d", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostgresPostRepository) ListActivePosts(offset, limit int) ([]models.Post, int64, error) {
	cond := func() *gorm.DB { return r.db.Where("status = ?", models.StatusActive) }
	return r.pagedPosts(cond, offset, limit)
}

// ListFeedPosts returns active posts by any of the given authors, newest
// first. Ties on created_at break by id descending so pagination stays
// deterministic across pages.
func (r *PostgresPostRepository) ListFeedPosts(authorIDs []uint, offset, limit int) ([]models.Post, int64, error) {
	if len(authorIDs) == 0 {
		return nil, 0, nil
	}
	cond := func() *gorm.DB {
		return r.db.Where("status = ? AND author_id IN ?", models.StatusActive, authorIDs)
	}
	return r.pagedPosts(cond, offset, limit)
}

// pagedPosts builds the condition fresh for the count and the page query so
// the two finishers never share one statement.
func (r *PostgresPostRepository) pagedPosts(cond func() *gorm.DB, offset, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := cond().Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []models.Post
	err := cond().Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

func (r *PostgresPostRepository) CountActiveByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Where("author_id = ? AND status = ?", authorID, models.StatusActive).
		Count(&count).Error
	return count, err
}

func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// SoftDeletePost tombstones a post. Returns whether the row actually flipped,
// so a second delete is a no-op rather than an error.
func (r *PostgresPostRepository) SoftDeletePost(id uint) (bool, error) {
	res := r.db.Model(&models.Post{}).
		Where("id = ? AND status = ?", id, models.StatusActive).
		Update("status", models.StatusDeleted)
	return res.RowsAffected > 0, res.Error
}

// AdjustLikeCount applies a relative update so concurrent likes on the same
// post cannot lose increments.
func (r *PostgresPostRepository) AdjustLikeCount(postID uint, delta int) error {
	return r.db.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
}

// AdjustCommentCount applies a relative update, same contract as
// AdjustLikeCount.
func (r *PostgresPostRepository) AdjustCommentCount(postID uint, delta int) error {
	return r.db.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + ?", delta)).Error
}
