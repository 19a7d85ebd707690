package repositories

import "gorm.io/gorm"

// Store bundles every repository over one database handle. It is the storage
// port the services depend on; Transaction rebinds the whole bundle to a
// transactional handle so a row write and its counter adjustment commit as a
// single unit.
type Store struct {
	db *gorm.DB

	Users         UserRepository
	Profiles      ProfileRepository
	Posts         PostRepository
	Follows       FollowRepository
	Likes         LikeRepository
	Comments      CommentRepository
	Notifications NotificationRepository
}

// NewStore creates a Store with Postgres-backed repositories.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         NewPostgresUserRepository(db),
		Profiles:      NewPostgresProfileRepository(db),
		Posts:         NewPostgresPostRepository(db),
		Follows:       NewPostgresFollowRepository(db),
		Likes:         NewPostgresLikeRepository(db),
		Comments:      NewPostgresCommentRepository(db),
		Notifications: NewPostgresNotificationRepository(db),
	}
}

// Transaction runs fn against a Store bound to a single database transaction.
// Returning an error rolls everything back.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
