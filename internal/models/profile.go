package models

// Profile visibility levels
const (
	VisibilityPublic    = "public"
	VisibilityPrivate   = "private"
	VisibilityFollowers = "followers"
)

// Profile holds the display attributes attached 1:1 to a User. It is created
// lazily the first time a user's profile is read.
type Profile struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	UserID     uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Bio        string `json:"bio" gorm:"size:160"`
	AvatarURL  string `json:"avatar_url"`
	Website    string `json:"website"`
	Location   string `json:"location" gorm:"size:120"`
	Visibility string `json:"visibility" gorm:"size:20;default:public"`
}

// UpdateProfileRequest defines the request body for updating the caller's profile
type UpdateProfileRequest struct {
	Bio        string `json:"bio,omitempty" validate:"omitempty,max=160"`
	AvatarURL  string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Website    string `json:"website,omitempty" validate:"omitempty,url"`
	Location   string `json:"location,omitempty" validate:"omitempty,max=120"`
	Visibility string `json:"visibility,omitempty" validate:"omitempty,oneof=public private followers"`
}

// ProfileResponse is a profile enriched with the derived relation counts.
type ProfileResponse struct {
	Profile
	Username       string `json:"username"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	PostsCount     int64  `json:"posts_count"`
}
