package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account owned by the external identity subsystem. The core only
// reads it; creation, verification and deactivation happen elsewhere.
type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Username        string    `json:"username" gorm:"size:150;uniqueIndex"`
	Email           string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	IsEmailVerified bool      `json:"is_email_verified" gorm:"default:false"`
	IsStaff         bool      `json:"-" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
