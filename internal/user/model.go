package user

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Profile holds per-user display data and the credits balance accrued
// from confirmed bookings.
type Profile struct {
	ID              string         `db:"id" json:"id"`
	FullName        string         `db:"full_name" json:"full_name"`
	AvatarURL       *string        `db:"avatar_url" json:"avatar_url,omitempty"`
	PreferredSports pq.StringArray `db:"preferred_sports" json:"preferred_sports"`
	Credits         float64        `db:"credits" json:"credits"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=player host"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type UpdateProfileRequest struct {
	FullName        *string  `json:"full_name,omitempty"`
	AvatarURL       *string  `json:"avatar_url,omitempty"`
	PreferredSports []string `json:"preferred_sports,omitempty"`
}
