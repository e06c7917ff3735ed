package models

import "time"

// ProfileType mirrors the profile_type enum in the database.
type ProfileType string

const (
	ProfileTypeUser     ProfileType = "user"
	ProfileTypeBusiness ProfileType = "business"
)

// User represents a row in the users table.
type User struct {
	UserID             string      `db:"id"`
	Username           string      `db:"username"`
	Email              string      `db:"email"`
	PasswordHash       string      `db:"password"`
	FullName           string      `db:"full_name"`
	Phone              string      `db:"phone"`
	Bio                string      `db:"bio"`
	ProfilePhoto       string      `db:"profile_photo"`
	CoverPhoto         string      `db:"cover_photo"`
	CurrentProfile     ProfileType `db:"current_profile"`
	HasBusinessProfile bool        `db:"has_business_profile"`
	Status             string      `db:"status"`
	CreatedAt          time.Time   `db:"created_at"`
	UpdatedAt          time.Time   `db:"updated_at"`
	LastLoginAt        *time.Time  `db:"last_login_at"`
}
