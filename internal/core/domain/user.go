package domain

import "time"

// ProfileType is the persona a user is currently operating as.
type ProfileType string

const (
	ProfileTypeUser     ProfileType = "user"
	ProfileTypeBusiness ProfileType = "business"
)

// IsValid reports whether the value is one of the two known personas.
func (p ProfileType) IsValid() bool {
	return p == ProfileTypeUser || p == ProfileTypeBusiness
}

// UserStatus is the lifecycle status of a user account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

// User represents a person using the application. A user holds exactly one
// active persona (CurrentProfile) at a time; the business persona is only
// reachable once HasBusinessProfile is true.
type User struct {
	UserID             string      `json:"userID"` // Primary Key (UUID)
	Username           string      `json:"username"`
	Email              string      `json:"email"`
	PasswordHash       string      `json:"-"`
	FullName           string      `json:"fullName"`
	Phone              string      `json:"phone"`
	Bio                string      `json:"bio"`
	ProfilePhoto       string      `json:"profilePhoto"`
	CoverPhoto         string      `json:"coverPhoto"`
	CurrentProfile     ProfileType `json:"currentProfile"`
	HasBusinessProfile bool        `json:"hasBusinessProfile"`
	Status             UserStatus  `json:"status"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
	LastLoginAt        *time.Time  `json:"lastLoginAt,omitempty"`
}
