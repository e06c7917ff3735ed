package dto

import (
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
)

// LoginRequest is the mock-auth login body. A first login with a new
// username registers the user.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
}

// UserResponse mirrors domain.User for API responses (password excluded).
type UserResponse struct {
	ID                 string             `json:"id"`
	Username           string             `json:"username"`
	Email              string             `json:"email"`
	FullName           string             `json:"fullName"`
	Phone              string             `json:"phone,omitempty"`
	Bio                string             `json:"bio"`
	ProfilePhoto       string             `json:"profilePhoto"`
	CoverPhoto         string             `json:"coverPhoto,omitempty"`
	CurrentProfile     domain.ProfileType `json:"currentProfile"`
	HasBusinessProfile bool               `json:"hasBusinessProfile"`
	Status             string             `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// LoginResponse carries the user plus a signed access token.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                 u.UserID,
		Username:           u.Username,
		Email:              u.Email,
		FullName:           u.FullName,
		Phone:              u.Phone,
		Bio:                u.Bio,
		ProfilePhoto:       u.ProfilePhoto,
		CoverPhoto:         u.CoverPhoto,
		CurrentProfile:     u.CurrentProfile,
		HasBusinessProfile: u.HasBusinessProfile,
		Status:             string(u.Status),
		CreatedAt:          u.CreatedAt,
	}
}
