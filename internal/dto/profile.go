package dto

import (
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
)

// UserSummary is the trimmed user payload embedded in profile status responses.
type UserSummary struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	ProfilePhoto string `json:"profilePhoto"`
}

// ProfileStatusResponse reports the caller's active persona and business profile.
type ProfileStatusResponse struct {
	CurrentProfile     domain.ProfileType `json:"currentProfile"`
	HasBusinessProfile bool               `json:"hasBusinessProfile"`
	BusinessProfile    *BusinessResponse  `json:"businessProfile"`
	User               UserSummary        `json:"user"`
}

// SwitchProfileRequest asks to activate one of the two personas.
type SwitchProfileRequest struct {
	ProfileType string `json:"profileType" binding:"required,profiletype"`
}

// SwitchProfileResponse is returned on a successful switch (or no-op).
type SwitchProfileResponse struct {
	Success        bool               `json:"success"`
	CurrentProfile domain.ProfileType `json:"currentProfile"`
	Message        string             `json:"message"`
}

// ToUserSummary converts a domain.User to the trimmed summary payload.
func ToUserSummary(u *domain.User) UserSummary {
	return UserSummary{
		ID:           u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		ProfilePhoto: u.ProfilePhoto,
	}
}
