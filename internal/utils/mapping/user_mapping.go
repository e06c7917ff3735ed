package mapping

import (
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/bbroker-app/bbroker_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:             d.UserID,
		Username:           d.Username,
		Email:              d.Email,
		PasswordHash:       d.PasswordHash,
		FullName:           d.FullName,
		Phone:              d.Phone,
		Bio:                d.Bio,
		ProfilePhoto:       d.ProfilePhoto,
		CoverPhoto:         d.CoverPhoto,
		CurrentProfile:     models.ProfileType(d.CurrentProfile),
		HasBusinessProfile: d.HasBusinessProfile,
		Status:             string(d.Status),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
		LastLoginAt:        d.LastLoginAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:             m.UserID,
		Username:           m.Username,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		FullName:           m.FullName,
		Phone:              m.Phone,
		Bio:                m.Bio,
		ProfilePhoto:       m.ProfilePhoto,
		CoverPhoto:         m.CoverPhoto,
		CurrentProfile:     domain.ProfileType(m.CurrentProfile),
		HasBusinessProfile: m.HasBusinessProfile,
		Status:             domain.UserStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		LastLoginAt:        m.LastLoginAt,
	}
}
