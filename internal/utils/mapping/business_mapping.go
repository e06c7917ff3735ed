package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/bbroker-app/bbroker_backend/internal/models"
)

// ToModelBusiness converts a domain Business to a model Business, marshalling
// the jsonb columns.
func ToModelBusiness(d domain.Business) (models.Business, error) {
	locationJSON, err := json.Marshal(d.Location)
	if err != nil {
		return models.Business{}, fmt.Errorf("failed to marshal location: %w", err)
	}
	workingHoursJSON, err := json.Marshal(d.WorkingHours)
	if err != nil {
		return models.Business{}, fmt.Errorf("failed to marshal working hours: %w", err)
	}
	ageRangesJSON, err := json.Marshal(d.TargetAgeRanges)
	if err != nil {
		return models.Business{}, fmt.Errorf("failed to marshal target age ranges: %w", err)
	}

	return models.Business{
		BusinessID:          d.BusinessID,
		UserID:              d.UserID,
		BusinessName:        d.BusinessName,
		Description:         d.Description,
		Logo:                d.Logo,
		CoverImage:          d.CoverImage,
		LocationJSON:        locationJSON,
		WorkingHoursJSON:    workingHoursJSON,
		MainCategory:        d.MainCategory,
		AffiliateCategory1:  d.AffiliateCategory1,
		AffiliateCategory2:  d.AffiliateCategory2,
		AffiliateCategory3:  d.AffiliateCategory3,
		TargetMarket:        string(d.TargetMarket),
		TargetAgeRangesJSON: ageRangesJSON,
		Rating:              d.Rating,
		ReviewCount:         d.ReviewCount,
		FollowerCount:       d.FollowerCount,
		ViewCount:           d.ViewCount,
		Status:              string(d.Status),
		IsVerified:          d.IsVerified,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
		LastActiveAt:        d.LastActiveAt,
	}, nil
}

// ToDomainBusiness converts a model Business to a domain Business,
// unmarshalling the jsonb columns.
func ToDomainBusiness(m models.Business) (domain.Business, error) {
	var location domain.Location
	if len(m.LocationJSON) > 0 {
		if err := json.Unmarshal(m.LocationJSON, &location); err != nil {
			return domain.Business{}, fmt.Errorf("failed to unmarshal location for business %s: %w", m.BusinessID, err)
		}
	}
	var workingHours domain.WorkingHours
	if len(m.WorkingHoursJSON) > 0 {
		if err := json.Unmarshal(m.WorkingHoursJSON, &workingHours); err != nil {
			return domain.Business{}, fmt.Errorf("failed to unmarshal working hours for business %s: %w", m.BusinessID, err)
		}
	}
	var ageRanges []string
	if len(m.TargetAgeRangesJSON) > 0 {
		if err := json.Unmarshal(m.TargetAgeRangesJSON, &ageRanges); err != nil {
			return domain.Business{}, fmt.Errorf("failed to unmarshal target age ranges for business %s: %w", m.BusinessID, err)
		}
	}

	return domain.Business{
		BusinessID:         m.BusinessID,
		UserID:             m.UserID,
		BusinessName:       m.BusinessName,
		Description:        m.Description,
		Logo:               m.Logo,
		CoverImage:         m.CoverImage,
		Location:           location,
		WorkingHours:       workingHours,
		MainCategory:       m.MainCategory,
		AffiliateCategory1: m.AffiliateCategory1,
		AffiliateCategory2: m.AffiliateCategory2,
		AffiliateCategory3: m.AffiliateCategory3,
		TargetMarket:       domain.TargetMarket(m.TargetMarket),
		TargetAgeRanges:    ageRanges,
		Rating:             m.Rating,
		ReviewCount:        m.ReviewCount,
		FollowerCount:      m.FollowerCount,
		ViewCount:          m.ViewCount,
		Status:             domain.BusinessStatus(m.Status),
		IsVerified:         m.IsVerified,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		LastActiveAt:       m.LastActiveAt,
	}, nil
}
