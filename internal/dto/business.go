package dto

import (
	"time"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BusinessSetupRequest carries the setup wizard's collected fields.
// Shape only is enforced by binding; the onboarding service re-validates the
// business rules in a fixed order since it is a trust boundary.
type BusinessSetupRequest struct {
	BusinessName       string               `json:"businessName" binding:"required"`
	Description        string               `json:"description" binding:"required"`
	Location           *domain.Location     `json:"location" binding:"required"`
	WorkingHours       *domain.WorkingHours `json:"workingHours" binding:"required"`
	MainCategory       string               `json:"mainCategory" binding:"required,businesscategory"`
	AffiliateCategory1 *string              `json:"affiliateCategory1"`
	AffiliateCategory2 *string              `json:"affiliateCategory2"`
	AffiliateCategory3 *string              `json:"affiliateCategory3"`
	TargetMarket       string               `json:"targetMarket" binding:"required"`
	TargetAgeRanges    []string             `json:"targetAgeRanges" binding:"required"`
}

// BusinessResponse mirrors domain.Business for API responses.
type BusinessResponse struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"userId"`
	BusinessName       string              `json:"businessName"`
	Description        string              `json:"description"`
	Logo               string              `json:"logo,omitempty"`
	CoverImage         string              `json:"coverImage,omitempty"`
	Location           domain.Location     `json:"location"`
	WorkingHours       domain.WorkingHours `json:"workingHours"`
	MainCategory       string              `json:"mainCategory"`
	AffiliateCategory1 *string             `json:"affiliateCategory1"`
	AffiliateCategory2 *string             `json:"affiliateCategory2"`
	AffiliateCategory3 *string             `json:"affiliateCategory3"`
	TargetMarket       domain.TargetMarket `json:"targetMarket"`
	TargetAgeRanges    []string            `json:"targetAgeRanges"`
	Rating             decimal.Decimal     `json:"rating"`
	ReviewCount        int                 `json:"reviewCount"`
	FollowerCount      int                 `json:"followerCount"`
	ViewCount          int                 `json:"viewCount"`
	Status             string              `json:"status"`
	IsVerified         bool                `json:"isVerified"`
	CreatedAt          time.Time           `json:"createdAt"`
}

// BusinessSetupResponse is returned when onboarding succeeds.
type BusinessSetupResponse struct {
	BusinessProfile BusinessResponse `json:"businessProfile"`
	RewardAmount    decimal.Decimal  `json:"rewardAmount"`
}

// ListBusinessesParams are the optional discovery filters.
// Radius is in kilometers and only applies when both coordinates are set.
type ListBusinessesParams struct {
	Latitude  *float64 `form:"lat"`
	Longitude *float64 `form:"lng"`
	Radius    *float64 `form:"radius"`
	Limit     int      `form:"limit,default=50"`
	Offset    int      `form:"offset,default=0"`
}

// ListBusinessesResponse wraps the discovery listing.
type ListBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// ToBusinessResponse converts a domain.Business to its response DTO.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:                 b.BusinessID,
		UserID:             b.UserID,
		BusinessName:       b.BusinessName,
		Description:        b.Description,
		Logo:               b.Logo,
		CoverImage:         b.CoverImage,
		Location:           b.Location,
		WorkingHours:       b.WorkingHours,
		MainCategory:       b.MainCategory,
		AffiliateCategory1: b.AffiliateCategory1,
		AffiliateCategory2: b.AffiliateCategory2,
		AffiliateCategory3: b.AffiliateCategory3,
		TargetMarket:       b.TargetMarket,
		TargetAgeRanges:    b.TargetAgeRanges,
		Rating:             b.Rating,
		ReviewCount:        b.ReviewCount,
		FollowerCount:      b.FollowerCount,
		ViewCount:          b.ViewCount,
		Status:             string(b.Status),
		IsVerified:         b.IsVerified,
		CreatedAt:          b.CreatedAt,
	}
}

// ToListBusinessesResponse converts a slice of domain businesses.
func ToListBusinessesResponse(businesses []domain.Business) ListBusinessesResponse {
	res := make([]BusinessResponse, len(businesses))
	for i := range businesses {
		res[i] = ToBusinessResponse(&businesses[i])
	}
	return ListBusinessesResponse{Businesses: res}
}
