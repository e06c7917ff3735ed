package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business represents a row in the businesses table. Location, working hours
// and target age ranges are stored as jsonb; the repository marshals them.
type Business struct {
	BusinessID          string          `db:"id"`
	UserID              string          `db:"user_id"`
	BusinessName        string          `db:"business_name"`
	Description         string          `db:"description"`
	Logo                string          `db:"logo"`
	CoverImage          string          `db:"cover_image"`
	LocationJSON        []byte          `db:"location"`
	WorkingHoursJSON    []byte          `db:"working_hours"`
	MainCategory        string          `db:"main_category"`
	AffiliateCategory1  *string         `db:"affiliate_category_1"`
	AffiliateCategory2  *string         `db:"affiliate_category_2"`
	AffiliateCategory3  *string         `db:"affiliate_category_3"`
	TargetMarket        string          `db:"target_market"`
	TargetAgeRangesJSON []byte          `db:"target_age_ranges"`
	Rating              decimal.Decimal `db:"rating"`
	ReviewCount         int             `db:"review_count"`
	FollowerCount       int             `db:"follower_count"`
	ViewCount           int             `db:"view_count"`
	Status              string          `db:"status"`
	IsVerified          bool            `db:"is_verified"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
	LastActiveAt        *time.Time      `db:"last_active_at"`
}
