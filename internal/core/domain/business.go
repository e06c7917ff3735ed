package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessStatus is the lifecycle status of a business profile.
type BusinessStatus string

const (
	BusinessStatusActive              BusinessStatus = "active"
	BusinessStatusInactive            BusinessStatus = "inactive"
	BusinessStatusPendingVerification BusinessStatus = "pending_verification"
	BusinessStatusVerified            BusinessStatus = "verified"
	BusinessStatusSuspended           BusinessStatus = "suspended"
)

// TargetMarket is the geographic tier a business aims to serve.
type TargetMarket string

const (
	TargetMarketNeighborhood TargetMarket = "neighborhood"
	TargetMarketLocal        TargetMarket = "local"
	TargetMarketRegional     TargetMarket = "regional"
	TargetMarketNational     TargetMarket = "national"
	TargetMarketGlobal       TargetMarket = "global"
)

// IsValid reports whether the value is one of the five known tiers.
func (t TargetMarket) IsValid() bool {
	switch t {
	case TargetMarketNeighborhood, TargetMarketLocal, TargetMarketRegional, TargetMarketNational, TargetMarketGlobal:
		return true
	}
	return false
}

// BusinessCategories is the fixed set of categories a business may pick
// its main and affiliate categories from.
var BusinessCategories = []string{
	"Acting", "Accommodation", "Auto Services", "Clothing", "Dancing",
	"Dry Cleaning", "Education", "Energy", "Farming", "Finance",
	"Food & Beverage", "Furniture", "Hair Salon", "Health", "Hotel",
	"Influencer", "Lounge", "Medication", "Pet Grooming", "Photography",
	"Politics", "Religious", "Supermarket", "Technology", "Transport",
}

// AgeRanges is the fixed set of target audience age brackets.
var AgeRanges = []string{
	"18-25", "26-30", "31-35", "36-40", "41-45", "46-50",
	"51-55", "56-60", "61-65", "66+", "All Ages",
}

// IsValidCategory reports whether the name is a member of BusinessCategories.
func IsValidCategory(name string) bool {
	for _, c := range BusinessCategories {
		if c == name {
			return true
		}
	}
	return false
}

// IsValidAgeRange reports whether the label is a member of AgeRanges.
func IsValidAgeRange(label string) bool {
	for _, r := range AgeRanges {
		if r == label {
			return true
		}
	}
	return false
}

// Location is a business's physical location: coordinates plus postal address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
}

// DayHours is the opening window for a single weekday. Start/End are nil
// when the day is closed.
type DayHours struct {
	Open  bool    `json:"open"`
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// WorkingHours is the weekly working-hours table. Is24x7 and IsByAppointment
// override the per-day entries.
type WorkingHours struct {
	Monday          DayHours `json:"monday"`
	Tuesday         DayHours `json:"tuesday"`
	Wednesday       DayHours `json:"wednesday"`
	Thursday        DayHours `json:"thursday"`
	Friday          DayHours `json:"friday"`
	Saturday        DayHours `json:"saturday"`
	Sunday          DayHours `json:"sunday"`
	Is24x7          bool     `json:"is24x7"`
	IsByAppointment bool     `json:"isByAppointment"`
}

// Business is the business-facing profile a user creates once to unlock the
// business persona. At most one exists per user.
type Business struct {
	BusinessID         string          `json:"businessID"` // Primary Key (UUID)
	UserID             string          `json:"userID"`     // Owning user; unique
	BusinessName       string          `json:"businessName"`
	Description        string          `json:"description"`
	Logo               string          `json:"logo"`
	CoverImage         string          `json:"coverImage"`
	Location           Location        `json:"location"`
	WorkingHours       WorkingHours    `json:"workingHours"`
	MainCategory       string          `json:"mainCategory"`
	AffiliateCategory1 *string         `json:"affiliateCategory1"`
	AffiliateCategory2 *string         `json:"affiliateCategory2"`
	AffiliateCategory3 *string         `json:"affiliateCategory3"`
	TargetMarket       TargetMarket    `json:"targetMarket"`
	TargetAgeRanges    []string        `json:"targetAgeRanges"`
	Rating             decimal.Decimal `json:"rating"`
	ReviewCount        int             `json:"reviewCount"`
	FollowerCount      int             `json:"followerCount"`
	ViewCount          int             `json:"viewCount"`
	Status             BusinessStatus  `json:"status"`
	IsVerified         bool            `json:"isVerified"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	LastActiveAt       *time.Time      `json:"lastActiveAt,omitempty"`
}
