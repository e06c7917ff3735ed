package domain_test

import (
	"testing"

	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProfileTypeIsValid(t *testing.T) {
	assert.True(t, domain.ProfileTypeUser.IsValid())
	assert.True(t, domain.ProfileTypeBusiness.IsValid())
	assert.False(t, domain.ProfileType("admin").IsValid())
	assert.False(t, domain.ProfileType("").IsValid())
}

func TestTargetMarketIsValid(t *testing.T) {
	for _, tier := range []domain.TargetMarket{
		domain.TargetMarketNeighborhood,
		domain.TargetMarketLocal,
		domain.TargetMarketRegional,
		domain.TargetMarketNational,
		domain.TargetMarketGlobal,
	} {
		assert.True(t, tier.IsValid(), string(tier))
	}
	assert.False(t, domain.TargetMarket("galactic").IsValid())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, domain.IsValidCategory("Food & Beverage"))
	assert.True(t, domain.IsValidCategory("Technology"))
	assert.False(t, domain.IsValidCategory("food & beverage")) // case sensitive
	assert.False(t, domain.IsValidCategory("Quantum Computing"))
}

func TestIsValidAgeRange(t *testing.T) {
	assert.True(t, domain.IsValidAgeRange("18-25"))
	assert.True(t, domain.IsValidAgeRange("All Ages"))
	assert.False(t, domain.IsValidAgeRange("12-17"))
}

func TestBusinessSetupRewardConstant(t *testing.T) {
	assert.Equal(t, "420", domain.BusinessSetupReward.String())
	assert.Equal(t, "Business profile setup completed", domain.BusinessSetupRewardDescription)
}
