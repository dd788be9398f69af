package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRewards(t *testing.T) {
	catalog := DefaultRewards()
	require.Len(t, catalog, 4)

	byName := make(map[string]Reward, len(catalog))
	for _, r := range catalog {
		require.NoError(t, r.Validate(), "catalog entry %q must validate", r.Name)
		byName[r.Name] = r
	}

	assert.Equal(t, 10, byName["Eco Warrior Badge"].PointsRequired)
	assert.Equal(t, 100, byName["Green Champion"].PointsRequired)
	assert.Equal(t, 50, byName["Coffee Shop Discount"].PointsRequired)
	assert.Equal(t, 200, byName["Eco-friendly Water Bottle"].PointsRequired)

	assert.Equal(t, RewardCategoryBadge, byName["Eco Warrior Badge"].Category)
	assert.Equal(t, RewardCategoryDiscount, byName["Coffee Shop Discount"].Category)
	assert.Equal(t, RewardCategoryItem, byName["Eco-friendly Water Bottle"].Category)
}

func TestRewardValidate(t *testing.T) {
	bad := Reward{Name: "x", PointsRequired: 0, Category: "mystery"}
	assert.Error(t, bad.Validate())
}
