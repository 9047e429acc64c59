package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	assert.Equal(t, TierNormal, ParseTier(""))
	assert.Equal(t, TierPro, ParseTier("pro"))
	assert.Equal(t, TierPremium, ParseTier("premium"))

	// unknown values pass through and rank below normal
	assert.Equal(t, Tier("enterprise"), ParseTier("enterprise"))
	assert.Equal(t, 0, Tier("enterprise").Ordinal())
}

func TestTierOrdering(t *testing.T) {
	assert.True(t, TierPremium.AtLeast(TierPro))
	assert.True(t, TierPro.AtLeast(TierPro))
	assert.False(t, TierNormal.AtLeast(TierPro))
	assert.False(t, TierPro.AtLeast(TierPremium))
	assert.True(t, TierNormal.AtLeast(TierNormal))
	assert.False(t, Tier("enterprise").AtLeast(TierNormal))
}
