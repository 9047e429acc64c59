package session

// Tier is the tenant's subscription level. The ordering normal < pro <
// premium gates premium console features; values the server sends outside
// the known set rank below normal and so never satisfy a tier requirement.
type Tier string

const (
	TierNormal  Tier = "normal"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

// ParseTier maps the wire value onto a Tier, defaulting to normal when the
// server sends nothing.
func ParseTier(raw string) Tier {
	if raw == "" {
		return TierNormal
	}
	return Tier(raw)
}

// Ordinal returns the tier's rank for comparisons. Unknown tiers rank 0,
// below normal.
func (t Tier) Ordinal() int {
	switch t {
	case TierNormal:
		return 1
	case TierPro:
		return 2
	case TierPremium:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether t meets or exceeds min.
func (t Tier) AtLeast(min Tier) bool {
	return t.Ordinal() >= min.Ordinal()
}
