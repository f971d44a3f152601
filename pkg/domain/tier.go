package domain

import "time"

// Tier represents a subscription level
type Tier string

// known subscription tiers
const (
	TierFree        Tier = "free"
	TierPremium     Tier = "premium"
	TierPremiumPlus Tier = "premium_plus"
)

// Tiers returns all known tiers, useful for iterating retention policies
func Tiers() []Tier {
	return []Tier{TierFree, TierPremium, TierPremiumPlus}
}

// Policy defines what a subscription tier is entitled to
type Policy struct {
	CheckInterval time.Duration // how often listings are checked
	BasePriority  int           // queue priority floor, 1-10
	MaxProducts   int           // product limit per user
	Retention     time.Duration // how long price history is kept
	APIAccess     bool
}

// PolicyFor maps a tier to its policy. Unknown tiers get the free policy.
func PolicyFor(t Tier) Policy {
	switch t {
	case TierPremium:
		return Policy{CheckInterval: 6 * time.Hour, BasePriority: 5, MaxProducts: 25, Retention: 30 * 24 * time.Hour}
	case TierPremiumPlus:
		return Policy{CheckInterval: time.Hour, BasePriority: 10, MaxProducts: 100, Retention: 90 * 24 * time.Hour, APIAccess: true}
	default:
		return Policy{CheckInterval: 24 * time.Hour, BasePriority: 1, MaxProducts: 5, Retention: 7 * 24 * time.Hour}
	}
}

// CheckIntervalHours returns the tier check interval in whole hours,
// the unit listings persist it in
func (t Tier) CheckIntervalHours() int {
	return int(PolicyFor(t).CheckInterval / time.Hour)
}
