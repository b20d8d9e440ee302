package dto

// EligibilityBreakdown exposes the four independent sub-scores behind an
// eligibility total, mostly for debugging and UI hints.
type EligibilityBreakdown struct {
	LocationFit     float64 `json:"location_fit"`     // 0-20
	ExperienceBand  float64 `json:"experience_band"`  // 0-30
	SkillsPortion   float64 `json:"skills_portion"`   // 0-40
	ProfileRichness float64 `json:"profile_richness"` // 0-10
}

type EligibilityResult struct {
	Score     float64               `json:"score"`
	Breakdown *EligibilityBreakdown `json:"breakdown,omitempty"`
}
