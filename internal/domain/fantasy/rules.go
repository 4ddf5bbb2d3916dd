package fantasy

// Rules stores the scoring parameters for cumulative fantasy points, the
// scheme applied to a player's career totals.
type Rules struct {
	RunPoints           int
	FourPoints          int
	SixPoints           int
	CenturyPoints       int
	HalfCenturyPoints   int
	WicketPoints        int
	EconomyUnderSix     int
	EconomyUnderEight   int
	EconomyOverTenMalus int
}

func DefaultRules() Rules {
	return Rules{
		RunPoints:           1,
		FourPoints:          1,
		SixPoints:           2,
		CenturyPoints:       16,
		HalfCenturyPoints:   8,
		WicketPoints:        25,
		EconomyUnderSix:     20,
		EconomyUnderEight:   10,
		EconomyOverTenMalus: -10,
	}
}

// PerformanceRules stores the scoring parameters for the per-innings scheme,
// where milestones and rate tiers are judged against each performance alone.
type PerformanceRules struct {
	FourPoints        int
	SixPoints         int
	CenturyBonus      int
	HalfCenturyBonus  int
	ThirtyBonus       int
	SRTwoHundredBonus int
	SROneFiftyBonus   int
	SROneTwentyBonus  int
	SRMinBalls        int
	WicketPoints      int
	ThreeWicketBonus  int
	FiveWicketBonus   int
	EcoUnderSixBonus  int
	EcoUnderEightBonus int
	EcoUnderTenBonus  int
	EcoMinOvers       float64
}

func DefaultPerformanceRules() PerformanceRules {
	return PerformanceRules{
		FourPoints:         1,
		SixPoints:          2,
		CenturyBonus:       50,
		HalfCenturyBonus:   30,
		ThirtyBonus:        10,
		SRTwoHundredBonus:  20,
		SROneFiftyBonus:    15,
		SROneTwentyBonus:   10,
		SRMinBalls:         10,
		WicketPoints:       25,
		ThreeWicketBonus:   20,
		FiveWicketBonus:    30,
		EcoUnderSixBonus:   25,
		EcoUnderEightBonus: 15,
		EcoUnderTenBonus:   10,
		EcoMinOvers:        2,
	}
}
