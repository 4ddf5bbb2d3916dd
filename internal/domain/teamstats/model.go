package teamstats

// Stats is one team's cumulative standing line.
type Stats struct {
	Name         string  `json:"name"`
	Matches      int     `json:"matches"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Points       int     `json:"points"`
	RunsFor      int     `json:"runsFor"`
	OversFaced   float64 `json:"oversFaced"`
	RunsAgainst  int     `json:"runsAgainst"`
	OversBowled  float64 `json:"oversBowled"`
	WicketsLost  int     `json:"wicketsLost"`
	WicketsTaken int     `json:"wicketsTaken"`
	NetRunRate   float64 `json:"netRunRate"`
}

// NetRunRate is (runs scored per over faced) minus (runs conceded per over
// bowled). Either term collapses to 0 when its over count is zero.
func NetRunRate(runsFor int, oversFaced float64, runsAgainst int, oversBowled float64) float64 {
	var forRate, againstRate float64
	if oversFaced > 0 {
		forRate = float64(runsFor) / oversFaced
	}
	if oversBowled > 0 {
		againstRate = float64(runsAgainst) / oversBowled
	}
	return forRate - againstRate
}
