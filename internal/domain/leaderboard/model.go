package leaderboard

// Entry is one ranked row of a category.
type Entry struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Details string  `json:"details"`
}

// Category is a titled, ranked list. Entries holds the full ranking; Top
// bounds it for summary views.
type Category struct {
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Entries     []Entry `json:"entries"`
}

// Top returns at most n leading entries without copying the backing array.
func (c Category) Top(n int) []Entry {
	if n < 0 || n >= len(c.Entries) {
		return c.Entries
	}
	return c.Entries[:n]
}

// Category keys, used as route parameters.
const (
	KeyTeamStandings = "team-standings"
	KeyTopRunScorers = "top-run-scorers"
	KeyCenturies     = "centuries"
	KeyMostWickets   = "most-wickets"
	KeyStrikeRate    = "best-strike-rate"
	KeyBoundaries    = "boundary-hitters"
	KeyEconomy       = "best-economy"
	KeyFantasyPoints = "fantasy-points"
)
