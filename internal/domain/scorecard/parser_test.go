package scorecard

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestParse_FullScorecard(t *testing.T) {
	t.Parallel()

	lines := []string{
		"India Batting",
		"Batter ID,Batter Name,Runs,Balls,4s,6s,SR",
		"1,Virat (b Shaheen),50,30,0,0,166.67",
		"2,Rohit not out,30,20,0,0,150.00",
		"3,Bumrah (run out),20,15,0,0,133.33",
		"100 / 3 (10.0)",
		"Fall of Wickets: 1-40, 2-75",
		"",
		"Pakistan Bowling",
		"Bowler ID,Bowler Name,Overs,Runs,Wickets,Economy",
		"11,Shaheen,4,30,2,7.50",
		"12,Rauf,3.3,25,1,7.14",
		"Pakistan Batting",
		"Batter ID,Batter Name,Runs,Balls,4s,6s,SR",
		"21,Babar (b Bumrah),40,28,0,0,142.86",
		"95 / 9 (10.0)",
		"India won the game by 5 runs",
		"Virat is player of the match",
		"Played on 12 Mar 2025",
	}

	got := Parse(lines)

	if len(got.Batters) != 4 {
		t.Fatalf("batters: got %d want 4", len(got.Batters))
	}
	if len(got.Bowlers) != 2 {
		t.Fatalf("bowlers: got %d want 2", len(got.Bowlers))
	}

	first := got.Batters[0]
	if first.ID != "1" || first.Name != "Virat" || first.Team != "India" {
		t.Fatalf("unexpected first batter: %+v", first)
	}
	if first.Runs != 50 || first.Balls != 30 {
		t.Fatalf("unexpected first batter figures: %+v", first)
	}
	if !first.IsOut {
		t.Fatalf("dismissed batter parsed as not out")
	}
	if got.Batters[1].IsOut {
		t.Fatalf("not-out batter parsed as out")
	}

	if !almostEqual(got.Bowlers[1].Overs, 3.5) {
		t.Fatalf("overs 3.3: got %v want 3.5", got.Bowlers[1].Overs)
	}
	if got.Bowlers[0].Team != "Pakistan" {
		t.Fatalf("bowler team: got %q want Pakistan", got.Bowlers[0].Team)
	}

	info := got.Info
	if info.Team1Name != "India" || info.Team1Score != "100/3 (10.0)" {
		t.Fatalf("unexpected team1: %+v", info)
	}
	if info.Team2Name != "Pakistan" || info.Team2Score != "95/9 (10.0)" {
		t.Fatalf("unexpected team2: %+v", info)
	}
	if info.Winner != "India" {
		t.Fatalf("winner: got %q want India", info.Winner)
	}
	if info.PlayerOfMatch != "Virat" {
		t.Fatalf("player of match: got %q want Virat", info.PlayerOfMatch)
	}
	if info.Date != "12 Mar 2025" {
		t.Fatalf("date: got %q want 12 Mar 2025", info.Date)
	}
}

func TestParse_ScoreEmbeddedInBattingHeader(t *testing.T) {
	t.Parallel()

	lines := []string{
		"India Batting  186 / 10 (9.1)",
		"1,Virat not out,100,50,4,8,200.00",
	}

	got := Parse(lines)
	if got.Info.Team1Name != "India" {
		t.Fatalf("team1 name: got %q", got.Info.Team1Name)
	}
	if got.Info.Team1Score != "186/10 (9.1)" {
		t.Fatalf("team1 score: got %q", got.Info.Team1Score)
	}
	if len(got.Batters) != 1 || got.Batters[0].Runs != 100 {
		t.Fatalf("unexpected batters: %+v", got.Batters)
	}
}

func TestParse_SidesNamedWithoutScoreLines(t *testing.T) {
	t.Parallel()

	lines := []string{
		"India Batting",
		"1,Virat (b Shaheen),50,30,4,2,166.67",
		"Pakistan Bowling",
		"11,Shaheen,4,30,1,7.50",
		"Pakistan Batting",
		"21,Babar not out,40,28,3,1,142.86",
		"India Bowling",
		"3,Bumrah,4,20,3,5.00",
		"India won the game by 10 runs",
	}

	got := Parse(lines)
	if got.Info.Team1Name != "India" || got.Info.Team2Name != "Pakistan" {
		t.Fatalf("sides must come from batting headers: %+v", got.Info)
	}
	if got.Info.Team1Score != "" || got.Info.Team2Score != "" {
		t.Fatalf("no score lines, scores must stay empty: %+v", got.Info)
	}
	if got.Info.Winner != "India" {
		t.Fatalf("winner: got %q want India", got.Info.Winner)
	}
}

func TestParse_MalformedRowsDefaultToZero(t *testing.T) {
	t.Parallel()

	lines := []string{
		"India Batting",
		"1,Virat,abc,xyz,,-,oops",
		"India Bowling",
		"2,Bumrah,bad,NaNish,??,!!",
	}

	got := Parse(lines)
	if len(got.Batters) != 1 {
		t.Fatalf("batters: got %d want 1", len(got.Batters))
	}
	b := got.Batters[0]
	if b.Runs != 0 || b.Balls != 0 || b.Fours != 0 || b.Sixes != 0 || b.StrikeRate != 0 {
		t.Fatalf("malformed batter fields should default to zero: %+v", b)
	}
	if len(got.Bowlers) != 1 {
		t.Fatalf("bowlers: got %d want 1", len(got.Bowlers))
	}
	w := got.Bowlers[0]
	if w.Overs != 0 || w.RunsConceded != 0 || w.Wickets != 0 || w.Economy != 0 {
		t.Fatalf("malformed bowler fields should default to zero: %+v", w)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	got := Parse(nil)
	if len(got.Batters) != 0 || len(got.Bowlers) != 0 {
		t.Fatalf("empty input should yield empty records: %+v", got)
	}
	if got.Info != (MatchInfo{}) {
		t.Fatalf("empty input should yield zero MatchInfo: %+v", got.Info)
	}
}

func TestParse_RowsOutsideBlocksIgnored(t *testing.T) {
	t.Parallel()

	lines := []string{
		"1,Virat,50,30,0,0,166.67",
		",Missing ID,50,30,0,0,166.67",
	}
	got := Parse(lines)
	if len(got.Batters) != 0 {
		t.Fatalf("rows outside a batting block must be ignored: %+v", got.Batters)
	}
}

func TestParse_RoundTripBattingIntegers(t *testing.T) {
	t.Parallel()

	rows := []struct {
		line                      string
		runs, balls, fours, sixes int
	}{
		{"1,Virat (b X),87,41,9,4,212.20", 87, 41, 9, 4},
		{"2,Rohit not out,0,3,0,0,0.00", 0, 3, 0, 0},
		{"3,Gill (c Y b Z),143,88,12,7,162.50", 143, 88, 12, 7},
	}

	lines := []string{"India Batting"}
	for _, row := range rows {
		lines = append(lines, row.line)
	}

	got := Parse(lines)
	if len(got.Batters) != len(rows) {
		t.Fatalf("batters: got %d want %d", len(got.Batters), len(rows))
	}
	for i, row := range rows {
		b := got.Batters[i]
		if b.Runs != row.runs || b.Balls != row.balls || b.Fours != row.fours || b.Sixes != row.sixes {
			t.Fatalf("row %d: got %+v want %+v", i, b, row)
		}
	}
}

func TestParseOvers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"9.1", 9 + 1.0/6},
		{"10", 10},
		{"0.5", 5.0 / 6},
		{"abc", 0},
		{"", 0},
		{"3.x", 0},
	}
	for _, tc := range cases {
		if got := ParseOvers(tc.in); !almostEqual(got, tc.want) {
			t.Fatalf("ParseOvers(%q): got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseScore(t *testing.T) {
	t.Parallel()

	got := ParseScore("186/10 (9.1)")
	if got.Runs != 186 || got.Wickets != 10 {
		t.Fatalf("unexpected score: %+v", got)
	}
	if !almostEqual(got.Overs, 9+1.0/6) {
		t.Fatalf("score overs: got %v", got.Overs)
	}

	if ParseScore("no score here") != (Score{}) {
		t.Fatalf("non-matching input should yield zero Score")
	}
}

func TestBattingTeams(t *testing.T) {
	t.Parallel()

	team1, team2 := BattingTeams([]string{
		"India Batting",
		"rows...",
		"India Batting", // repeat must not become team2
		"Pakistan Batting",
	})
	if team1 != "India" || team2 != "Pakistan" {
		t.Fatalf("got %q/%q want India/Pakistan", team1, team2)
	}
}
