package scorecard

import (
	"regexp"
	"strconv"
	"strings"
)

// Scorecard exports come in two known layouts: some embed the innings total
// in the "<team> Batting" header line, others put it on a separate line
// inside the block. Both feed MatchInfo the same way: the first batting side
// fills team1, the second fills team2.

var (
	battingHeaderRe = regexp.MustCompile(`(.+?) Batting`)
	bowlingHeaderRe = regexp.MustCompile(`(.+?) Bowling`)
	scoreRe         = regexp.MustCompile(`(\d+)\s*/\s*(\d+)\s*\(([\d.]+)\)`)
	winnerRe        = regexp.MustCompile(`(.+?) won the game by`)
	playerOfMatchRe = regexp.MustCompile(`(.+?) is player of the match`)
	dateRe          = regexp.MustCompile(`Played on (.+)`)
)

type section int

const (
	sectionNone section = iota
	sectionBatting
	sectionBowling
)

// Parse converts raw scorecard lines into structured records. A single
// malformed row never fails the whole parse: numeric fields default to zero
// and unrecognized lines are skipped. The two sides are named by the batting
// headers even when no innings total line is present.
func Parse(lines []string) Parsed {
	var out Parsed
	out.Info.Team1Name, out.Info.Team2Name = BattingTeams(lines)

	active := sectionNone
	currentTeam := ""

	for _, line := range lines {
		switch {
		case strings.Contains(line, "Batting"):
			active = sectionBatting
			currentTeam = headerTeam(battingHeaderRe, line)
			// Some export variants carry the innings total on the
			// header line itself.
			if m := scoreRe.FindStringSubmatch(line); m != nil {
				recordTeamScore(&out.Info, currentTeam, m)
			}
		case strings.Contains(line, "Bowling"):
			active = sectionBowling
			currentTeam = headerTeam(bowlingHeaderRe, line)
		case strings.Contains(line, "Batter ID"),
			strings.Contains(line, "Bowler ID"),
			strings.Contains(line, "Fall of Wickets"):
			continue
		case strings.Contains(line, "/") && strings.Contains(line, "("):
			if active != sectionBatting {
				continue
			}
			if m := scoreRe.FindStringSubmatch(line); m != nil {
				recordTeamScore(&out.Info, currentTeam, m)
			}
		case strings.Contains(line, "won the game by"):
			if m := winnerRe.FindStringSubmatch(line); m != nil {
				out.Info.Winner = strings.TrimSpace(m[1])
			}
		case strings.Contains(line, "player of the match"):
			if m := playerOfMatchRe.FindStringSubmatch(line); m != nil {
				out.Info.PlayerOfMatch = strings.TrimSpace(m[1])
			}
		case strings.Contains(line, "Played on"):
			if m := dateRe.FindStringSubmatch(line); m != nil {
				out.Info.Date = strings.TrimSpace(m[1])
			}
		case strings.TrimSpace(line) == "":
			continue
		default:
			fields := strings.Split(line, ",")
			switch {
			case active == sectionBatting && len(fields) >= 7 && strings.TrimSpace(fields[0]) != "":
				out.Batters = append(out.Batters, parseBatterRow(fields, currentTeam))
			case active == sectionBowling && len(fields) >= 6 && strings.TrimSpace(fields[0]) != "":
				out.Bowlers = append(out.Bowlers, parseBowlerRow(fields, currentTeam))
			}
		}
	}

	return out
}

func headerTeam(re *regexp.Regexp, line string) string {
	if m := re.FindStringSubmatch(line); m != nil {
		if team := strings.TrimSpace(m[1]); team != "" {
			return team
		}
	}
	return "Team"
}

// recordTeamScore attaches an innings total to the side named by the active
// batting block. Sides the headers left unnamed are filled in arrival order.
func recordTeamScore(info *MatchInfo, team string, m []string) {
	score := m[1] + "/" + m[2] + " (" + m[3] + ")"
	switch {
	case team != "" && strings.EqualFold(team, info.Team2Name):
		info.Team2Score = score
	case team != "" && strings.EqualFold(team, info.Team1Name) && info.Team1Score == "":
		info.Team1Score = score
	case info.Team1Score == "" && info.Team2Score == "":
		if info.Team1Name == "" {
			info.Team1Name = team
		}
		info.Team1Score = score
	default:
		if info.Team2Name == "" {
			info.Team2Name = team
		}
		info.Team2Score = score
	}
}

func parseBatterRow(fields []string, team string) BatterRecord {
	nameWithDismissal := strings.TrimSpace(fields[1])
	name := strings.TrimSpace(strings.SplitN(nameWithDismissal, "(", 2)[0])

	return BatterRecord{
		ID:         strings.TrimSpace(fields[0]),
		Name:       name,
		Team:       team,
		Runs:       parseInt(fields[2]),
		Balls:      parseInt(fields[3]),
		Fours:      parseInt(fields[4]),
		Sixes:      parseInt(fields[5]),
		StrikeRate: parseFloat(fields[6]),
		IsOut:      !strings.Contains(strings.ToLower(nameWithDismissal), "not out"),
	}
}

func parseBowlerRow(fields []string, team string) BowlerRecord {
	return BowlerRecord{
		ID:           strings.TrimSpace(fields[0]),
		Name:         strings.TrimSpace(fields[1]),
		Team:         team,
		Overs:        ParseOvers(fields[2]),
		RunsConceded: parseInt(fields[3]),
		Wickets:      parseInt(fields[4]),
		Economy:      parseFloat(fields[5]),
	}
}

// ParseOvers decodes the cricket overs notation: the digit after the dot
// counts legal balls, so "9.1" is 9 + 1/6 overs. Malformed input yields 0.
func ParseOvers(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, ".") {
		return parseFloat(raw)
	}

	parts := strings.SplitN(raw, ".", 2)
	whole, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	balls, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0
	}
	return whole + balls/6
}

// ParseScore decomposes a "runs/wickets (overs)" team total. Strings that do
// not match the pattern yield a zero Score.
func ParseScore(raw string) Score {
	m := scoreRe.FindStringSubmatch(raw)
	if m == nil {
		return Score{}
	}
	return Score{
		Runs:    parseInt(m[1]),
		Wickets: parseInt(m[2]),
		Overs:   ParseOvers(m[3]),
	}
}

// BattingTeams returns the first two distinct team labels found in batting
// headers, matching how the original export names the two sides.
func BattingTeams(lines []string) (string, string) {
	team1, team2 := "", ""
	for _, line := range lines {
		if !strings.Contains(line, "Batting") {
			continue
		}
		m := battingHeaderRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		team := strings.TrimSpace(m[1])
		if team == "" {
			continue
		}
		if team1 == "" {
			team1 = team
		} else if team2 == "" && team != team1 {
			team2 = team
		}
	}
	return team1, team2
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
