package teamdict

import "strings"

// UnknownTeam is returned when no dictionary entry matches any player name.
// It stands in for an unidentified or AI-controlled side.
const UnknownTeam = "Computer"

const (
	teamSeparator   = ";;"
	playerSeparator = "::"
)

// Entry maps a lower-case player-name substring to a team label.
type Entry struct {
	Player string
	Team   string
}

// Dictionary is an ordered list of player→team entries. Order is load
// order and is semantically significant: Resolve returns the first entry
// whose key is a substring of any supplied name, so overlapping keys are
// settled by position, not by any score.
type Dictionary struct {
	entries []Entry
}

func New(entries []Entry) Dictionary {
	d := Dictionary{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		player := strings.ToLower(strings.TrimSpace(e.Player))
		team := strings.TrimSpace(e.Team)
		if player == "" || team == "" {
			continue
		}
		d.entries = append(d.entries, Entry{Player: player, Team: team})
	}
	return d
}

// Default is the built-in mapping shipped with the app. Users can override
// it through the persisted serialized form.
func Default() Dictionary {
	teams := []struct {
		name    string
		players string
	}{
		{"Pakistan", "babar,rizwan,shaheen"},
		{"India", "virat,rohit,bumrah"},
		{"Australia", "warner,maxwell,starc"},
		{"England", "buttler,stokes,bairstow"},
		{"South Africa", "de kock,miller,rabada"},
		{"New Zealand", "kane,boult,williamson"},
		{"West Indies", "pollard,russell,narine"},
		{"Sri Lanka", "mendis,shanaka,hasaranga"},
		{"Bangladesh", "sakib,tamim,mushfiq"},
		{"Afghanistan", "rashid,nabi,mujeeb"},
		{"Ireland", "stirling,balbirnie,little"},
		{"Zimbabwe", "williams,raza,chatara"},
		{"Netherlands", "edwards,van der merwe,barresi"},
		{"Scotland", "munsey,berrington,sharif"},
		{"UAE", "waseem,kashif,meiyappan"},
		{"Namibia", "green,wiese,loftie-eaton"},
	}

	var entries []Entry
	for _, t := range teams {
		for _, player := range strings.Split(t.players, ",") {
			entries = append(entries, Entry{Player: player, Team: t.name})
		}
	}
	return New(entries)
}

// Resolve maps a block of player names to a team label. Names are matched
// case-insensitively; anything after "(" (dismissal annotation) is ignored.
// First matching entry wins. Returns UnknownTeam when nothing matches.
func (d Dictionary) Resolve(names []string) string {
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(strings.SplitN(name, "(", 2)[0])
		if name == "" {
			continue
		}
		lowered = append(lowered, strings.ToLower(name))
	}

	for _, e := range d.entries {
		for _, name := range lowered {
			if strings.Contains(name, e.Player) {
				return e.Team
			}
		}
	}
	return UnknownTeam
}

// Entries returns a copy of the ordered entry list.
func (d Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d Dictionary) Len() int {
	return len(d.entries)
}

// ParseSerialized loads the persisted `Team::p1,p2;;Team2::p3` form. A team
// with an empty player list is legal and contributes no entries. Sections
// without the Team::players shape are skipped.
func ParseSerialized(raw string) Dictionary {
	var entries []Entry
	for _, part := range strings.Split(raw, teamSeparator) {
		team, players, ok := strings.Cut(part, playerSeparator)
		if !ok {
			continue
		}
		team = strings.TrimSpace(team)
		if team == "" {
			continue
		}
		for _, player := range strings.Split(players, ",") {
			player = strings.TrimSpace(player)
			if player == "" {
				continue
			}
			entries = append(entries, Entry{Player: player, Team: team})
		}
	}
	return New(entries)
}

// Serialize renders the dictionary back into the persisted form, grouping
// consecutive entries by team in dictionary order.
func (d Dictionary) Serialize() string {
	var b strings.Builder
	type group struct {
		team    string
		players []string
	}

	var groups []*group
	byTeam := make(map[string]*group)
	for _, e := range d.entries {
		g, ok := byTeam[e.Team]
		if !ok {
			g = &group{team: e.Team}
			byTeam[e.Team] = g
			groups = append(groups, g)
		}
		g.players = append(g.players, e.Player)
	}

	for i, g := range groups {
		if i > 0 {
			b.WriteString(teamSeparator)
		}
		b.WriteString(g.team)
		b.WriteString(playerSeparator)
		b.WriteString(strings.Join(g.players, ","))
	}
	return b.String()
}
