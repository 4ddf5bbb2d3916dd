package tournament

import "strconv"

// Fixture is a scheduled pairing produced before teams have store ids;
// sides are indexes into the team list handed to the scheduler.
type Fixture struct {
	TeamAIndex int
	TeamBIndex int
	MatchType  MatchType
}

// RoundRobinFixtures pairs every team against every other exactly once
// using the circle method: one slot stays fixed while the rest rotate. An
// odd team count gets a phantom BYE slot whose pairings are dropped.
func RoundRobinFixtures(teamCount int) []Fixture {
	if teamCount < 2 {
		return nil
	}

	const bye = -1
	slots := make([]int, 0, teamCount+1)
	for i := 0; i < teamCount; i++ {
		slots = append(slots, i)
	}
	if teamCount%2 != 0 {
		slots = append(slots, bye)
	}

	rounds := len(slots) - 1
	perRound := len(slots) / 2
	fixed := slots[0]

	var fixtures []Fixture
	for round := 0; round < rounds; round++ {
		for i := 0; i < perRound; i++ {
			teamA := fixed
			if i != 0 {
				teamA = slots[i]
			}
			teamB := slots[len(slots)-1-i]
			if teamA == bye || teamB == bye {
				continue
			}
			fixtures = append(fixtures, Fixture{
				TeamAIndex: teamA,
				TeamBIndex: teamB,
				MatchType:  MatchTypeRoundRobin,
			})
		}
		// Rotate everything except the fixed slot.
		last := slots[len(slots)-1]
		copy(slots[2:], slots[1:len(slots)-1])
		slots[1] = last
	}
	return fixtures
}

// GroupAssignments deals teams into groups round-robin style ("Group 1",
// "Group 2", ...), matching the original seeding order.
func GroupAssignments(teamCount, groupCount int) []string {
	if teamCount <= 0 || groupCount <= 0 {
		return nil
	}
	names := make([]string, groupCount)
	for i := range names {
		names[i] = groupName(i + 1)
	}

	out := make([]string, teamCount)
	for i := 0; i < teamCount; i++ {
		out[i] = names[i%groupCount]
	}
	return out
}

// GroupFixtures pairs every team against every other team in the same
// group exactly once.
func GroupFixtures(groups []string) []Fixture {
	var fixtures []Fixture
	seen := make(map[string]struct{})
	var order []string
	for _, g := range groups {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		order = append(order, g)
	}

	for _, g := range order {
		var members []int
		for i, team := range groups {
			if team == g {
				members = append(members, i)
			}
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				fixtures = append(fixtures, Fixture{
					TeamAIndex: members[i],
					TeamBIndex: members[j],
					MatchType:  MatchTypeGroup,
				})
			}
		}
	}
	return fixtures
}

func groupName(n int) string {
	return "Group " + strconv.Itoa(n)
}
