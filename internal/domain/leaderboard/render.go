package leaderboard

import (
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/crichub/handcricket-stats/internal/domain/playerstats"
	"github.com/crichub/handcricket-stats/internal/domain/teamstats"
)

// Detail strings are rebuilt for every category on every computation pass, so
// the scratch buffers come from a pool.

func battingDetails(s playerstats.Stats) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writePart(buf, s.Team)
	writePart(buf, strconv.Itoa(s.Runs)+" runs ("+strconv.Itoa(s.Balls)+" balls)")
	writePart(buf, "SR "+formatRate(s.StrikeRate))
	writePart(buf, "HS "+strconv.Itoa(s.HighestScore))
	return buf.String()
}

func bowlingDetails(s playerstats.Stats) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writePart(buf, s.Team)
	writePart(buf, strconv.Itoa(s.Wickets)+" wkts for "+strconv.Itoa(s.RunsGiven))
	writePart(buf, "Econ "+formatRate(s.Economy))
	if s.BestBowling.Taken {
		writePart(buf, "Best "+strconv.Itoa(s.BestBowling.Wickets)+"/"+strconv.Itoa(s.BestBowling.Runs))
	}
	return buf.String()
}

func milestoneDetails(s playerstats.Stats) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writePart(buf, s.Team)
	writePart(buf, strconv.Itoa(s.Centuries)+" x100")
	writePart(buf, strconv.Itoa(s.HalfCenturies)+" x50")
	writePart(buf, strconv.Itoa(s.Runs)+" runs")
	return buf.String()
}

func boundaryDetails(s playerstats.Stats) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writePart(buf, s.Team)
	writePart(buf, strconv.Itoa(s.Fours)+" fours")
	writePart(buf, strconv.Itoa(s.Sixes)+" sixes")
	return buf.String()
}

func fantasyDetails(s playerstats.Stats) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writePart(buf, s.Team)
	writePart(buf, strconv.Itoa(s.Runs)+" runs")
	writePart(buf, strconv.Itoa(s.Wickets)+" wkts")
	writePart(buf, strconv.Itoa(s.Matches)+" matches")
	return buf.String()
}

func standingDetails(s teamstats.Stats) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writePart(buf, strconv.Itoa(s.Wins)+"W "+strconv.Itoa(s.Losses)+"L of "+strconv.Itoa(s.Matches))
	writePart(buf, strconv.Itoa(s.Points)+" pts")
	writePart(buf, "NRR "+formatRate(s.NetRunRate))
	return buf.String()
}

func writePart(buf *bytebufferpool.ByteBuffer, part string) {
	if buf.Len() > 0 {
		_, _ = buf.WriteString(", ")
	}
	_, _ = buf.WriteString(part)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
