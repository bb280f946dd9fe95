package game

import "sort"

type Medal string

const (
	MedalNone   Medal = ""
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
)

// Standing is one row of the scoreboard. Rank is 0 for players without points.
type Standing struct {
	PlayerID string
	Total    int
	Rank     int
	Medal    Medal
}

// Rank orders players by total score, highest first. Equal totals are broken
// by the earlier last scoring event, then by join order.
//
// Players on the same total share the rank of the first of them, and the rank
// after a tie skips ahead (1, 1, 3). Medals follow the rank number but only
// three are handed out in total, so ties can use up the medals early.
func Rank(players []*Player) []Standing {
	sorted := make([]*Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Score.Total() != b.Score.Total() {
			return a.Score.Total() > b.Score.Total()
		}
		if a.Score.LastEventTimestamp != b.Score.LastEventTimestamp {
			return a.Score.LastEventTimestamp < b.Score.LastEventTimestamp
		}
		return a.seq < b.seq
	})

	standings := make([]Standing, 0, len(sorted))
	rank, prevTotal, awarded := 0, -1, 0
	for i, p := range sorted {
		s := Standing{PlayerID: p.ID, Total: p.Score.Total()}
		if s.Total == 0 {
			standings = append(standings, s)
			continue
		}
		if s.Total != prevTotal {
			rank = i + 1
			prevTotal = s.Total
		}
		s.Rank = rank
		if awarded < medalSlots {
			if m := medalForRank(rank); m != MedalNone {
				s.Medal = m
				awarded++
			}
		}
		standings = append(standings, s)
	}
	return standings
}

func medalForRank(rank int) Medal {
	switch rank {
	case 1:
		return MedalGold
	case 2:
		return MedalSilver
	case 3:
		return MedalBronze
	}
	return MedalNone
}
