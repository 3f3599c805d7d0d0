package standings

import "sort"

// Rank orders a class's merged standings by championship points
// descending, tie-broken by championship score descending. Remaining
// ties keep first-occurrence order, hence the stable sort. Positions are
// assigned 1-based with no gaps.
func Rank(entries []StandingEntry) []StandingEntry {
	ranked := append([]StandingEntry{}, entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ChampionshipPoints != ranked[j].ChampionshipPoints {
			return ranked[i].ChampionshipPoints > ranked[j].ChampionshipPoints
		}
		return ranked[i].ChampionshipScore > ranked[j].ChampionshipScore
	})
	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}
