package standings

// GroupByClass concatenates all standings reported for the same class
// across fragments. Classes keep the order of their first appearance and
// entries keep fragment-then-original order. Drivers are not merged here.
func GroupByClass(classes []ClassStandings) []ClassStandings {
	index := map[string]int{}
	grouped := []ClassStandings{}
	for _, c := range classes {
		i, ok := index[c.ClassName]
		if !ok {
			i = len(grouped)
			index[c.ClassName] = i
			grouped = append(grouped, ClassStandings{ClassName: c.ClassName})
		}
		grouped[i].Standings = append(grouped[i].Standings, c.Standings...)
	}
	return grouped
}

// MergeDrivers folds the concatenated standings of one class into one
// entry per driver name. Drivers keep the order of their first
// occurrence; positions are reset to 0 until ranked.
func MergeDrivers(entries []StandingEntry) []StandingEntry {
	index := map[string]int{}
	merged := []StandingEntry{}
	for _, e := range entries {
		i, ok := index[e.DriverName]
		if !ok {
			seed := e
			seed.Position = 0
			seed.Races = append([]RaceResult{}, e.Races...)
			index[e.DriverName] = len(merged)
			merged = append(merged, seed)
			continue
		}
		mergeInto(&merged[i], e)
	}
	return merged
}

// mergeInto accumulates a later fragment's entry into the seed. All five
// numeric fields sum; car number and car name stay at the first
// fragment's values. Races are appended in order, duplicates and all.
func mergeInto(acc *StandingEntry, e StandingEntry) {
	acc.ChampionshipPoints += e.ChampionshipPoints
	acc.ChampionshipPenalties += e.ChampionshipPenalties
	acc.ChampionshipScore += e.ChampionshipScore
	acc.PointsAdjustment += e.PointsAdjustment
	acc.ActualPoints += e.ActualPoints
	acc.Races = append(acc.Races, e.Races...)
}

// Aggregate runs the in-memory pipeline over the raw fragment data:
// group by class, merge drivers within each class, rank. Class order is
// still first-appearance order; the report sorts alphabetically.
func Aggregate(classes []ClassStandings) []ClassStandings {
	grouped := GroupByClass(classes)
	out := make([]ClassStandings, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, ClassStandings{
			ClassName: g.ClassName,
			Standings: Rank(MergeDrivers(g.Standings)),
		})
	}
	return out
}
