package standings

// RaceResult is one driver's outcome in a single race as reported by the
// upstream timing system. It is passed through untouched; Position is 0
// when the driver did not start.
type RaceResult struct {
	Position          int      `json:"position"`
	PointsForPosition float64  `json:"pointsForPosition"`
	PenaltyPoints     *float64 `json:"penaltyPoints"`
	TotalPoints       float64  `json:"totalPoints"`
	DNF               bool     `json:"dnf"`
	DNS               bool     `json:"dns"`
}

// StandingEntry is one driver's standing within one class as reported by
// a single fragment. DriverName is the merge key, unique within a class.
type StandingEntry struct {
	Position              int          `json:"position"`
	DriverName            string       `json:"driverName"`
	CarNumber             string       `json:"carNumber"`
	CarName               string       `json:"carName"`
	ChampionshipPoints    float64      `json:"championshipPoints"`
	ChampionshipPenalties float64      `json:"championshipPenalties"`
	ChampionshipScore     float64      `json:"championshipScore"`
	PointsAdjustment      float64      `json:"pointsAdjustment"`
	ActualPoints          float64      `json:"actualPoints"`
	Races                 []RaceResult `json:"races"`
}

// ClassStandings pairs a class name with the standings reported for it.
// A fragment file decodes to a list of these.
type ClassStandings struct {
	ClassName string          `json:"className"`
	Standings []StandingEntry `json:"standings"`
}
