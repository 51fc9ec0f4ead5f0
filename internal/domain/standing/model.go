package standing

// Row is one line of a league table.
type Row struct {
	Position       int
	TeamID         int64
	TeamName       string
	TeamShortName  string
	TeamTLA        string
	TeamCrest      string
	PlayedGames    int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Form           string
}

// Table is an ordered league table.
type Table []Row

// Positions indexes the table by team id. When a team appears twice the first row wins.
func (t Table) Positions() map[int64]int {
	out := make(map[int64]int, len(t))
	for _, row := range t {
		if row.TeamID <= 0 {
			continue
		}
		if _, ok := out[row.TeamID]; ok {
			continue
		}
		out[row.TeamID] = row.Position
	}
	return out
}
