package competition

// TeamRef is the club a scorer or standings row belongs to.
type TeamRef struct {
	ID        int64
	Name      string
	ShortName string
	TLA       string
	Crest     string
}

// Scorer is one row of a competition's top-scorer list. Counters the provider
// leaves out stay nil.
type Scorer struct {
	PlayerID      int64
	PlayerName    string
	Nationality   string
	Position      string
	Team          TeamRef
	PlayedMatches *int
	Goals         *int
	Assists       *int
	Penalties     *int
}
