package person

// Role tells the normalizer whether a record describes a player or a coach.
type Role int

const (
	RolePlayer Role = iota
	RoleCoach
)

const (
	// PositionManager is the position every coach is normalized to.
	PositionManager = "Manager"
	Unknown         = "Unknown"
)

// Contract is the period a person is signed to their current team.
type Contract struct {
	Start string
	Until string
}

// Person is a player or manager. Coaches carry no identifier.
type Person struct {
	ID          *int64
	Name        string
	FirstName   string
	LastName    string
	Position    string
	DateOfBirth string
	Nationality string
	ShirtNumber *int
	Contract    *Contract
}

func (p Person) IsManager() bool {
	return p.Position == PositionManager
}

// Names returns the searchable name fields.
func (p Person) Names() []string {
	return []string{p.Name, p.FirstName, p.LastName}
}
