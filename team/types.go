package team

// Team aggregates points for the leaderboard.
type Team struct {
	ID     string
	Name   string
	Points int
}

// Participant is one registered contestant. PhoneNumber and
// RegistrationNo are absent when the registration source does not
// carry them.
type Participant struct {
	ID             string
	Name           string
	Email          string
	GoogleID       string
	IsAdmin        bool
	TeamName       string
	PhoneNumber    *string
	RegistrationNo *string
}
