package reconcile

// manifestEntry is one problem listing from the seeder manifest.
type manifestEntry struct {
	ID           string `json:"id"`
	Input        string `json:"input"`
	Output       string `json:"output"`
	Instructions string `json:"instructions"`
	SampleInput  string `json:"sampleInput"`
	SampleOutput string `json:"sampleOutput"`
	Windows      string `json:"windows"`
	Object       string `json:"object"`
	Mac          string `json:"mac"`
	Multiplier   *int   `json:"multiplier,omitempty"`
}

type manifestPayload struct {
	Payload []manifestEntry `json:"payload"`
}

// rosterEntry is one registration record from the registration source.
type rosterEntry struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	GoogleID string `json:"googleId"`
	IsAdmin  bool   `json:"isAdmin"`
	TeamName string `json:"teamName"`
}
