package judge

import (
	"time"

	"github.com/google/uuid"
)

// Submission tracks one dispatched piece of code. Problem and team
// references are set at creation and never reassigned.
type Submission struct {
	ID    uuid.UUID
	Token string // correlation token assigned by the execution engine

	ProblemID string
	TeamID    string
	LangID    int

	State  State
	Points int
	Code   string

	CreatedAt time.Time
}
