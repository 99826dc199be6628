package judge

import "fmt"

// State is the lifecycle state of a submission as reported by the
// external execution engine.
type State string

const (
	StateInQueue             State = "IN_QUEUE"
	StateProcessing          State = "PROCESSING"
	StateAccepted            State = "ACCEPTED"
	StateWrongAnswer         State = "WRONG_ANSWER"
	StateTimeLimitExceeded   State = "TIME_LIMIT_EXCEEDED"
	StateCompilationError    State = "COMPILATION_ERROR"
	StateRuntimeErrorSIGSEGV State = "RUNTIME_ERROR_SIGSEGV"
	StateRuntimeErrorSIGXFSZ State = "RUNTIME_ERROR_SIGXFSZ"
	StateRuntimeErrorSIGFPE  State = "RUNTIME_ERROR_SIGFPE"
	StateRuntimeErrorSIGABRT State = "RUNTIME_ERROR_SIGABRT"
	StateRuntimeErrorNZEC    State = "RUNTIME_ERROR_NZEC"
	StateRuntimeErrorOther   State = "RUNTIME_ERROR_OTHER"
	StateInternalError       State = "INTERNAL_ERROR"
)

// verdictTable maps external status ids positionally: id n is entry n-1.
// The engine emits ids 1 through len(verdictTable); anything outside
// that range is rejected, never defaulted.
var verdictTable = []State{
	StateInQueue,
	StateProcessing,
	StateAccepted,
	StateWrongAnswer,
	StateTimeLimitExceeded,
	StateCompilationError,
	StateRuntimeErrorSIGSEGV,
	StateRuntimeErrorSIGXFSZ,
	StateRuntimeErrorSIGFPE,
	StateRuntimeErrorSIGABRT,
	StateRuntimeErrorNZEC,
	StateRuntimeErrorOther,
	StateInternalError,
}

// maxStatusID is the highest status id the engine can emit.
const maxStatusID = 13

// StateFromStatusID resolves an external status id against the verdict
// table. ok is false for ids outside 1..maxStatusID.
func StateFromStatusID(id int) (State, bool) {
	if id < 1 || id > len(verdictTable) {
		return "", false
	}
	return verdictTable[id-1], true
}

// IsTerminal reports whether the state is a final verdict. IN_QUEUE and
// PROCESSING are the only non-terminal states.
func (s State) IsTerminal() bool {
	switch s {
	case StateInQueue, StateProcessing:
		return false
	}
	return true
}

// validateVerdictTable runs at service construction so a mismatch
// between the table and the engine's status range fails loudly at
// startup instead of on the first callback.
func validateVerdictTable() error {
	if len(verdictTable) != maxStatusID {
		return fmt.Errorf("verdict table has %d entries, engine emits status ids 1..%d",
			len(verdictTable), maxStatusID)
	}
	seen := make(map[State]struct{}, len(verdictTable))
	for i, s := range verdictTable {
		if s == "" {
			return fmt.Errorf("verdict table entry %d is empty", i)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("verdict table entry %d (%s) is duplicated", i, s)
		}
		seen[s] = struct{}{}
	}
	return nil
}
