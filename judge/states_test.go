package judge_test

import (
	"testing"

	"github.com/codearena/backend/judge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFromStatusID(t *testing.T) {
	expected := []judge.State{
		judge.StateInQueue,
		judge.StateProcessing,
		judge.StateAccepted,
		judge.StateWrongAnswer,
		judge.StateTimeLimitExceeded,
		judge.StateCompilationError,
		judge.StateRuntimeErrorSIGSEGV,
		judge.StateRuntimeErrorSIGXFSZ,
		judge.StateRuntimeErrorSIGFPE,
		judge.StateRuntimeErrorSIGABRT,
		judge.StateRuntimeErrorNZEC,
		judge.StateRuntimeErrorOther,
		judge.StateInternalError,
	}

	for i, want := range expected {
		state, ok := judge.StateFromStatusID(i + 1)
		require.True(t, ok, "status id %d should resolve", i+1)
		assert.Equal(t, want, state, "status id %d", i+1)
	}
}

func TestStateFromStatusIDOutOfRange(t *testing.T) {
	for _, id := range []int{0, -1, 14, 100} {
		_, ok := judge.StateFromStatusID(id)
		assert.False(t, ok, "status id %d should not resolve", id)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, judge.StateInQueue.IsTerminal())
	assert.False(t, judge.StateProcessing.IsTerminal())

	for id := 3; id <= 13; id++ {
		state, ok := judge.StateFromStatusID(id)
		require.True(t, ok)
		assert.True(t, state.IsTerminal(), "state %s should be terminal", state)
	}
}
