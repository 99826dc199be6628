package judge_test

import (
	"context"
	"testing"

	"github.com/codearena/backend/judge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCallbackAllStatusIDs(t *testing.T) {
	for id := 1; id <= 13; id++ {
		env := setupJudgeSrvc(t)
		subm := createTestSubm(t, env)

		updated, err := env.judgeSrvc.HandleCallback(context.Background(), subm.Token, id, "")
		require.NoError(t, err, "status id %d", id)

		want, ok := judge.StateFromStatusID(id)
		require.True(t, ok)
		assert.Equal(t, want, updated.State)

		stored, err := env.judgeSrvc.GetSubm(context.Background(), subm.ID)
		require.NoError(t, err)
		assert.Equal(t, want, stored.State)
	}
}

func TestHandleCallbackInvalidStatusID(t *testing.T) {
	env := setupJudgeSrvc(t)
	subm := createTestSubm(t, env)

	for _, id := range []int{0, -3, 14, 999} {
		_, err := env.judgeSrvc.HandleCallback(context.Background(), subm.Token, id, "")
		assertSrvcErrorCode(t, err, judge.ErrCodeInvalidStatusCode)
	}

	// stored state unchanged
	stored, err := env.judgeSrvc.GetSubm(context.Background(), subm.ID)
	require.NoError(t, err)
	assert.Equal(t, judge.StateInQueue, stored.State)
}

func TestHandleCallbackUnknownToken(t *testing.T) {
	env := setupJudgeSrvc(t)
	subm := createTestSubm(t, env)

	_, err := env.judgeSrvc.HandleCallback(context.Background(), "no-such-token", 3, "")
	assertSrvcErrorCode(t, err, judge.ErrCodeUnknownToken)

	stored, err := env.judgeSrvc.GetSubm(context.Background(), subm.ID)
	require.NoError(t, err)
	assert.Equal(t, judge.StateInQueue, stored.State)
}

func TestHandleCallbackIdempotencyFence(t *testing.T) {
	env := setupJudgeSrvc(t)
	subm := createTestSubm(t, env)

	// first verdict lands
	_, err := env.judgeSrvc.HandleCallback(context.Background(), subm.Token, 3, "")
	require.NoError(t, err)

	// duplicate delivery with a different verdict is rejected
	_, err = env.judgeSrvc.HandleCallback(context.Background(), subm.Token, 4, "")
	assertSrvcErrorCode(t, err, judge.ErrCodeVerdictAlreadyRecorded)

	stored, err := env.judgeSrvc.GetSubm(context.Background(), subm.ID)
	require.NoError(t, err)
	assert.Equal(t, judge.StateAccepted, stored.State)
}

func TestHandleCallbackProcessingIsNotTerminal(t *testing.T) {
	env := setupJudgeSrvc(t)
	subm := createTestSubm(t, env)

	// PROCESSING may be followed by a real verdict
	_, err := env.judgeSrvc.HandleCallback(context.Background(), subm.Token, 2, "")
	require.NoError(t, err)

	updated, err := env.judgeSrvc.HandleCallback(context.Background(), subm.Token, 3, "")
	require.NoError(t, err)
	assert.Equal(t, judge.StateAccepted, updated.State)
}
