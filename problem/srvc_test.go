package problem_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProblem(id string) problem.Problem {
	return problem.Problem{
		ID:               id,
		Name:             id,
		MaxPoints:        100,
		InputText:        "secret input",
		OutputText:       "secret output",
		InstructionsText: "instructions",
		Multiplier:       1,
	}
}

func TestPublicViewExcludesGradingText(t *testing.T) {
	srvc := problem.NewProblemSrvc(problem.NewInMemRepo())
	ctx := context.Background()

	require.NoError(t, srvc.ReplaceAll(ctx, []problem.Problem{newTestProblem("p1")}))

	public, err := srvc.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "instructions", public.InstructionsText)

	// the judging view still carries the grading text
	judging, err := srvc.GetForJudge(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, judging)
	assert.Equal(t, "secret input", judging.InputText)
	assert.Equal(t, "secret output", judging.OutputText)
}

func TestGetNotFound(t *testing.T) {
	srvc := problem.NewProblemSrvc(problem.NewInMemRepo())

	_, err := srvc.Get(context.Background(), "missing")
	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr))
	assert.Equal(t, problem.ErrCodeProblemNotFound, srvcErr.ErrorCode())
}

func TestReplaceAllSwapsCatalog(t *testing.T) {
	srvc := problem.NewProblemSrvc(problem.NewInMemRepo())
	ctx := context.Background()

	require.NoError(t, srvc.ReplaceAll(ctx, []problem.Problem{
		newTestProblem("a"), newTestProblem("b"),
	}))
	require.NoError(t, srvc.ReplaceAll(ctx, []problem.Problem{
		newTestProblem("c"),
	}))

	problems, err := srvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, "c", problems[0].ID)

	old, err := srvc.GetForJudge(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, old)
}
