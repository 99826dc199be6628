package judge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codearena/backend/judge"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/srvcerror"
	"github.com/codearena/backend/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCallbackURL = "http://backend.local/submissions/callback"

// fakeExecClient stands in for the external execution engine.
type fakeExecClient struct {
	token   string
	err     error
	calls   int
	lastReq judge.ExecRequest
}

func (f *fakeExecClient) SubmitExec(ctx context.Context, req judge.ExecRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

type testEnv struct {
	judgeSrvc *judge.JudgeSrvc
	repo      judge.SubmRepo
	exec      *fakeExecClient
}

func setupJudgeSrvc(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	problemSrvc := problem.NewProblemSrvc(problem.NewInMemRepo())
	err := problemSrvc.ReplaceAll(ctx, []problem.Problem{{
		ID:         "p1",
		Name:       "A plus B",
		MaxPoints:  100,
		InputText:  "1 2",
		OutputText: "3",
		Multiplier: 1,
	}})
	require.NoError(t, err)

	teamRepo := team.NewInMemTeamRepo()
	teamSrvc := team.NewTeamSrvc(teamRepo, team.NewInMemParticipantRepo())
	err = teamRepo.ReplaceAll(ctx, []team.Team{{ID: "t1", Name: "t1"}})
	require.NoError(t, err)

	exec := &fakeExecClient{token: "abc123"}
	repo := judge.NewInMemRepo()
	judgeSrvc, err := judge.NewJudgeSrvc(repo, exec, problemSrvc, teamSrvc, testCallbackURL)
	require.NoError(t, err)

	return &testEnv{judgeSrvc: judgeSrvc, repo: repo, exec: exec}
}

func createTestSubm(t *testing.T, env *testEnv) *judge.Submission {
	t.Helper()
	subm, err := env.judgeSrvc.CreateSubmission(context.Background(), &judge.CreateSubmissionParams{
		Code:      `print(int(input())+int(input()))`,
		Language:  "py",
		ProblemID: "p1",
		TeamID:    "t1",
	})
	require.NoError(t, err)
	return subm
}

func assertSrvcErrorCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr), "expected a service error, got %v", err)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}
