package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codearena/backend/judge"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/reconcile"
	"github.com/codearena/backend/srvcerror"
	"github.com/codearena/backend/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecClient struct{}

func (f *fakeExecClient) SubmitExec(ctx context.Context, req judge.ExecRequest) (string, error) {
	return "tok-1", nil
}

type syncEnv struct {
	syncSrvc    *reconcile.SyncSrvc
	problemSrvc *problem.ProblemSrvc
	teamSrvc    *team.TeamSrvc
	judgeSrvc   *judge.JudgeSrvc

	teamRepo team.TeamRepo
}

func setupSyncEnv(t *testing.T, seederURL, registrationURL, runnerURL string) *syncEnv {
	t.Helper()

	problemSrvc := problem.NewProblemSrvc(problem.NewInMemRepo())
	teamRepo := team.NewInMemTeamRepo()
	teamSrvc := team.NewTeamSrvc(teamRepo, team.NewInMemParticipantRepo())

	judgeSrvc, err := judge.NewJudgeSrvc(
		judge.NewInMemRepo(), &fakeExecClient{}, problemSrvc, teamSrvc,
		"http://backend.local/submissions/callback")
	require.NoError(t, err)

	fetcher := reconcile.NewFetcher(4)
	syncSrvc := reconcile.NewSyncSrvc(
		fetcher, problemSrvc, teamSrvc, judgeSrvc,
		seederURL, registrationURL, runnerURL)

	return &syncEnv{
		syncSrvc:    syncSrvc,
		problemSrvc: problemSrvc,
		teamSrvc:    teamSrvc,
		judgeSrvc:   judgeSrvc,
		teamRepo:    teamRepo,
	}
}

func assertSrvcErrorCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	srvcErr := &srvcerror.Error{}
	require.True(t, errors.As(err, &srvcErr), "expected a service error, got %v", err)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}
