package judge

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

type CreateSubmissionParams struct {
	Code      string
	Language  string
	ProblemID string
	TeamID    string
}

// CreateSubmission resolves the language, verifies the referenced
// problem and team, dispatches the code to the execution engine and
// persists the tracked submission in IN_QUEUE. Nothing is persisted and
// nothing is dispatched when any check fails. There is no automatic
// retry on dispatch failure; the caller resubmits.
func (s *JudgeSrvc) CreateSubmission(ctx context.Context, params *CreateSubmissionParams) (*Submission, error) {
	lang, ok := ResolveLanguage(params.Language)
	if !ok {
		return nil, newErrUnsupportedLanguage(params.Language)
	}

	prob, err := s.problemSrvc.GetForJudge(ctx, params.ProblemID)
	if err != nil {
		return nil, err
	}
	if prob == nil {
		return nil, newErrProblemNotFound(params.ProblemID)
	}

	tm, err := s.teamSrvc.GetTeam(ctx, params.TeamID)
	if err != nil {
		return nil, err
	}
	if tm == nil {
		return nil, newErrTeamNotFound(params.TeamID)
	}

	req := ExecRequest{
		SourceCode:     base64.StdEncoding.EncodeToString([]byte(params.Code)),
		LanguageID:     lang.EngineID,
		CallbackURL:    s.callbackURL,
		ExpectedOutput: base64.StdEncoding.EncodeToString([]byte(prob.OutputText)),
		Stdin:          base64.StdEncoding.EncodeToString([]byte(prob.InputText)),
	}

	token, err := s.exec.SubmitExec(ctx, req)
	if err != nil {
		return nil, newErrDispatchFailed().SetDebug(err)
	}

	subm := Submission{
		ID:        uuid.New(),
		Token:     token,
		ProblemID: prob.ID,
		TeamID:    tm.ID,
		LangID:    lang.EngineID,
		State:     StateInQueue,
		Points:    0,
		Code:      params.Code,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Store(ctx, subm); err != nil {
		return nil, err
	}

	s.logger.Info("submission dispatched",
		"subm_id", subm.ID, "token", subm.Token,
		"problem", subm.ProblemID, "team", subm.TeamID)

	return &subm, nil
}
