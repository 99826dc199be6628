package judge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/team"
	"github.com/google/uuid"
)

type JudgeSrvc struct {
	logger *slog.Logger

	repo SubmRepo
	exec ExecClient

	problemSrvc *problem.ProblemSrvc
	teamSrvc    *team.TeamSrvc

	// callbackURL is handed to the engine with every dispatch,
	// configured once at startup.
	callbackURL string
}

func NewJudgeSrvc(
	repo SubmRepo,
	exec ExecClient,
	problemSrvc *problem.ProblemSrvc,
	teamSrvc *team.TeamSrvc,
	callbackURL string,
) (*JudgeSrvc, error) {
	if err := validateVerdictTable(); err != nil {
		return nil, fmt.Errorf("verdict table validation failed: %w", err)
	}
	if callbackURL == "" {
		return nil, fmt.Errorf("callback URL must be configured")
	}

	return &JudgeSrvc{
		logger:      slog.Default().With("module", "judge"),
		repo:        repo,
		exec:        exec,
		problemSrvc: problemSrvc,
		teamSrvc:    teamSrvc,
		callbackURL: callbackURL,
	}, nil
}

// GetSubm returns one submission by its internal id.
func (s *JudgeSrvc) GetSubm(ctx context.Context, id uuid.UUID) (*Submission, error) {
	subm, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if subm == nil {
		return nil, newErrSubmissionNotFound(id.String())
	}
	return subm, nil
}

// ListSubms returns all tracked submissions.
func (s *JudgeSrvc) ListSubms(ctx context.Context) ([]Submission, error) {
	return s.repo.List(ctx)
}

// ClearSubms wipes all submissions. Used by roster reconciliation,
// which must clear submissions before participants to avoid dangling
// references under concurrent reads.
func (s *JudgeSrvc) ClearSubms(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
