package problem

import (
	"context"
	"fmt"
	"log/slog"
)

type ProblemSrvc struct {
	logger *slog.Logger
	repo   Repo
}

func NewProblemSrvc(repo Repo) *ProblemSrvc {
	return &ProblemSrvc{
		logger: slog.Default().With("module", "problem"),
		repo:   repo,
	}
}

// List returns the public view of the whole catalog.
func (s *ProblemSrvc) List(ctx context.Context) ([]PublicProblem, error) {
	problems, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	res := make([]PublicProblem, 0, len(problems))
	for i := range problems {
		res = append(res, problems[i].Public())
	}
	return res, nil
}

// Get returns the public view of a single problem.
func (s *ProblemSrvc) Get(ctx context.Context, id string) (*PublicProblem, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if p == nil {
		return nil, newErrProblemNotFound(id)
	}
	public := p.Public()
	return &public, nil
}

// GetForJudge returns the judging view including grading text. A nil
// result with nil error means the problem does not exist; the caller
// owns the error it reports.
func (s *ProblemSrvc) GetForJudge(ctx context.Context, id string) (*Problem, error) {
	return s.repo.Get(ctx, id)
}

// ReplaceAll atomically publishes a new catalog.
func (s *ProblemSrvc) ReplaceAll(ctx context.Context, problems []Problem) error {
	if err := s.repo.ReplaceAll(ctx, problems); err != nil {
		return fmt.Errorf("failed to replace problem catalog: %w", err)
	}
	s.logger.Info("problem catalog replaced", "count", len(problems))
	return nil
}
