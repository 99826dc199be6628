package judge

import (
	"context"

	"github.com/google/uuid"
)

type SubmRepo interface {
	Store(ctx context.Context, subm Submission) error
	Get(ctx context.Context, id uuid.UUID) (*Submission, error)
	GetByToken(ctx context.Context, token string) (*Submission, error)
	List(ctx context.Context) ([]Submission, error)
	Clear(ctx context.Context) error
}
