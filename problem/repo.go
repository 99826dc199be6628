package problem

import "context"

type Repo interface {
	Get(ctx context.Context, id string) (*Problem, error)
	List(ctx context.Context) ([]Problem, error)
	// ReplaceAll atomically swaps the whole catalog for the given set.
	// A concurrent reader sees either the old set or the new one,
	// never an empty store.
	ReplaceAll(ctx context.Context, problems []Problem) error
}
