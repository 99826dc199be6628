package problem

import (
	"context"
	"sync"
)

type inMemRepo struct {
	mu       sync.RWMutex
	problems map[string]Problem
	order    []string // manifest order, for stable listings
}

func NewInMemRepo() *inMemRepo {
	return &inMemRepo{
		problems: make(map[string]Problem),
	}
}

// Get implements Repo
func (r *inMemRepo) Get(ctx context.Context, id string) (*Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.problems[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// List implements Repo
func (r *inMemRepo) List(ctx context.Context) ([]Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Problem, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.problems[id])
	}
	return res, nil
}

// ReplaceAll implements Repo. The staged set is built outside the
// lock; the swap itself is a pointer assignment.
func (r *inMemRepo) ReplaceAll(ctx context.Context, problems []Problem) error {
	next := make(map[string]Problem, len(problems))
	order := make([]string, 0, len(problems))
	for _, p := range problems {
		if _, ok := next[p.ID]; !ok {
			order = append(order, p.ID)
		}
		next[p.ID] = p
	}
	r.mu.Lock()
	r.problems = next
	r.order = order
	r.mu.Unlock()
	return nil
}
