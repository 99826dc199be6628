package judge

import (
	"context"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// inMemRepo keeps submissions in concurrent maps. Dispatch and callback
// operations touch disjoint rows, so per-entry consistency is enough.
type inMemRepo struct {
	subms   *xsync.MapOf[uuid.UUID, Submission]
	byToken *xsync.MapOf[string, uuid.UUID]
}

func NewInMemRepo() *inMemRepo {
	return &inMemRepo{
		subms:   xsync.NewMapOf[uuid.UUID, Submission](),
		byToken: xsync.NewMapOf[string, uuid.UUID](),
	}
}

// Store implements submRepo
func (r *inMemRepo) Store(ctx context.Context, subm Submission) error {
	r.subms.Store(subm.ID, subm)
	r.byToken.Store(subm.Token, subm.ID)
	return nil
}

// Get implements submRepo
func (r *inMemRepo) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	if subm, ok := r.subms.Load(id); ok {
		return &subm, nil
	}
	return nil, nil
}

// GetByToken implements submRepo
func (r *inMemRepo) GetByToken(ctx context.Context, token string) (*Submission, error) {
	id, ok := r.byToken.Load(token)
	if !ok {
		return nil, nil
	}
	return r.Get(ctx, id)
}

// List implements submRepo
func (r *inMemRepo) List(ctx context.Context) ([]Submission, error) {
	res := make([]Submission, 0, r.subms.Size())
	r.subms.Range(func(_ uuid.UUID, subm Submission) bool {
		res = append(res, subm)
		return true
	})
	return res, nil
}

// Clear implements submRepo
func (r *inMemRepo) Clear(ctx context.Context) error {
	r.subms.Clear()
	r.byToken.Clear()
	return nil
}
