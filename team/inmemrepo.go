package team

import (
	"context"
	"sync"
)

type inMemTeamRepo struct {
	mu    sync.RWMutex
	teams map[string]Team
}

func NewInMemTeamRepo() *inMemTeamRepo {
	return &inMemTeamRepo{teams: make(map[string]Team)}
}

// Get implements TeamRepo
func (r *inMemTeamRepo) Get(ctx context.Context, id string) (*Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.teams[id]; ok {
		return &t, nil
	}
	return nil, nil
}

// List implements TeamRepo
func (r *inMemTeamRepo) List(ctx context.Context) ([]Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Team, 0, len(r.teams))
	for _, t := range r.teams {
		res = append(res, t)
	}
	return res, nil
}

// ReplaceAll implements TeamRepo
func (r *inMemTeamRepo) ReplaceAll(ctx context.Context, teams []Team) error {
	next := make(map[string]Team, len(teams))
	for _, t := range teams {
		next[t.ID] = t
	}
	r.mu.Lock()
	r.teams = next
	r.mu.Unlock()
	return nil
}

type inMemParticipantRepo struct {
	mu           sync.RWMutex
	participants []Participant
}

func NewInMemParticipantRepo() *inMemParticipantRepo {
	return &inMemParticipantRepo{}
}

// List implements ParticipantRepo
func (r *inMemParticipantRepo) List(ctx context.Context) ([]Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Participant, len(r.participants))
	copy(res, r.participants)
	return res, nil
}

// ReplaceAll implements ParticipantRepo
func (r *inMemParticipantRepo) ReplaceAll(ctx context.Context, participants []Participant) error {
	next := make([]Participant, len(participants))
	copy(next, participants)
	r.mu.Lock()
	r.participants = next
	r.mu.Unlock()
	return nil
}
