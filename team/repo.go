package team

import "context"

type TeamRepo interface {
	Get(ctx context.Context, id string) (*Team, error)
	List(ctx context.Context) ([]Team, error)
	// ReplaceAll atomically swaps the whole team set.
	ReplaceAll(ctx context.Context, teams []Team) error
}

type ParticipantRepo interface {
	List(ctx context.Context) ([]Participant, error)
	// ReplaceAll atomically swaps the whole roster.
	ReplaceAll(ctx context.Context, participants []Participant) error
}
