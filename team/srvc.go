package team

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

type TeamSrvc struct {
	logger       *slog.Logger
	teams        TeamRepo
	participants ParticipantRepo
}

func NewTeamSrvc(teams TeamRepo, participants ParticipantRepo) *TeamSrvc {
	return &TeamSrvc{
		logger:       slog.Default().With("module", "team"),
		teams:        teams,
		participants: participants,
	}
}

// GetTeam returns a team by id. A nil result with nil error means the
// team does not exist.
func (s *TeamSrvc) GetTeam(ctx context.Context, id string) (*Team, error) {
	return s.teams.Get(ctx, id)
}

// GetTeamChecked is GetTeam with a not-found service error attached.
func (s *TeamSrvc) GetTeamChecked(ctx context.Context, id string) (*Team, error) {
	t, err := s.teams.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if t == nil {
		return nil, newErrTeamNotFound(id)
	}
	return t, nil
}

// Leaderboard returns all teams ordered by points descending. Ties keep
// a stable name order so the board does not jitter between refreshes.
func (s *TeamSrvc) Leaderboard(ctx context.Context) ([]Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Points != teams[j].Points {
			return teams[i].Points > teams[j].Points
		}
		return teams[i].Name < teams[j].Name
	})
	return teams, nil
}

// ListParticipants returns the current roster.
func (s *TeamSrvc) ListParticipants(ctx context.Context) ([]Participant, error) {
	return s.participants.List(ctx)
}

// ReplaceRoster atomically publishes a new participant roster and the
// team set derived from it. Points of teams that survive the refresh
// are preserved.
func (s *TeamSrvc) ReplaceRoster(ctx context.Context, participants []Participant) error {
	existing, err := s.teams.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list teams: %w", err)
	}
	pointsByID := make(map[string]int, len(existing))
	for _, t := range existing {
		pointsByID[t.ID] = t.Points
	}

	seen := make(map[string]struct{})
	teams := make([]Team, 0)
	for _, p := range participants {
		if p.TeamName == "" {
			continue
		}
		if _, ok := seen[p.TeamName]; ok {
			continue
		}
		seen[p.TeamName] = struct{}{}
		teams = append(teams, Team{
			ID:     p.TeamName,
			Name:   p.TeamName,
			Points: pointsByID[p.TeamName],
		})
	}

	if err := s.participants.ReplaceAll(ctx, participants); err != nil {
		return fmt.Errorf("failed to replace participants: %w", err)
	}
	if err := s.teams.ReplaceAll(ctx, teams); err != nil {
		return fmt.Errorf("failed to replace teams: %w", err)
	}
	s.logger.Info("roster replaced",
		"participants", len(participants), "teams", len(teams))
	return nil
}
