package http

import (
	"time"

	"github.com/codearena/backend/judge"
	"github.com/codearena/backend/team"
)

type submissionResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	ProblemID string `json:"problemId"`
	TeamID    string `json:"teamId"`
	LangID    int    `json:"langId"`
	State     string `json:"state"`
	Points    int    `json:"points"`
	CreatedAt string `json:"createdAt"`
}

func mapSubm(subm judge.Submission) submissionResponse {
	return submissionResponse{
		ID:        subm.ID.String(),
		Token:     subm.Token,
		ProblemID: subm.ProblemID,
		TeamID:    subm.TeamID,
		LangID:    subm.LangID,
		State:     string(subm.State),
		Points:    subm.Points,
		CreatedAt: subm.CreatedAt.Format(time.RFC3339),
	}
}

type leaderboardRow struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

func mapLeaderboard(teams []team.Team) []leaderboardRow {
	rows := make([]leaderboardRow, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, leaderboardRow{Name: t.Name, Points: t.Points})
	}
	return rows
}
