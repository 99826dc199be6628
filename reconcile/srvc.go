package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/codearena/backend/judge"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/team"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ItemFailure names one item that a reconciliation pass could not
// fully process.
type ItemFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Report is the aggregate result of one reconciliation pass. Failures
// lists items that were degraded or skipped; the pass itself still
// succeeded.
type Report struct {
	Written  int           `json:"written"`
	Failures []ItemFailure `json:"failures,omitempty"`
}

type SyncSrvc struct {
	logger  *slog.Logger
	fetcher *Fetcher
	httpc   *http.Client

	seederEndpoint       string
	registrationEndpoint string
	runnerEndpoint       string

	problemSrvc *problem.ProblemSrvc
	teamSrvc    *team.TeamSrvc
	judgeSrvc   *judge.JudgeSrvc

	// at most one pass of a given kind in flight; two racing
	// repopulations would interleave destructively
	problemsMu     sync.Mutex
	participantsMu sync.Mutex
}

func NewSyncSrvc(
	fetcher *Fetcher,
	problemSrvc *problem.ProblemSrvc,
	teamSrvc *team.TeamSrvc,
	judgeSrvc *judge.JudgeSrvc,
	seederEndpoint string,
	registrationEndpoint string,
	runnerEndpoint string,
) *SyncSrvc {
	return &SyncSrvc{
		logger:               slog.Default().With("module", "reconcile"),
		fetcher:              fetcher,
		httpc:                &http.Client{Timeout: 30 * time.Second},
		seederEndpoint:       seederEndpoint,
		registrationEndpoint: registrationEndpoint,
		runnerEndpoint:       runnerEndpoint,
		problemSrvc:          problemSrvc,
		teamSrvc:             teamSrvc,
		judgeSrvc:            judgeSrvc,
	}
}

// SyncProblems refreshes the problem catalog from the seeder manifest.
// The whole replacement set is staged first and published in one
// ReplaceAll, so a concurrent reader never observes an empty catalog.
// Resource-fetch failures degrade the affected problem's text fields
// and are reported; a manifest-fetch failure aborts before any
// mutation.
func (s *SyncSrvc) SyncProblems(ctx context.Context) (*Report, error) {
	s.problemsMu.Lock()
	defer s.problemsMu.Unlock()

	s.logger.Info("connecting to seeding endpoint", "endpoint", s.seederEndpoint)

	var manifest manifestPayload
	if err := s.getJson(ctx, s.seederEndpoint, &manifest); err != nil {
		return nil, newErrSeederUnavailable().SetDebug(err)
	}

	report := &Report{}
	var reportMu sync.Mutex
	staged := make([]problem.Problem, len(manifest.Payload))

	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range manifest.Payload {
		i, entry := i, entry
		g.Go(func() error {
			prob, missing := s.buildProblem(gctx, entry)
			staged[i] = prob
			if len(missing) > 0 {
				reportMu.Lock()
				report.Failures = append(report.Failures, ItemFailure{
					ID:     entry.ID,
					Reason: fmt.Sprintf("failed to fetch %v", missing),
				})
				reportMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.problemSrvc.ReplaceAll(ctx, staged); err != nil {
		return nil, err
	}
	report.Written = len(staged)

	s.logger.Info("seeded problems into storage",
		"count", report.Written, "degraded", len(report.Failures))

	return report, nil
}

// buildProblem fetches the five text resources of one manifest entry
// and assembles the Problem. missing names the fields whose fetch
// failed; those stay empty and the problem is still included.
func (s *SyncSrvc) buildProblem(ctx context.Context, entry manifestEntry) (problem.Problem, []string) {
	texts := s.fetcher.FetchAll(ctx, []string{
		entry.Input,
		entry.Output,
		entry.Instructions,
		entry.SampleInput,
		entry.SampleOutput,
	})

	fieldNames := []string{"input", "output", "instructions", "sampleInput", "sampleOutput"}
	var missing []string
	text := func(i int) string {
		if texts[i] == nil {
			missing = append(missing, fieldNames[i])
			return ""
		}
		return *texts[i]
	}

	prob := problem.Problem{
		ID:                  entry.ID,
		Name:                entry.ID,
		MaxPoints:           100,
		InputText:           text(0),
		OutputText:          text(1),
		InstructionsText:    text(2),
		InputFileURL:        entry.Input,
		OutputFileURL:       entry.Output,
		InstructionsFileURL: entry.Instructions,
		WindowsFileURL:      entry.Windows,
		ObjectFileURL:       entry.Object,
		MacFileURL:          entry.Mac,
		Multiplier:          1,
		SampleInput:         text(3),
		SampleOutput:        text(4),
	}
	if entry.Multiplier != nil {
		prob.Multiplier = *entry.Multiplier
	}
	if prob.SampleInput == "" {
		prob.SampleInput = "sample input"
	}
	if prob.SampleOutput == "" {
		prob.SampleOutput = "sample output"
	}
	return prob, missing
}

// SyncParticipants refreshes the participant roster from the
// registration source. The roster is fetched and mapped before any
// mutation; a fetch failure leaves storage untouched. Submissions are
// cleared before the roster swap so no submission can reference a
// participant that is about to disappear. Per-item mapping failures
// are isolated, logged and aggregated into the report.
func (s *SyncSrvc) SyncParticipants(ctx context.Context) (*Report, error) {
	s.participantsMu.Lock()
	defer s.participantsMu.Unlock()

	var roster []rosterEntry
	if err := s.getJson(ctx, s.registrationEndpoint, &roster); err != nil {
		return nil, newErrRegistrationUnavailable().SetDebug(err)
	}

	report := &Report{}
	participants := make([]team.Participant, 0, len(roster))
	for _, entry := range roster {
		p, err := buildParticipant(entry)
		if err != nil {
			s.logger.Warn("skipping roster entry",
				"name", entry.Name, "team", entry.TeamName, "error", err)
			report.Failures = append(report.Failures, ItemFailure{
				ID:     entry.Email,
				Reason: err.Error(),
			})
			continue
		}
		s.logger.Debug("adding participant", "name", p.Name, "google_id", p.GoogleID)
		participants = append(participants, p)
	}

	if err := s.judgeSrvc.ClearSubms(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("cleared judge submissions")

	if err := s.teamSrvc.ReplaceRoster(ctx, participants); err != nil {
		return nil, err
	}
	report.Written = len(participants)

	// inform the task runner that storage changed; its own refresh is
	// long-running and not this service's responsibility
	go s.pingRunner()

	return report, nil
}

func buildParticipant(entry rosterEntry) (team.Participant, error) {
	if entry.Email == "" {
		return team.Participant{}, fmt.Errorf("roster entry has no email")
	}
	if entry.GoogleID == "" {
		return team.Participant{}, fmt.Errorf("roster entry has no google id")
	}
	if entry.Name == "" {
		return team.Participant{}, fmt.Errorf("roster entry has no name")
	}
	return team.Participant{
		ID:       uuid.NewString(),
		Name:     entry.Name,
		Email:    entry.Email,
		GoogleID: entry.GoogleID,
		IsAdmin:  entry.IsAdmin,
		TeamName: entry.TeamName,
	}, nil
}

// pingRunner is fire-and-forget: only the success of the HTTP exchange
// is observed, never its body.
func (s *SyncSrvc) pingRunner() {
	if s.runnerEndpoint == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.runnerEndpoint, nil)
	if err != nil {
		s.logger.Error("failed to build runner ping", "error", err)
		return
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		s.logger.Error("problem connecting task-runner", "error", err)
		return
	}
	resp.Body.Close()
	s.logger.Info("pinged task-runner", "status", resp.StatusCode)
}

func (s *SyncSrvc) getJson(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
