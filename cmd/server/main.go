package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/codearena/backend/conf"
	"github.com/codearena/backend/http"
	"github.com/codearena/backend/judge"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/reconcile"
	"github.com/codearena/backend/team"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})))

	cfg, err := conf.Read()
	if err != nil {
		slog.Error("failed to read config", "error", err)
		os.Exit(1)
	}
	if cfg.JwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	submRepo, problemRepo, teamRepo, participantRepo := buildRepos(cfg)

	problemSrvc := problem.NewProblemSrvc(problemRepo)
	teamSrvc := team.NewTeamSrvc(teamRepo, participantRepo)

	execClient := judge.NewExecHttpClient(cfg.Judge.Endpoint)
	judgeSrvc, err := judge.NewJudgeSrvc(
		submRepo, execClient, problemSrvc, teamSrvc, cfg.Judge.CallbackURL)
	if err != nil {
		slog.Error("failed to construct judge service", "error", err)
		os.Exit(1)
	}

	fetcher := reconcile.NewFetcher(cfg.Sync.MaxFetchInFlight)
	syncSrvc := reconcile.NewSyncSrvc(
		fetcher, problemSrvc, teamSrvc, judgeSrvc,
		cfg.Seeder.Endpoint,
		cfg.Registration.Endpoint,
		cfg.Runner.RefreshEndpoint,
	)

	httpServer := http.NewHttpServer(
		judgeSrvc, problemSrvc, teamSrvc, syncSrvc, []byte(cfg.JwtKey))

	log.Printf("Starting server on %s", cfg.HTTPAddress)
	err = httpServer.Start(cfg.HTTPAddress)
	log.Printf("Server stopped with error: %v", err)
}

// buildRepos picks DynamoDB-backed stores when enabled, in-memory
// stores otherwise (dev and tests).
func buildRepos(cfg *conf.Config) (
	judge.SubmRepo,
	problem.Repo,
	team.TeamRepo,
	team.ParticipantRepo,
) {
	if !cfg.DynamoDB.Enabled {
		return judge.NewInMemRepo(),
			problem.NewInMemRepo(),
			team.NewInMemTeamRepo(),
			team.NewInMemParticipantRepo()
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.DynamoDB.Region))
	if err != nil {
		slog.Error("unable to load AWS SDK config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	return judge.NewDynamoDbSubmTable(ddbClient, cfg.DynamoDB.SubmissionsTable),
		problem.NewDynamoDbProblemTable(ddbClient, cfg.DynamoDB.ProblemsTable),
		team.NewDynamoDbTeamTable(ddbClient, cfg.DynamoDB.TeamsTable),
		team.NewDynamoDbParticipantTable(ddbClient, cfg.DynamoDB.ParticipantsTable)
}
