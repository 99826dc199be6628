package conf

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config carries every endpoint and knob the services need. It is built
// once in main and handed to constructors; no component reads the
// environment on its own.
type Config struct {
	HTTPAddress string `toml:"http_address"`
	JwtKey      string `toml:"jwt_key"`

	Judge        JudgeConfig        `toml:"judge"`
	Seeder       SeederConfig       `toml:"seeder"`
	Registration RegistrationConfig `toml:"registration"`
	Runner       RunnerConfig       `toml:"runner"`
	Sync         SyncConfig         `toml:"sync"`
	DynamoDB     DynamoDBConfig     `toml:"dynamodb"`
}

type JudgeConfig struct {
	// Endpoint is the base URL of the external execution engine.
	Endpoint string `toml:"endpoint"`
	// CallbackURL is where the engine delivers verdicts.
	CallbackURL string `toml:"callback_url"`
}

type SeederConfig struct {
	Endpoint string `toml:"endpoint"`
}

type RegistrationConfig struct {
	Endpoint string `toml:"endpoint"`
}

type RunnerConfig struct {
	// RefreshEndpoint is pinged fire-and-forget after a participant sync.
	RefreshEndpoint string `toml:"refresh_endpoint"`
}

type SyncConfig struct {
	// MaxFetchInFlight caps simultaneous outbound resource fetches.
	MaxFetchInFlight int `toml:"max_fetch_in_flight"`
}

type DynamoDBConfig struct {
	Enabled           bool   `toml:"enabled"`
	Region            string `toml:"region"`
	SubmissionsTable  string `toml:"submissions_table"`
	ProblemsTable     string `toml:"problems_table"`
	TeamsTable        string `toml:"teams_table"`
	ParticipantsTable string `toml:"participants_table"`
}

// Read builds the config from an optional TOML file (CONF_PATH, default
// conf.toml when present) overlaid with environment variables.
func Read() (*Config, error) {
	cfg := &Config{
		HTTPAddress: ":8080",
		Sync:        SyncConfig{MaxFetchInFlight: 10},
		DynamoDB:    DynamoDBConfig{Region: "eu-central-1"},
	}

	path := os.Getenv("CONF_PATH")
	if path == "" {
		path = "conf.toml"
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) && os.Getenv("CONF_PATH") != "" {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	overlayEnv(&cfg.HTTPAddress, "HTTP_ADDRESS")
	overlayEnv(&cfg.JwtKey, "JWT_KEY")
	overlayEnv(&cfg.Judge.Endpoint, "JUDGE_ENDPOINT")
	overlayEnv(&cfg.Judge.CallbackURL, "JUDGE_CALLBACK_URL")
	overlayEnv(&cfg.Seeder.Endpoint, "SEEDER_ENDPOINT")
	overlayEnv(&cfg.Registration.Endpoint, "REGISTRATION_ENDPOINT")
	overlayEnv(&cfg.Runner.RefreshEndpoint, "RUNNER_REFRESH_ENDPOINT")

	if cfg.Judge.Endpoint == "" {
		return nil, errors.New("judge endpoint is not configured")
	}
	if cfg.Judge.CallbackURL == "" {
		return nil, errors.New("judge callback URL is not configured")
	}

	return cfg, nil
}

func overlayEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
