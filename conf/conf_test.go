package conf_test

import (
	"testing"

	"github.com/codearena/backend/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFromEnv(t *testing.T) {
	t.Setenv("CONF_PATH", "does-not-exist.toml")
	t.Setenv("JUDGE_ENDPOINT", "http://judge.local")
	t.Setenv("JUDGE_CALLBACK_URL", "http://backend.local/submissions/callback")
	t.Setenv("SEEDER_ENDPOINT", "http://seeder.local")

	cfg, err := conf.Read()
	require.NoError(t, err)
	assert.Equal(t, "http://judge.local", cfg.Judge.Endpoint)
	assert.Equal(t, "http://seeder.local", cfg.Seeder.Endpoint)
	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, 10, cfg.Sync.MaxFetchInFlight)
}

func TestReadRequiresJudgeEndpoint(t *testing.T) {
	t.Setenv("CONF_PATH", "does-not-exist.toml")
	t.Setenv("JUDGE_ENDPOINT", "")
	t.Setenv("JUDGE_CALLBACK_URL", "")

	_, err := conf.Read()
	require.Error(t, err)
}
