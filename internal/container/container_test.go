package container

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"
)

func TestPostgresConfig(t *testing.T) {
	cfg := PostgresConfig("host=localhost")

	assert.Equal(t, "PostgreSQL", cfg.Name)
	assert.Equal(t, "docker/docker-compose.postgres.yml", cfg.ComposeFile)
	assert.True(t, cfg.WaitForReady != nil)
}

func TestStartFailsWithoutComposeFile(t *testing.T) {
	called := false
	err := Start(Config{
		Name:        "PostgreSQL",
		ComposeFile: "does/not/exist.yml",
		WaitForReady: func() error {
			called = true
			return errors.New("unreachable")
		},
	})

	assert.True(t, err != nil)
	assert.False(t, called)
}
