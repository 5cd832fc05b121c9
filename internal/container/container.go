package container

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/moguls753/football-kpi/internal/source/postgres"
)

// Config defines configuration for database container startup
type Config struct {
	Name         string       // Display name, e.g. "PostgreSQL"
	ComposeFile  string       // Path to docker-compose file
	WaitForReady func() error // Database-specific readiness check
}

// PostgresConfig starts the match-data database used by the postgres source
func PostgresConfig(dsn string) Config {
	return Config{
		Name:        "PostgreSQL",
		ComposeFile: "docker/docker-compose.postgres.yml",
		WaitForReady: func() error {
			return postgres.WaitForReady(dsn, 30*time.Second)
		},
	}
}

// Start starts a database container and blocks until it is ready
func Start(cfg Config) error {
	fmt.Printf("🐳 Starting %s container...\n", cfg.Name)

	cmd := exec.Command("docker", "compose", "-f", cfg.ComposeFile, "up", "-d")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("start container: %w\nOutput: %s", err, string(output))
	}

	fmt.Printf("⏳ Waiting for %s to initialize...\n", cfg.Name)
	if err := cfg.WaitForReady(); err != nil {
		return fmt.Errorf("%s failed to start: %w", cfg.Name, err)
	}

	fmt.Println("✅ Container ready")
	return nil
}

// Stop stops the container. The data volume is kept, it holds the imported seasons.
func Stop(composeFile string) {
	fmt.Println("\n🧹 Stopping container...")

	cmd := exec.Command("docker", "compose", "-f", composeFile, "down")
	// Ignore errors on cleanup - container might already be stopped
	cmd.Run()

	fmt.Println("✅ Container stopped")
}
