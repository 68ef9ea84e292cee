package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, "8787", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.TickInterval())
	assert.Equal(t, 5*time.Minute, cfg.ChallengeDeadline())
	assert.Equal(t, time.Second, cfg.ChallengeCheckInterval())
}

func TestLoad_ReadsYAMLAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tycooner.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1"
server:
  port: "9999"
simulation:
  tick_speed_ms: 500
  seed: 42
balance:
  starting_money: 12345
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	// Unset sections picked up defaults.
	assert.Equal(t, 5, cfg.Challenge.DeadlineMinutes)
	assert.Equal(t, 12345.0, cfg.GameBalance().StartingMoney)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestGameBalance_FallsBackToDefault(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	assert.Equal(t, Default(), cfg.GameBalance())
}

func TestPresets(t *testing.T) {
	def := Default()
	casual := Casual()
	hard := Hard()

	assert.Greater(t, casual.StartingMoney, def.StartingMoney)
	assert.Less(t, hard.StartingMoney, def.StartingMoney)
	assert.Less(t, hard.WarehouseBaseCapacity, def.WarehouseBaseCapacity)
	assert.Greater(t, hard.UnlockCostGrowth, casual.UnlockCostGrowth)
}

func TestFromEnv_OverridesAndPresets(t *testing.T) {
	t.Setenv("STARTING_MONEY", "90000")
	t.Setenv("TRUCK_CAPACITY", "250")

	cfg := FromEnv()
	assert.Equal(t, 90000.0, cfg.StartingMoney)
	assert.Equal(t, 250, cfg.TruckCapacity)

	t.Setenv("DIFFICULTY", "hard")
	assert.Equal(t, Hard(), FromEnv())
}
