package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"disableSFX": true,
		"enemy": { "bulletCooldownMS": 900, "bossEvery": 3 },
		"window": { "width": 640 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.DisableSFX)
	assert.Equal(t, int64(900), s.Enemy.BulletCooldownMS)
	assert.Equal(t, 3, s.Enemy.BossEvery)
	assert.Equal(t, 640, s.Window.Width)
	assert.Equal(t, WindowHeight, s.Window.Height)
	assert.Equal(t, int64(2000), s.Enemy.SpawnIntervalMS)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(`{ not json`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("FERRIS_ENEMY_BULLETCOOLDOWNMS", "250")
	t.Setenv("FERRIS_DISABLESFX", "true")

	require.NoError(t, Load(t.TempDir()))

	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, int64(250), s.Enemy.BulletCooldownMS)
	assert.True(t, s.DisableSFX)
}

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, uint64(0), s.Seed)
	assert.False(t, s.DisableSFX)
	assert.Equal(t, uint64(MaxFrameMS), s.MaxFrameMS)
	assert.Equal(t, WindowWidth, s.Window.Width)
	assert.Equal(t, WindowHeight, s.Window.Height)
	assert.Equal(t, "Ferris Shooter", s.Window.Title)
	assert.Equal(t, float32(300), s.Player.Speed)
	assert.Equal(t, uint8(3), s.Player.HP)
	assert.Equal(t, int64(150), s.Player.BulletCooldownMS)
	assert.Equal(t, int64(1500), s.Enemy.BulletCooldownMS)
	assert.Equal(t, 10, s.Enemy.BossEvery)
	assert.Equal(t, 4, s.Enemy.PowerupEvery)
	assert.Equal(t, float32(200), s.Bullet.EnemySpeed)
	assert.Equal(t, float32(500), s.Bullet.PlayerSpeed)
	assert.Equal(t, int64(4000), s.Bullet.LifetimeMS)
}

func TestGetWindowSize(t *testing.T) {
	w, h := GetWindowSize()
	assert.Equal(t, WindowWidth, w)
	assert.Equal(t, WindowHeight, h)
}
