package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the file Load looks for in the config directory
const ConfigName = "ferris.cfg.json"

// PlayerConfig holds player ship settings
type PlayerConfig struct {
	Speed            float32 `json:"speed" mapstructure:"speed"`
	HP               uint8   `json:"hp" mapstructure:"hp"`
	BulletCooldownMS int64   `json:"bulletCooldownMS" mapstructure:"bulletCooldownMS"`
}

// EnemyConfig holds enemy and wave settings
type EnemyConfig struct {
	BulletCooldownMS int64   `json:"bulletCooldownMS" mapstructure:"bulletCooldownMS"`
	SpawnIntervalMS  int64   `json:"spawnIntervalMS" mapstructure:"spawnIntervalMS"`
	HP               uint8   `json:"hp" mapstructure:"hp"`
	Speed            float32 `json:"speed" mapstructure:"speed"`
	// Waves between bosses and between powerups, 0 disables them
	BossEvery    int `json:"bossEvery" mapstructure:"bossEvery"`
	PowerupEvery int `json:"powerupEvery" mapstructure:"powerupEvery"`
}

// BulletConfig holds projectile settings
type BulletConfig struct {
	EnemySpeed  float32 `json:"enemySpeed" mapstructure:"enemySpeed"`
	PlayerSpeed float32 `json:"playerSpeed" mapstructure:"playerSpeed"`
	LifetimeMS  int64   `json:"lifetimeMS" mapstructure:"lifetimeMS"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// Settings is the full game configuration. A zero Seed seeds from the clock.
type Settings struct {
	LogLevel   string       `json:"logLevel" mapstructure:"logLevel"`
	Seed       uint64       `json:"seed" mapstructure:"seed"`
	DisableSFX bool         `json:"disableSFX" mapstructure:"disableSFX"`
	SFXVolume  float64      `json:"sfxVolume" mapstructure:"sfxVolume"`
	MaxFrameMS uint64       `json:"maxFrameMS" mapstructure:"maxFrameMS"`
	Window     WindowConfig `json:"window" mapstructure:"window"`
	Player     PlayerConfig `json:"player" mapstructure:"player"`
	Enemy      EnemyConfig  `json:"enemy" mapstructure:"enemy"`
	Bullet     BulletConfig `json:"bullet" mapstructure:"bullet"`
}

// SetDefaults registers the default value of every setting on the global viper
func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("disableSFX", false)
	v.SetDefault("sfxVolume", 0.3)
	v.SetDefault("maxFrameMS", MaxFrameMS)

	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", "Ferris Shooter")

	v.SetDefault("player.speed", 300)
	v.SetDefault("player.hp", 3)
	v.SetDefault("player.bulletCooldownMS", 150)

	v.SetDefault("enemy.bulletCooldownMS", 1500)
	v.SetDefault("enemy.spawnIntervalMS", 2000)
	v.SetDefault("enemy.hp", 1)
	v.SetDefault("enemy.speed", 80)
	v.SetDefault("enemy.bossEvery", 10)
	v.SetDefault("enemy.powerupEvery", 4)

	v.SetDefault("bullet.enemySpeed", 200)
	v.SetDefault("bullet.playerSpeed", 500)
	v.SetDefault("bullet.lifetimeMS", 4000)
}

// Load sets default values and reads the JSON config file from configDir.
// A missing file keeps the defaults; FERRIS_* environment variables override both.
func Load(configDir string) error {
	SetDefaults()

	viper.SetEnvPrefix("ferris")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Current decodes the loaded configuration into Settings
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return s, nil
}

// Default returns the default settings without touching the global viper
func Default() Settings {
	v := viper.New()
	setDefaults(v)

	var s Settings
	_ = v.Unmarshal(&s)
	return s
}
