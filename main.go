package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"ferris-shooter/config"
	"ferris-shooter/logging"
)

func main() {
	configDir := pflag.StringP("config", "c", ".", "directory containing "+config.ConfigName)
	config.RegisterFlags(pflag.CommandLine)
	pflag.Parse()

	logger := logging.Setup("info", os.Stdout)

	if err := config.Load(*configDir); err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := config.BindFlags(pflag.CommandLine); err != nil {
		logger.Fatal().Err(err).Msg("failed to bind flags")
	}

	settings, err := config.Current()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read config")
	}

	logger = logging.Setup(settings.LogLevel, os.Stdout)

	game, err := NewGame(settings)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game")
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("game exited with error")
	}
}
