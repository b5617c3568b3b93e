package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/colorswitch/internal/config"
	"github.com/vovakirdan/colorswitch/internal/core"
	"github.com/vovakirdan/colorswitch/internal/platform/host"
	"github.com/vovakirdan/colorswitch/internal/storage"
)

// loadTunnel loads the tunnel config and applies --difficulty on top.
func loadTunnel() (config.TunnelConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TunnelConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openServices builds the shared services for a command. Storage failures
// are reported and the game keeps running without that store. The returned
// function closes what was opened.
func openServices() (host.Services, func(), error) {
	tunnel, err := loadTunnel()
	if err != nil {
		return host.Services{}, nil, err
	}

	svc := host.Services{Tunnel: tunnel, Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("score history disabled", "err", err)
	} else {
		svc.Store = store
	}

	data, err := storage.OpenGameData()
	if err != nil {
		logger.Warn("best scores kept in memory only", "err", err)
		data = nil
	}
	svc.HighScores = storage.NewHighScoreManager(data)

	cleanup := func() {
		if svc.Store != nil {
			svc.Store.Close()
		}
	}
	return svc, cleanup, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
