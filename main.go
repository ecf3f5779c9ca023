package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/talentwork128/mailvet/internal/api"
	"github.com/talentwork128/mailvet/internal/auth"
	"github.com/talentwork128/mailvet/internal/cache"
	"github.com/talentwork128/mailvet/internal/config"
	"github.com/talentwork128/mailvet/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mailvet: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mailvet: creating state dir: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	db, err := cache.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mailvet: opening cache: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewTokenStore(cfg.TokenPath)
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, tokens)
	session := auth.NewSession(client, tokens)

	app := ui.NewApp(cfg, client, db, session)
	p := tea.NewProgram(app, tea.WithAltScreen())
	app.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "mailvet: %v\n", err)
		os.Exit(1)
	}
}
