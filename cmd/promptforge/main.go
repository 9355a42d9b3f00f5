package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ced-it/promptforge/internal/apiclient"
	"github.com/ced-it/promptforge/internal/config"
	"github.com/ced-it/promptforge/internal/history"
	"github.com/ced-it/promptforge/internal/saas"
	"github.com/ced-it/promptforge/internal/tui"
)

var version = "dev"

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = config.DefaultClientConfig()
		// First run: persist the defaults so they can be edited.
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	dir, err := config.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := history.NewStore(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	api := apiclient.New(cfg.ServerURL)

	var saasClient *saas.Client
	if cfg.SaasURL != "" {
		saasClient = saas.NewClient(cfg.SaasURL, cfg.AppSlug)
	}

	app := tui.NewApp(cfg, api, saasClient, store)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
