package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/taskboard/internal/app"
	"github.com/nhle/taskboard/internal/feed"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
)

func main() {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to the configuration file")
	noFeed := flag.Bool("no-feed", false, "disable the simulated real-time feed")
	flag.Parse()

	if err := run(*configPath, *noFeed); err != nil {
		fmt.Fprintf(os.Stderr, "taskboard: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, noFeed bool) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s := store.New(
		store.WithTheme(model.Theme(cfg.Display.Theme)),
		store.WithSidebarOpen(cfg.Display.SidebarOpen),
	)
	s.SeedFixtures(store.DefaultFixtures())

	simulator := feed.New(s, feed.WithInterval(
		time.Duration(cfg.Feed.IntervalSec)*time.Second,
	))
	defer simulator.Disconnect()

	feedEnabled := cfg.Feed.Enabled && !noFeed

	program := tea.NewProgram(
		app.New(s, simulator, feedEnabled),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}
