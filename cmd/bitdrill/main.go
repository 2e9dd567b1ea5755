package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/bitdrill/internal/drill"
	"github.com/tinytelemetry/bitdrill/internal/game"
	"github.com/tinytelemetry/bitdrill/internal/tui"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

type cliFlags struct {
	configPath  string
	countdown   int
	seed        uint64
	skin        string
	showVersion bool
}

func main() {
	var f cliFlags
	flag.StringVar(&f.configPath, "config", "", "config file (default is $HOME/.config/bitdrill/config.yml)")
	flag.IntVar(&f.countdown, "countdown", 0, "seconds per question (1-60)")
	flag.Uint64Var(&f.seed, "seed", 0, "random seed for problems (0 picks one)")
	flag.StringVar(&f.skin, "skin", "", "colour skin name")
	flag.BoolVar(&f.showVersion, "version", false, "print version information")
	flag.Parse()

	if f.showVersion {
		fmt.Printf("bitdrill - Binary Arithmetic Drill\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(&cfg, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cfg *appConfig, f cliFlags) error {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "countdown":
			cfg.Countdown = f.countdown
		case "seed":
			cfg.Seed = f.seed
		case "skin":
			cfg.Skin = f.skin
		}
	})
	return cfg.validate()
}

func run(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger(cfg.LogFile)
	defer cleanupLogger()

	if err := tui.InitializeSkin(cfg.Skin, filepath.Dir(cfg.ConfigPath)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	ctrl := game.NewController(drill.NewGenerator(drill.NewSource(cfg.Seed)))
	defer ctrl.Close()
	if err := ctrl.Configure(cfg.Countdown); err != nil {
		return err
	}

	updates := tui.NewBridge()
	unsubscribe := ctrl.Subscribe(updates.Publish)
	defer unsubscribe()

	app := tui.NewApp(updates,
		tui.NewStartPage(ctrl, cfg.Countdown),
		tui.NewGamePage(ctrl),
	)
	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("bitdrill %s starting, countdown %ds, seed %d", version, cfg.Countdown, cfg.Seed)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		if _, err := p.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("bitdrill requires a real terminal")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})

	// Quit the program on a signal; stop watching once it has exited.
	g.Go(func() error {
		select {
		case <-gctx.Done():
			log.Printf("bitdrill: shutting down")
			p.Quit()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}
