package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/yourusername/botfield/internal/client"
	"github.com/yourusername/botfield/internal/client/connection"
	"github.com/yourusername/botfield/internal/client/game"
	"github.com/yourusername/botfield/internal/client/input"
	"github.com/yourusername/botfield/internal/client/ui"
	"github.com/yourusername/botfield/internal/client/window"
	"github.com/yourusername/botfield/internal/client/world"
	"github.com/yourusername/botfield/internal/config"
	"github.com/yourusername/botfield/internal/logging"
)

func main() {
	cfg := config.Default()
	cfg.ApplyEnv(os.LookupEnv)
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// the window and headless hosts do not own the terminal
	logFile := cfg.LogFile
	if cfg.UI == config.UIHeadless && os.Getenv("BOTFIELD_LOG") == "" && !flagSet("log") {
		logFile = ""
	}
	logger, err := logging.New(logging.Options{File: logFile, Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Errorw("client exited", "err", err)
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.SugaredLogger) error {
	conn := connection.NewManager(connection.Options{
		ServerURL:        cfg.ServerURL,
		HandshakeTimeout: cfg.HandshakeTimeout,
		WriteWait:        cfg.WriteWait,
		SendBuffer:       cfg.SendBuffer,
		EventBuffer:      cfg.EventBuffer,
	}, logger)
	defer conn.Close()

	loop := game.NewLoop(conn, world.NewStore(), input.NewTracker(), logger)
	logger.Infow("starting client", "server", cfg.ServerURL, "ui", cfg.UI, "session", conn.SessionID())

	if cfg.UI == config.UITUI {
		model := ui.NewModel(loop, conn, ui.Options{
			ServerURL:  cfg.ServerURL,
			FPS:        cfg.FPS,
			HoldWindow: cfg.HoldWindow,
		})
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// connection failures surface through the status text, not here
	go func() {
		if err := conn.Connect(ctx); err != nil {
			logger.Warnw("connect failed", "err", err)
		}
	}()

	switch cfg.UI {
	case config.UITermloop:
		client.NewTermloopGame(loop, client.TermOptions{
			FPS:        cfg.FPS,
			HoldWindow: cfg.HoldWindow,
		}).Start()
		return nil
	case config.UIWindow:
		return window.Run(loop, "botfield")
	default:
		return client.RunHeadless(ctx, loop, client.HeadlessOptions{
			FPS:      cfg.FPS,
			Snapshot: cfg.SnapshotPNG,
		}, logger)
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
