// Package config holds the client settings and how they are loaded.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/multierr"
)

// UI modes
const (
	UITUI      = "tui"
	UITermloop = "termloop"
	UIWindow   = "window"
	UIHeadless = "headless"
)

// DefaultServerURL is the game server the client dials unless told otherwise
const DefaultServerURL = "ws://localhost:8080"

// Config is the full client configuration
type Config struct {
	ServerURL        string
	UI               string
	LogFile          string
	LogLevel         string
	FPS              int
	HoldWindow       time.Duration
	HandshakeTimeout time.Duration
	WriteWait        time.Duration
	SendBuffer       int
	EventBuffer      int
	SnapshotPNG      string // headless only: write the last frame here on exit
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		ServerURL:        DefaultServerURL,
		UI:               UITUI,
		LogFile:          "botfield.log",
		LogLevel:         "info",
		FPS:              60,
		HoldWindow:       200 * time.Millisecond,
		HandshakeTimeout: 10 * time.Second,
		WriteWait:        10 * time.Second,
		SendBuffer:       16,
		EventBuffer:      256,
	}
}

// RegisterFlags binds the config fields to fs using the current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ServerURL, "server", c.ServerURL, "WebSocket server URL")
	fs.StringVar(&c.UI, "ui", c.UI, "Frontend: tui, termloop, window or headless")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "Log file (empty logs to stderr)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error")
	fs.IntVar(&c.FPS, "fps", c.FPS, "Frames per second for tui, termloop and headless")
	fs.DurationVar(&c.HoldWindow, "hold", c.HoldWindow, "How long a terminal key stays held after its last repeat")
	fs.DurationVar(&c.HandshakeTimeout, "handshake-timeout", c.HandshakeTimeout, "WebSocket handshake timeout (0 disables)")
	fs.StringVar(&c.SnapshotPNG, "png", c.SnapshotPNG, "Headless mode: write the last frame to this PNG file")
}

// ApplyEnv overrides fields from BOTFIELD_* variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("BOTFIELD_SERVER"); ok && v != "" {
		c.ServerURL = v
	}
	if v, ok := lookup("BOTFIELD_UI"); ok && v != "" {
		c.UI = v
	}
	if v, ok := lookup("BOTFIELD_LOG"); ok {
		c.LogFile = v
	}
	if v, ok := lookup("BOTFIELD_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
}

// Validate reports every invalid field at once
func (c Config) Validate() error {
	var err error

	u, perr := url.Parse(c.ServerURL)
	switch {
	case perr != nil:
		err = multierr.Append(err, fmt.Errorf("server: %w", perr))
	case u.Scheme != "ws" && u.Scheme != "wss":
		err = multierr.Append(err, fmt.Errorf("server: scheme must be ws or wss, got %q", u.Scheme))
	case u.Host == "":
		err = multierr.Append(err, errors.New("server: missing host"))
	}

	switch c.UI {
	case UITUI, UITermloop, UIWindow, UIHeadless:
	default:
		err = multierr.Append(err, fmt.Errorf("ui: unknown mode %q", c.UI))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("log-level: unknown level %q", c.LogLevel))
	}

	if c.FPS <= 0 || c.FPS > 240 {
		err = multierr.Append(err, fmt.Errorf("fps: must be in 1..240, got %d", c.FPS))
	}
	if c.HoldWindow <= 0 {
		err = multierr.Append(err, fmt.Errorf("hold: must be positive, got %s", c.HoldWindow))
	}
	if c.HandshakeTimeout < 0 {
		err = multierr.Append(err, fmt.Errorf("handshake-timeout: must not be negative, got %s", c.HandshakeTimeout))
	}
	if c.SendBuffer <= 0 || c.EventBuffer <= 0 {
		err = multierr.Append(err, errors.New("buffers: send and event buffers must be positive"))
	}
	if c.SnapshotPNG != "" && c.UI != UIHeadless {
		err = multierr.Append(err, errors.New("png: only supported with -ui headless"))
	}

	return err
}
