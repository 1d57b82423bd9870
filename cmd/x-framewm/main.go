package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ItsNotGoodName/x-framewm/internal/build"
	"github.com/ItsNotGoodName/x-framewm/internal/config"
	"github.com/ItsNotGoodName/x-framewm/internal/logging"
	"github.com/ItsNotGoodName/x-framewm/internal/xwm"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb/xproto"
	"github.com/joho/godotenv"
)

type Options struct {
	Debug   bool   `doc:"enable debug logging"`
	Trace   bool   `doc:"enable trace logging"`
	Display string `doc:"X display to manage, defaults to $DISPLAY"`
	Config  string `doc:"config file" default:".x-framewm.yaml"`
	QuitKey int    `doc:"keycode that stops the window manager, 0 disables it, -1 uses the config file" default:"-1"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		switch {
		case options.Trace:
			logging.Init(os.Stdout, os.Stderr, logging.LevelTrace)
		case options.Debug:
			logging.Init(os.Stdout, os.Stderr, slog.LevelDebug)
		default:
			logging.Init(os.Stdout, os.Stderr, slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			cfg, err := config.Load(config.NewYAML(options.Config))
			if err != nil {
				return err
			}
			if err := applyOptions(&cfg, options); err != nil {
				return err
			}

			return Serve(ctx, cfg)
		})
	})

	cli.Root().Version = build.Current.String()

	cli.Run()
}

// Serve manages the display until the quit key is pressed, ctx is cancelled,
// or the connection fails.
func Serve(ctx context.Context, cfg config.Config) error {
	conn, screen, err := xwm.Connect(cfg.Display)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Closing the connection unblocks the event loop.
	stop := context.AfterFunc(ctx, conn.Close)
	defer stop()

	if err := xwm.Bootstrap(conn, screen); err != nil {
		return err
	}

	manager := xwm.NewManager(conn, screen, xwm.Options{
		QuitKey: xproto.Keycode(cfg.QuitKey),
	})

	if cfg.Adopt {
		if err := manager.Adopt(); err != nil {
			slog.Warn("Failed to adopt existing windows", "error", err)
		}
	}

	return manager.Run(ctx)
}

// applyOptions overrides cfg with the flags that were set.
func applyOptions(cfg *config.Config, options *Options) error {
	if options.Display != "" {
		cfg.Display = options.Display
	}

	switch {
	case options.QuitKey == -1:
	case options.QuitKey < 0 || options.QuitKey > 255:
		return fmt.Errorf("invalid quit-key %d: must be a keycode between 0 and 255, or -1", options.QuitKey)
	default:
		cfg.QuitKey = uint8(options.QuitKey)
	}

	return nil
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				fatal(err)
			}
			return
		}

		if err := <-errC; err != nil && !errors.Is(err, context.Canceled) {
			fatal(err)
		}
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}

func fatal(err error) {
	logFatal(err)
	os.Exit(1)
}

func logFatal(err error) {
	var alreadyRunning xwm.AlreadyRunningError
	if errors.As(err, &alreadyRunning) {
		slog.Log(context.Background(), logging.LevelFatal, "Another window manager is already running", "code", alreadyRunning.Code, "error", err)
	} else {
		slog.Log(context.Background(), logging.LevelFatal, "Window manager failed", "error", err)
	}
}
