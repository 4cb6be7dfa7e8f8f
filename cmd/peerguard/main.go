package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "peerguard",
		Usage:   "moderation and response gateway for the peer discussion platform",
		Version: versioninfo.Short(),
	}

	app.Commands = []*cli.Command{
		runCmd,
	}

	return app.Run(args)
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the gateway",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "bind",
			Usage:   "IP or address, and port, to listen on for the HTTP API",
			Value:   ":8000",
			EnvVars: []string{"PEERGUARD_BIND"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs",
			Value:   ":8001",
			EnvVars: []string{"PEERGUARD_METRICS_LISTEN"},
		},
		&cli.StringFlag{
			Name:    "advisory-host",
			Usage:   "base URL of the OpenAI-compatible advisory service",
			Value:   "https://api.openai.com",
			EnvVars: []string{"PEERGUARD_ADVISORY_HOST"},
		},
		&cli.StringFlag{
			Name:    "advisory-api-key",
			Usage:   "API key for the advisory service; empty disables advisory calls",
			EnvVars: []string{"PEERGUARD_ADVISORY_API_KEY", "OPENAI_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "advisory-model",
			Usage:   "model used for moderation and verification analysis",
			Value:   "gpt-3.5-turbo",
			EnvVars: []string{"PEERGUARD_ADVISORY_MODEL"},
		},
		&cli.StringFlag{
			Name:    "reply-model",
			Usage:   "model used for peer reply generation",
			Value:   "gpt-4",
			EnvVars: []string{"PEERGUARD_REPLY_MODEL"},
		},
		&cli.StringFlag{
			Name:    "platform-webhook-url",
			Usage:   "incoming-webhook URL for reporting flags back to the platform; empty disables notifications",
			EnvVars: []string{"PEERGUARD_PLATFORM_WEBHOOK_URL"},
		},
	},
	Action: func(cctx *cli.Context) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)

		srv, err := NewServer(Config{
			Logger:             logger,
			AdvisoryHost:       cctx.String("advisory-host"),
			AdvisoryAPIKey:     cctx.String("advisory-api-key"),
			AdvisoryModel:      cctx.String("advisory-model"),
			ReplyModel:         cctx.String("reply-model"),
			PlatformWebhookURL: cctx.String("platform-webhook-url"),
		})
		if err != nil {
			return err
		}

		go func() {
			if err := srv.RunMetrics(cctx.String("metrics-listen")); err != nil {
				slog.Error("failed to start metrics endpoint", "error", err)
				panic(fmt.Errorf("failed to start metrics endpoint: %w", err))
			}
		}()

		if err := srv.RunAPI(ctx, cctx.String("bind")); err != nil {
			return fmt.Errorf("failed to run gateway service: %w", err)
		}
		return nil
	},
}
