package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/circleofpeers/peerguard/advisory"
	"github.com/circleofpeers/peerguard/automod"
	"github.com/circleofpeers/peerguard/automod/rules"
	"github.com/circleofpeers/peerguard/util"
	"github.com/circleofpeers/peerguard/verification"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
)

type Config struct {
	Logger             *slog.Logger
	AdvisoryHost       string
	AdvisoryAPIKey     string
	AdvisoryModel      string
	ReplyModel         string
	PlatformWebhookURL string
}

type Server struct {
	logger       *slog.Logger
	echo         *echo.Echo
	modEngine    *automod.Engine
	verifyEngine *verification.Engine
	// nil when no advisory API key is configured
	replyClient *advisory.Client
}

func NewServer(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	var advisoryClient, replyClient *advisory.Client
	if config.AdvisoryAPIKey != "" {
		logger.Info("configuring advisory service", "host", config.AdvisoryHost, "model", config.AdvisoryModel)
		advisoryClient = advisory.NewClient(config.AdvisoryHost, config.AdvisoryAPIKey, config.AdvisoryModel)
		replyClient = advisory.NewClient(config.AdvisoryHost, config.AdvisoryAPIKey, config.ReplyModel)
	} else {
		logger.Info("no advisory API key configured; running deterministic rules only")
	}

	var notifier automod.FlagNotifier
	if config.PlatformWebhookURL != "" {
		logger.Info("configuring platform flag notifier")
		notifier = &automod.WebhookNotifier{
			Client:     util.RobustHTTPClient(),
			WebhookURL: config.PlatformWebhookURL,
		}
	}

	modEngine := &automod.Engine{
		Logger:   logger,
		Rules:    rules.DefaultRules(),
		Notifier: notifier,
	}
	verifyEngine := &verification.Engine{
		Logger: logger,
	}
	if advisoryClient != nil {
		modEngine.Advisory = advisoryClient
		verifyEngine.Completer = advisoryClient
	}

	s := &Server{
		logger:       logger,
		modEngine:    modEngine,
		verifyEngine: verifyEngine,
		replyClient:  replyClient,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(slogecho.New(logger))

	e.GET("/", s.handleRoot)
	e.GET("/health", s.handleHealth)
	e.POST("/moderate", s.handleModerate)
	e.POST("/reply", s.handleReply)
	e.POST("/flag", s.handleFlag)
	e.POST("/verify", s.handleVerify)
	e.POST("/webhook", s.handleWebhook)

	s.echo = e
	return s, nil
}

// Runs the HTTP API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) RunAPI(ctx context.Context, bind string) error {
	errC := make(chan error, 1)
	go func() {
		if err := s.echo.Start(bind); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

func (s *Server) RunMetrics(listen string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, mux)
}
