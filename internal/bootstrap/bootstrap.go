package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"voxterview-server-go/internal/domain/interview"
	"voxterview-server-go/internal/domain/question"
	"voxterview-server-go/internal/domain/scoring"
	"voxterview-server-go/internal/domain/speech"
	platformconfig "voxterview-server-go/internal/platform/config"
	platformerrors "voxterview-server-go/internal/platform/errors"
	platformlogging "voxterview-server-go/internal/platform/logging"
	httptransport "voxterview-server-go/internal/transport/http"
	httpinterview "voxterview-server-go/internal/transport/http/interviewapi"
	wstransport "voxterview-server-go/internal/transport/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type stepFn func(context.Context, *appState) error

type initStep struct {
	ID        string
	Title     string
	DependsOn []string
	Kind      platformerrors.Kind
	Execute   stepFn
}

type appState struct {
	config        *platformconfig.Config
	configPath    string
	logger        *platformlogging.Logger
	store         *question.Store
	speechService *speech.Service
	cascade       *scoring.Cascade
}

// Run starts the whole service lifecycle: it loads configuration, initialises
// dependencies and handles graceful shutdown.
func Run(ctx context.Context) error {
	state := &appState{}

	steps := InitGraph()
	if err := executeInitSteps(ctx, steps, state); err != nil {
		return err
	}

	config := state.config
	logger := state.logger
	if config == nil || logger == nil {
		return platformerrors.Wrap(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"config/logger not initialised",
			errors.New("config/logger not initialised"),
		)
	}

	if state.speechService == nil || state.cascade == nil || state.store == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"speech/scoring/store not initialised",
		)
	}

	logBootstrapGraph(steps, logger)

	defer func() {
		if err := state.speechService.Close(); err != nil {
			logger.ErrorTag("TTS", "speech service did not shut down cleanly: %v", err)
		}
	}()

	rootCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)

	controller := interview.NewController(
		state.store,
		state.speechService,
		state.cascade,
		interview.Timeouts{
			Role:       config.Speech.RoleTimeout.Std(),
			Difficulty: config.Speech.DifficultyTimeout.Std(),
			Answer:     config.Speech.AnswerTimeout.Std(),
		},
		config.Store.QuestionsPerSession,
		logger,
	)

	manager, err := interview.NewManager(rootCtx, controller, logger)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "interview:init-manager", "failed to create interview manager", err)
	}

	if err := startHTTPServer(config, logger, manager, group, groupCtx); err != nil {
		cancel()
		return err
	}

	if err := waitForShutdown(signalCtx, cancel, logger, group); err != nil {
		return err
	}

	logger.InfoTag("Bootstrap", "service stopped")
	logger.Close()
	return nil
}

func logBootstrapGraph(steps []initStep, logger *platformlogging.Logger) {
	if logger == nil {
		return
	}
	logger.InfoTag("Bootstrap", "initialisation overview")

	stepNames := map[string]string{
		"config:load":         "load configuration",
		"logging:init":        "initialise logging",
		"store:load":          "load question store",
		"speech:init-service": "initialise speech service",
		"scoring:init":        "assemble scoring cascade",
	}

	for _, step := range steps {
		if name, ok := stepNames[step.ID]; ok {
			logger.InfoTag("Bootstrap", name)
		}
	}
	logger.InfoTag("Bootstrap", "starting services")
}

func executeInitSteps(ctx context.Context, steps []initStep, state *appState) error {
	if state == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"execute init steps",
			"nil bootstrap state",
		)
	}

	completed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				return platformerrors.New(
					platformerrors.KindBootstrap,
					step.ID,
					fmt.Sprintf("dependency %s not satisfied", dep),
				)
			}
		}
		if step.Execute == nil {
			return platformerrors.New(
				platformerrors.KindBootstrap,
				step.ID,
				"missing execute function",
			)
		}
		if err := step.Execute(ctx, state); err != nil {
			var typed *platformerrors.Error
			if errors.As(err, &typed) {
				return err
			}

			kind := step.Kind
			if kind == "" {
				kind = platformerrors.KindBootstrap
			}
			return platformerrors.Wrap(kind, step.ID, "bootstrap step failed", err)
		}
		completed[step.ID] = struct{}{}
	}
	return nil
}

func InitGraph() []initStep {
	return []initStep{
		{
			ID:      "config:load",
			Title:   "Load configuration",
			Kind:    platformerrors.KindConfig,
			Execute: loadConfigStep,
		},
		{
			ID:        "logging:init",
			Title:     "Initialise logging",
			DependsOn: []string{"config:load"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initLoggingStep,
		},
		{
			ID:        "store:load",
			Title:     "Load question store",
			DependsOn: []string{"logging:init"},
			Kind:      platformerrors.KindStore,
			Execute:   loadStoreStep,
		},
		{
			ID:        "speech:init-service",
			Title:     "Initialise speech service",
			DependsOn: []string{"logging:init"},
			Kind:      platformerrors.KindSpeech,
			Execute:   initSpeechStep,
		},
		{
			ID:        "scoring:init",
			Title:     "Assemble scoring cascade",
			DependsOn: []string{"logging:init", "store:load"},
			Kind:      platformerrors.KindScoring,
			Execute:   initScoringStep,
		},
	}
}

func loadConfigStep(_ context.Context, state *appState) error {
	result, err := platformconfig.NewLoader().WithDotEnv(true).Load()
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindConfig, "config:load", "failed to load configuration", err)
	}

	state.config = result.Config
	state.configPath = result.Path
	return nil
}

func initLoggingStep(_ context.Context, state *appState) error {
	if state == nil || state.config == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"logging:init",
			"config not loaded",
		)
	}

	logger, err := platformlogging.New(platformlogging.Config{
		Level:    state.config.Log.Level,
		Dir:      state.config.Log.Dir,
		Filename: state.config.Log.File,
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "logging:init", "failed to initialise logging", err)
	}

	state.logger = logger
	platformlogging.DefaultLogger = logger

	path := state.configPath
	if path == "" {
		path = "defaults"
	}
	logger.InfoTag("Bootstrap", "logging ready [%s] %s", state.config.Log.Level, path)
	return nil
}

func loadStoreStep(_ context.Context, state *appState) error {
	if state == nil || state.config == nil || state.logger == nil {
		return platformerrors.New(
			platformerrors.KindStore,
			"store:load",
			"missing config/logger",
		)
	}

	state.store = question.NewStore(state.config.Store.Path, state.logger)
	if state.store.Len() == 0 {
		state.logger.WarnTag("Store", "question store is empty, interviews will terminate immediately")
	}
	return nil
}

func initSpeechStep(_ context.Context, state *appState) error {
	if state == nil || state.config == nil || state.logger == nil {
		return platformerrors.New(
			platformerrors.KindSpeech,
			"speech:init-service",
			"missing config/logger",
		)
	}

	registry := speech.NewRegistry()
	logger := state.logger
	cfg := state.config.Speech

	listener, err := registry.CreateListener(cfg.ASR.Provider, cfg.ASR, speech.NullCaptureSource{}, logger)
	if err != nil {
		// Listening degrades to silence without a transcriber. The interview
		// loop still runs on defaults and timeouts.
		logger.WarnTag("ASR", "listener unavailable (%v), transcripts will be empty", err)
		listener = nil
	}

	speaker, err := registry.CreateSpeaker(cfg.TTS.Provider, cfg.TTS, speech.LogPlaybackSink{Logger: logger}, logger)
	if err != nil {
		logger.WarnTag("TTS", "speaker unavailable (%v), prompts will not be voiced", err)
		speaker = nil
	}

	state.speechService = speech.NewService(listener, speaker, logger)
	return nil
}

func initScoringStep(_ context.Context, state *appState) error {
	if state == nil || state.config == nil || state.logger == nil {
		return platformerrors.New(
			platformerrors.KindScoring,
			"scoring:init",
			"missing config/logger",
		)
	}

	cfg := state.config.Scoring
	var scorers []scoring.Scorer

	if cfg.DelegatedEnabled {
		scorers = append(scorers, question.NewKeywordEvaluator())
	}

	embedder := scoring.NewOpenAIEmbedder(cfg.EmbeddingAPIKey, cfg.EmbeddingBaseURL, cfg.EmbeddingModel)
	if embedder != nil {
		scorers = append(scorers, scoring.NewSemanticScorer(embedder, cfg.SemanticExponent, cfg.SemanticScale))
	} else {
		state.logger.WarnTag("Scoring", "no embedding api key, semantic tier disabled")
	}

	scorers = append(scorers, scoring.NewFuzzyScorer(cfg.FuzzyEnabled))
	scorers = append(scorers, scoring.NewStrictScorer(cfg.StrictFloor))

	state.cascade = scoring.NewCascade(state.logger, scorers...)
	return nil
}

func startHTTPServer(
	config *platformconfig.Config,
	logger *platformlogging.Logger,
	manager *interview.Manager,
	g *errgroup.Group,
	groupCtx context.Context,
) error {
	httpRouter, err := httptransport.Build(httptransport.Options{
		Config: config,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	router := httpRouter.Engine
	apiGroup := httpRouter.API

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httptransport.APIResponse{
			Success: false,
			Data:    gin.H{},
			Message: "not found",
			Code:    http.StatusNotFound,
		})
	})

	interviewService, err := httpinterview.NewService(manager, logger)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindTransport, "interviewapi:new-service", "failed to create interview api service", err)
	}
	if err := interviewService.Register(groupCtx, apiGroup); err != nil {
		return err
	}

	hub, err := wstransport.NewHub(logger)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindTransport, "ws:new-hub", "failed to create websocket hub", err)
	}

	wsRouter := wstransport.NewRouter(groupCtx, hub, manager, logger, wstransport.RouterOptions{
		HandshakeTimeout: config.Transport.HandshakeTimeout.Std(),
	})
	router.GET(config.Transport.WebsocketPath, gin.WrapF(wsRouter.Handle))

	router.GET("/health", func(c *gin.Context) {
		httptransport.RespondSuccess(c, http.StatusOK, gin.H{
			"questions": true,
			"sessions":  hub.Count(),
		}, "ok")
	})

	httpServer := &http.Server{
		Addr:    config.Server.IP + ":" + strconv.Itoa(config.Server.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.InfoTag("HTTP", "server listening on http://%s", httpServer.Addr)
		logger.InfoTag("WebSocket", "progress stream at ws://%s%s", httpServer.Addr, config.Transport.WebsocketPath)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			hub.CloseAll(wstransport.ErrSessionShutdown)

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorTag("HTTP", "server shutdown failed: %v", err)
			} else {
				logger.InfoTag("HTTP", "server shut down cleanly")
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorTag("HTTP", "server failed: %v", err)
			return err
		}
		return nil
	})

	return nil
}

func waitForShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *platformlogging.Logger,
	g *errgroup.Group,
) error {
	<-ctx.Done()
	logger.InfoTag("Bootstrap", "received signal %v, cleaning up", context.Cause(ctx))

	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.ErrorTag("Bootstrap", "error during shutdown: %v", err)
			return err
		}
		logger.InfoTag("Bootstrap", "all services stopped")
	case <-time.After(15 * time.Second):
		timeoutErr := errors.New("shutdown timed out")
		logger.ErrorTag("Bootstrap", "shutdown timed out, forcing exit")
		return timeoutErr
	}
	return nil
}
