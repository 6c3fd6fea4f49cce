package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/advent2024/api"
	api_i "github.com/beka-birhanu/advent2024/api/i"
	"github.com/beka-birhanu/advent2024/api/identity"
	puzzleapi "github.com/beka-birhanu/advent2024/api/puzzle"
	"github.com/beka-birhanu/advent2024/config"
	"github.com/beka-birhanu/advent2024/infrastruture/logger"
	"github.com/beka-birhanu/advent2024/infrastruture/token"
	"github.com/beka-birhanu/advent2024/inputs"
	"github.com/beka-birhanu/advent2024/service"
	"github.com/beka-birhanu/advent2024/service/i"
	"github.com/gin-gonic/gin"
)

// app holds the dependencies shared by the commands.
type app struct {
	cfg       config.Config
	stderr    io.Writer
	level     string           // Log level for every component, set by setup.
	loggers   []*logger.Logger // Component loggers flushed by sync.
	appLogger *logger.Logger
	store     *inputs.Store
	registry  *service.Registry
	runner    *service.Runner
}

// newApp loads the inputs and registers the solvers. Loggers and the runner
// are created by setup once the log level is known.
func newApp(cfg config.Config, stderr io.Writer) (*app, error) {
	store, err := inputs.New(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("loading inputs: %w", err)
	}

	registry, err := service.NewRegistry(service.Puzzles(store.Title, service.SolverOptions{
		Workers:        cfg.Workers,
		PatrolMaxSteps: cfg.PatrolMaxSteps,
	})...)
	if err != nil {
		return nil, fmt.Errorf("registering solvers: %w", err)
	}

	return &app{
		cfg:       cfg,
		stderr:    stderr,
		level:     cfg.LogLevel,
		appLogger: logger.Nop(),
		store:     store,
		registry:  registry,
	}, nil
}

// setup creates the loggers and the runner.
func (a *app) setup(verbose bool) error {
	if verbose {
		a.level = "debug"
	}

	var err error
	a.appLogger, err = a.newLogger(config.LogPrefixApp, config.ColorGreen)
	if err != nil {
		return err
	}

	solverLogger, err := a.newLogger(config.LogPrefixSolver, config.ColorCyan)
	if err != nil {
		return err
	}

	a.runner, err = service.NewRunner(a.registry, a.store, solverLogger, &service.Options{
		Timeout: time.Duration(a.cfg.SolveTimeout) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	a.appLogger.Debug(fmt.Sprintf("Runner initialized with %d solvers", len(a.registry.All())))
	return nil
}

// newLogger creates a component logger at the application's level.
func (a *app) newLogger(prefix, color string) (*logger.Logger, error) {
	l, err := logger.New(prefix, color, a.stderr, a.level)
	if err != nil {
		return nil, err
	}
	a.loggers = append(a.loggers, l)
	return l, nil
}

// sync flushes every component logger.
func (a *app) sync() {
	for _, l := range a.loggers {
		_ = l.Sync() // Syncing a terminal fails on some platforms; nothing to recover.
	}
}

// tokenizer returns the JWT service, or nil when no secret is configured.
func (a *app) tokenizer() i.Tokenizer {
	if a.cfg.JWTSecret == "" {
		return nil
	}
	return token.NewJwtService(a.cfg.JWTSecret, a.cfg.JWTIssuer)
}

// router wires the HTTP API.
func (a *app) router() (*api.Router, error) {
	apiLogger, err := a.newLogger(config.LogPrefixAPI, config.ColorBlue)
	if err != nil {
		return nil, err
	}

	puzzleController, err := puzzleapi.NewPuzzleController(a.runner, apiLogger)
	if err != nil {
		return nil, fmt.Errorf("creating puzzle controller: %w", err)
	}

	var authorization gin.HandlerFunc
	if t := a.tokenizer(); t != nil {
		authorization = identity.Authoriz(t)
	} else {
		a.appLogger.Warning("JWT_SECRET is not set; solve routes are served without authorization")
	}

	gin.SetMode(a.cfg.GinMode)
	apiLogger.Debug("Router initialized")
	return api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", a.cfg.HostIP, a.cfg.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{puzzleController},
		AuthorizationMiddleware: authorization,
	}), nil
}

func main() {
	a, err := newApp(config.Envs, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = newRootCmd(a, os.Stdout).ExecuteContext(ctx)
	stop()
	a.sync()
	if err != nil {
		os.Exit(1)
	}
}
