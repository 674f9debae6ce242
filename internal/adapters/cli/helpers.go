package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"github.com/andrescamacho/factoryplan-go/internal/adapters/metrics"
	"github.com/andrescamacho/factoryplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/factoryplan-go/internal/adapters/planfile"
	"github.com/andrescamacho/factoryplan-go/internal/application/common"
	"github.com/andrescamacho/factoryplan-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplan-go/internal/application/planner"
	"github.com/andrescamacho/factoryplan-go/internal/application/setup"
	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/config"
	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/database"
	"github.com/andrescamacho/factoryplan-go/internal/infrastructure/logging"
)

// runtime is everything a command needs once configuration is loaded
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

// loadRuntime loads configuration and builds the logger, applying the global
// flag overrides
func loadRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, logger: logger, closer: closer}, nil
}

func (r *runtime) Close() error {
	return r.closer.Close()
}

// session wires a planner behind a mediator with logging and, when enabled,
// Prometheus middleware
type session struct {
	planner  *planner.Planner
	mediator mediator.Mediator
	textfile string
}

func (r *runtime) newSession(maxVisits int) (*session, error) {
	if maxVisits == 0 {
		maxVisits = r.cfg.Planner.MaxNodeVisits
	}

	var observers []graph.Observer
	var commandMetrics *metrics.CommandMetricsCollector
	if r.cfg.Metrics.Enabled {
		metrics.InitRegistry()
		propagation := metrics.NewPropagationMetrics()
		if err := propagation.Register(); err != nil {
			return nil, fmt.Errorf("failed to register propagation metrics: %w", err)
		}
		commandMetrics = metrics.NewCommandMetricsCollector()
		if err := commandMetrics.Register(); err != nil {
			return nil, fmt.Errorf("failed to register command metrics: %w", err)
		}
		observers = append(observers, propagation)
	}

	p := planner.NewPlanner(r.logger, maxVisits, observers...)
	registry := setup.NewHandlerRegistry(p, r.logger, metrics.PrometheusMiddleware(commandMetrics))
	m, err := registry.CreateConfiguredMediator()
	if err != nil {
		return nil, err
	}

	return &session{planner: p, mediator: m, textfile: r.cfg.Metrics.TextfilePath}, nil
}

// load sends one command per building and connection of doc, so every edit
// goes through the mediator pipeline
func (s *session) load(ctx context.Context, doc *plan.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	for _, spec := range doc.Buildings {
		if _, err := s.mediator.Send(ctx, &planner.AddBuildingCommand{Spec: spec}); err != nil {
			return err
		}
	}
	for i, c := range doc.Connections {
		cmd := &planner.ConnectCommand{From: c.From, Output: c.Output, To: c.To, Input: c.Input}
		if _, err := s.mediator.Send(ctx, cmd); err != nil {
			return fmt.Errorf("connection %d (%s:%d -> %s:%d): %w", i, c.From, c.Output, c.To, c.Input, err)
		}
	}
	return nil
}

func (s *session) report(ctx context.Context) (*planner.FlowReport, error) {
	resp, err := s.mediator.Send(ctx, &planner.FlowReportQuery{})
	if err != nil {
		return nil, err
	}
	return resp.(*planner.FlowReport), nil
}

// finish flushes collected metrics
func (s *session) finish() error {
	return metrics.WriteTextfile(s.textfile)
}

// openPlanStore connects to the plan database and migrates it
func (r *runtime) openPlanStore() (*persistence.GormPlanRepository, *gorm.DB, error) {
	db, err := database.NewConnection(&r.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return persistence.NewGormPlanRepository(db), db, nil
}

// resolveDocument reads a plan from a file when ref names one, otherwise from
// the plan store by ID or name. An empty ref falls back to the default plan.
func (r *runtime) resolveDocument(ctx context.Context, ref string, vars []string) (*plan.Document, error) {
	if ref == "" {
		def, err := defaultPlan()
		if err != nil {
			return nil, err
		}
		ref = def
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		overrides, err := planfile.ParseOverrides(vars)
		if err != nil {
			return nil, err
		}
		doc, err := planfile.Load(ref, overrides)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("plan file loaded", "path", ref, "buildings", len(doc.Buildings))
		return doc, nil
	}

	if len(vars) > 0 {
		return nil, fmt.Errorf("--var only applies to plan files")
	}

	repo, db, err := r.openPlanStore()
	if err != nil {
		return nil, err
	}
	defer database.Close(db)

	doc, err := common.NewPlanResolver(repo).Resolve(ctx, ref)
	if err != nil {
		var notFound *plan.ErrPlanNotFound
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%q is neither a plan file nor a stored plan", ref)
		}
		return nil, err
	}
	return doc, nil
}

// defaultPlan returns the plan set with 'factoryplan plan use'
func defaultPlan() (string, error) {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return "", fmt.Errorf("no plan specified and failed to load user config: %w", err)
	}
	userCfg, err := handler.Load()
	if err != nil {
		return "", fmt.Errorf("no plan specified and failed to load user config: %w", err)
	}
	if userCfg.DefaultPlan == "" {
		return "", fmt.Errorf("no plan specified: pass a plan file or stored plan, or set a default with 'factoryplan plan use'")
	}
	return userCfg.DefaultPlan, nil
}
