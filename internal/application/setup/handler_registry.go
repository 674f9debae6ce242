package setup

import (
	"log/slog"

	"github.com/andrescamacho/factoryplan-go/internal/application/common"
	"github.com/andrescamacho/factoryplan-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplan-go/internal/application/planner"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	planner     *planner.Planner
	logger      *slog.Logger
	middlewares []mediator.Middleware
}

// NewHandlerRegistry creates a new handler registry around one planner.
// Middlewares run after request logging, in the order given.
func NewHandlerRegistry(p *planner.Planner, logger *slog.Logger, middlewares ...mediator.Middleware) *HandlerRegistry {
	if logger == nil {
		logger = slog.Default()
	}

	return &HandlerRegistry{
		planner:     p,
		logger:      logger,
		middlewares: middlewares,
	}
}

// Planner returns the planner every handler edits
func (r *HandlerRegistry) Planner() *planner.Planner {
	return r.planner
}

// RegisterPlannerHandlers registers all planner command and query handlers with the mediator
//
// This method registers:
//   - AddBuildingCommand, RemoveBuildingCommand, DuplicateBuildingCommand
//   - ConnectCommand, DisconnectCommand
//   - ConfigureBuildingCommand
//   - FlowReportQuery
func (r *HandlerRegistry) RegisterPlannerHandlers(m mediator.Mediator) error {
	return planner.RegisterHandlers(m, r.planner)
}

// CreateConfiguredMediator creates a new mediator with logging, the
// registry's middlewares and all planner handlers registered
func (r *HandlerRegistry) CreateConfiguredMediator() (mediator.Mediator, error) {
	m := mediator.NewMediator()

	m.Use(common.LoggingMiddleware(r.logger))
	for _, mw := range r.middlewares {
		m.Use(mw)
	}

	if err := r.RegisterPlannerHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
