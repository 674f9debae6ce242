package planner

import (
	"context"
	"fmt"

	"github.com/andrescamacho/factoryplan-go/internal/application/common"
	"github.com/andrescamacho/factoryplan-go/internal/application/mediator"
	"github.com/andrescamacho/factoryplan-go/internal/domain/building"
	"github.com/andrescamacho/factoryplan-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
	"github.com/andrescamacho/factoryplan-go/internal/domain/plan"
)

// AddBuildingCommand places a building described by a spec
type AddBuildingCommand struct {
	Spec plan.BuildingSpec
}

// AddBuildingResponse carries the node the building was placed on
type AddBuildingResponse struct {
	NodeID graph.NodeID
}

// RemoveBuildingCommand deletes a building and its wires
type RemoveBuildingCommand struct {
	ID string
}

// ConnectCommand wires an output port to an input port
type ConnectCommand struct {
	From   string
	Output int
	To     string
	Input  int
}

// ConnectResponse carries the new wire
type ConnectResponse struct {
	EdgeID graph.EdgeID
}

// DisconnectCommand removes a wire, either by edge ID or by the input port it feeds
type DisconnectCommand struct {
	EdgeID *graph.EdgeID
	To     string
	Input  int
}

// ConfigureBuildingCommand changes the settings of a building in place.
// Nil fields are left untouched.
type ConfigureBuildingCommand struct {
	ID         string
	Recipe     *string
	Speed      *float64
	Amplifiers *int
	Extractor  *building.ExtractorSettings
}

// DuplicateBuildingCommand places an unwired copy of a building
type DuplicateBuildingCommand struct {
	ID    string
	NewID string
}

// DuplicateBuildingResponse carries the node of the copy
type DuplicateBuildingResponse struct {
	NodeID graph.NodeID
}

// FlowReportQuery asks for the current flow report
type FlowReportQuery struct{}

// RegisterHandlers registers every planner command and query with the mediator
func RegisterHandlers(m mediator.Mediator, p *Planner) error {
	registrations := []error{
		mediator.RegisterHandler[*AddBuildingCommand](m, NewAddBuildingHandler(p)),
		mediator.RegisterHandler[*RemoveBuildingCommand](m, NewRemoveBuildingHandler(p)),
		mediator.RegisterHandler[*ConnectCommand](m, NewConnectHandler(p)),
		mediator.RegisterHandler[*DisconnectCommand](m, NewDisconnectHandler(p)),
		mediator.RegisterHandler[*ConfigureBuildingCommand](m, NewConfigureBuildingHandler(p)),
		mediator.RegisterHandler[*DuplicateBuildingCommand](m, NewDuplicateBuildingHandler(p)),
		mediator.RegisterHandler[*FlowReportQuery](m, NewFlowReportHandler(p)),
	}
	for _, err := range registrations {
		if err != nil {
			return fmt.Errorf("failed to register planner handlers: %w", err)
		}
	}
	return nil
}

// AddBuildingHandler - Handles add building commands
type AddBuildingHandler struct {
	planner *Planner
}

// NewAddBuildingHandler creates a new add building handler
func NewAddBuildingHandler(p *Planner) *AddBuildingHandler {
	return &AddBuildingHandler{planner: p}
}

// Handle executes the add building command
func (h *AddBuildingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	b, err := plan.NewBuilding(cmd.Spec)
	if err != nil {
		return nil, err
	}
	id, err := h.planner.AddBuilding(cmd.Spec.ID, b)
	if err != nil {
		return nil, err
	}
	return &AddBuildingResponse{NodeID: id}, nil
}

// RemoveBuildingHandler - Handles remove building commands
type RemoveBuildingHandler struct {
	planner *Planner
}

// NewRemoveBuildingHandler creates a new remove building handler
func NewRemoveBuildingHandler(p *Planner) *RemoveBuildingHandler {
	return &RemoveBuildingHandler{planner: p}
}

// Handle executes the remove building command
func (h *RemoveBuildingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RemoveBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return nil, h.planner.RemoveBuilding(cmd.ID)
}

// ConnectHandler - Handles connect commands
type ConnectHandler struct {
	planner *Planner
}

// NewConnectHandler creates a new connect handler
func NewConnectHandler(p *Planner) *ConnectHandler {
	return &ConnectHandler{planner: p}
}

// Handle executes the connect command
func (h *ConnectHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ConnectCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	edge, err := h.planner.Connect(cmd.From, cmd.Output, cmd.To, cmd.Input)
	if err != nil {
		return nil, err
	}
	return &ConnectResponse{EdgeID: edge}, nil
}

// DisconnectHandler - Handles disconnect commands
type DisconnectHandler struct {
	planner *Planner
}

// NewDisconnectHandler creates a new disconnect handler
func NewDisconnectHandler(p *Planner) *DisconnectHandler {
	return &DisconnectHandler{planner: p}
}

// Handle executes the disconnect command
func (h *DisconnectHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DisconnectCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	if cmd.EdgeID != nil {
		return nil, h.planner.Disconnect(*cmd.EdgeID)
	}
	return nil, h.planner.DisconnectPort(cmd.To, cmd.Input)
}

// ConfigureBuildingHandler - Handles configure building commands
type ConfigureBuildingHandler struct {
	planner *Planner
}

// NewConfigureBuildingHandler creates a new configure building handler
func NewConfigureBuildingHandler(p *Planner) *ConfigureBuildingHandler {
	return &ConfigureBuildingHandler{planner: p}
}

// Handle executes the configure building command. All changes are applied
// before a single propagation pass.
func (h *ConfigureBuildingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ConfigureBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	err := h.planner.Configure(cmd.ID, func(b building.Building) error {
		if cmd.Recipe != nil {
			c, ok := b.(building.Configurable)
			if !ok {
				return unsupported(cmd.ID, b, "recipe")
			}
			if *cmd.Recipe == "" {
				c.ClearRecipe()
			} else {
				r, err := catalog.ParseRecipe(c.Kind(), *cmd.Recipe)
				if err != nil {
					return err
				}
				if err := c.SetRecipe(r.ID); err != nil {
					return err
				}
			}
		}
		if cmd.Speed != nil {
			o, ok := b.(building.Overclockable)
			if !ok {
				return unsupported(cmd.ID, b, "speed")
			}
			o.SetSpeed(*cmd.Speed)
		}
		if cmd.Amplifiers != nil {
			c, ok := b.(building.Configurable)
			if !ok || c.AmplifierSlots() == 0 {
				return unsupported(cmd.ID, b, "amplifier")
			}
			c.SetAmplifiers(*cmd.Amplifiers)
		}
		if cmd.Extractor != nil {
			e, ok := b.(building.Extractor)
			if !ok {
				return unsupported(cmd.ID, b, "extractor")
			}
			return e.Configure(*cmd.Extractor)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure %s: %w", cmd.ID, err)
	}
	return nil, nil
}

// DuplicateBuildingHandler - Handles duplicate building commands
type DuplicateBuildingHandler struct {
	planner *Planner
}

// NewDuplicateBuildingHandler creates a new duplicate building handler
func NewDuplicateBuildingHandler(p *Planner) *DuplicateBuildingHandler {
	return &DuplicateBuildingHandler{planner: p}
}

// Handle executes the duplicate building command
func (h *DuplicateBuildingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DuplicateBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	id, err := h.planner.Duplicate(cmd.ID, cmd.NewID)
	if err != nil {
		return nil, err
	}
	return &DuplicateBuildingResponse{NodeID: id}, nil
}

// FlowReportHandler - Handles flow report queries
type FlowReportHandler struct {
	planner *Planner
}

// NewFlowReportHandler creates a new flow report handler
func NewFlowReportHandler(p *Planner) *FlowReportHandler {
	return &FlowReportHandler{planner: p}
}

// Handle executes the flow report query
func (h *FlowReportHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*FlowReportQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return h.planner.Report(), nil
}
