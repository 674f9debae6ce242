package common

// Mediator types re-exported so handlers only need to import common.
//
// RegisterHandler is generic and must be called from the mediator package:
//   mediator.RegisterHandler[*MyCommand](m, handler)

import (
	"github.com/andrescamacho/factoryplan-go/internal/application/mediator"
)

// Mediator types - re-exported
type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
)

// Mediator functions - re-exported
var (
	NewMediator = mediator.NewMediator
)
