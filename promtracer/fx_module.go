package promtracer

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/biztrace/tracing"
)

// FXModule defines the Fx module for the promtracer package.
// This module integrates the metric-counting tracer into an Fx-based
// application.
//
// The module provides:
// 1. *Client (concrete type) for direct use
// 2. tracing.TransactionalTracer interface for dependency injection
//
// Usage:
//
//	app := fx.New(
//	    promtracer.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A promtracer.Config instance must be available in the dependency injection container
//
// Note: logtracer.FXModule also provides tracing.TransactionalTracer.
// Include exactly one of the two modules, or chain the clients through
// promtracer.Config.Next.
var FXModule = fx.Module("promtracer",
	fx.Provide(
		NewClient, // Provides *Client
		// Also provide the tracing interface
		fx.Annotate(
			func(c *Client) tracing.TransactionalTracer { return c },
			fx.As(new(tracing.TransactionalTracer)),
		),
	),
)
