package logtracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/biztrace/tracing"
)

// FXModule defines the Fx module for the logtracer package.
// This module integrates the log-backed tracers into an Fx-based application
// by providing both client factories and registering their lifecycle hooks.
//
// The module provides:
// 1. *ServiceClient and *TransactionalClient (concrete types) for direct use
// 2. tracing.ServiceTracer and tracing.TransactionalTracer interfaces for dependency injection
// 3. Lifecycle management for proper cleanup
//
// Usage:
//
//	app := fx.New(
//	    logtracer.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A logtracer.Config instance must be available in the dependency injection container
var FXModule = fx.Module("logtracer",
	fx.Provide(
		NewServiceClient,       // Provides *ServiceClient
		NewTransactionalClient, // Provides *TransactionalClient
		// Also provide the tracing interfaces
		fx.Annotate(
			func(c *ServiceClient) tracing.ServiceTracer { return c },
			fx.As(new(tracing.ServiceTracer)),
		),
		fx.Annotate(
			func(c *TransactionalClient) tracing.TransactionalTracer { return c },
			fx.As(new(tracing.TransactionalTracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle handles cleanup (sync) of the Zap loggers backing
// both clients. This function registers a shutdown hook with the Fx lifecycle
// system that ensures any buffered entries are flushed when the application
// terminates.
//
// Parameters:
//   - lc: The Fx lifecycle controller
//   - service: The service-level tracer to be managed
//   - transactional: The transaction-aware tracer to be managed
//
// The lifecycle hook:
//   - OnStop: Calls Sync() on the underlying Zap loggers to flush any
//     buffered entries to their output destinations before the application
//     terminates
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterTracerLifecycle(lc fx.Lifecycle, service *ServiceClient, transactional *TransactionalClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := service.Zap.Sync(); err != nil {
				return err
			}
			return transactional.Zap.Sync() // flushes any buffered entries
		},
	})
}
