package transaction

import "go.uber.org/fx"

// FXModule defines the Fx module for the transaction package.
// This module integrates the transaction manager into an Fx-based application.
//
// The module provides:
// 1. *Manager (concrete type) for direct use
// 2. Provider interface for dependency injection
//
// Usage:
//
//	app := fx.New(
//	    transaction.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A transaction.Config instance must be available in the dependency injection container
var FXModule = fx.Module("transaction",
	fx.Provide(
		NewManager, // Provides *Manager
		// Also provide the Provider interface
		fx.Annotate(
			func(m *Manager) Provider { return m },
			fx.As(new(Provider)),
		),
	),
)
