package extcall

import (
	"context"
	"time"

	"github.com/aalemi-dev/biztrace/exterr"
	"github.com/aalemi-dev/biztrace/tracing"
)

// Call describes one interaction with an external system. It provides the
// context both checkpoint markers carry in a structured format.
type Call struct {
	// Component identifies the external system being called.
	// Examples: "acme-pay", "rates-api", "smtp-relay"
	Component string

	// Operation describes what is being performed against it.
	// Examples: "charge", "fetch-rates", "send"
	Operation string

	// Resource identifies the primary resource being operated on (optional).
	// Examples: an account id, a queue name, a bucket/key pair
	Resource string

	// TransactionID ties the interaction to a business transaction, or ""
	// to let the tracer resolve it from the context.
	TransactionID string

	// CheckpointID names the checkpoint emitted for this interaction, or ""
	// when unnamed.
	CheckpointID string

	// Metadata provides additional fields attached to both markers
	// (optional).
	Metadata map[string]interface{}
}

// payload renders the marker message for one phase of the call.
func (c Call) payload(phase string) string {
	name := c.Operation
	if c.Component != "" {
		name = c.Component + " " + name
	}
	return phase + " " + name
}

// fields merges the call description, its metadata and per-marker extras
// into the field map of one marker.
func (c Call) fields(extra map[string]interface{}) map[string]interface{} {
	merged := map[string]interface{}{
		"component": c.Component,
		"operation": c.Operation,
	}
	if c.Resource != "" {
		merged["resource"] = c.Resource
	}
	for key, value := range c.Metadata {
		merged[key] = value
	}
	for key, value := range extra {
		merged[key] = value
	}
	return merged
}

// Do runs fn bracketed by external-interaction checkpoints and returns its
// error translated into the exterr taxonomy.
//
// The start marker carries the call description; the end marker additionally
// carries "duration_ms", "outcome" ("success" or "error") and, on failure,
// the error text. A nil tracer skips the markers but still runs fn and
// translates its error. Errors already classified by exterr come back
// unchanged; a nil error stays nil.
//
// Do does not retry and does not enforce deadlines. Callers control both
// through fn and ctx.
func Do(ctx context.Context, tracer tracing.TransactionalTracer, call Call, fn func(context.Context) error) error {
	if tracer == nil {
		return exterr.Translate(fn(ctx))
	}

	tracer.ReportStartExternal(ctx, call.payload("calling"), call.TransactionID, call.CheckpointID, call.fields(nil))

	start := time.Now()
	err := fn(ctx)
	duration := time.Since(start)

	end := map[string]interface{}{
		"duration_ms": duration.Milliseconds(),
		"outcome":     "success",
	}
	phase := "completed"
	if err != nil {
		end["outcome"] = "error"
		end["error"] = err.Error()
		phase = "failed"
	}
	tracer.ReportEndExternal(ctx, call.payload(phase), call.TransactionID, call.CheckpointID, call.fields(end))

	return exterr.Translate(err)
}
