// Package extcall brackets outbound calls to external systems with traced
// start/end checkpoints and classifies their failures.
//
// # Overview
//
// Do wraps one call: it emits a ReportStartExternal checkpoint, runs the
// call, emits a ReportEndExternal checkpoint carrying the measured duration
// and outcome, and returns the error translated into the exterr taxonomy.
// Calling code gets classification and uniform call markers without
// repeating the plumbing at every call site:
//
//	err := extcall.Do(ctx, tracer, extcall.Call{
//	    Component:    "acme-pay",
//	    Operation:    "charge",
//	    CheckpointID: "checkout.charge",
//	}, func(ctx context.Context) error {
//	    return client.Charge(ctx, order)
//	})
//	if exterr.IsRetryable(err) {
//	    // schedule retry
//	}
//
// The tracer is optional: with a nil tracer Do still runs the call and
// translates the error, it just emits no checkpoints.
package extcall
