package promtracer

import (
	"context"
)

// Info counts an informational checkpoint and forwards it to the next tracer
// when one is configured.
func (c *Client) Info(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelInfo).Inc()
	if c.next != nil {
		c.next.Info(ctx, payload, transactionID, checkpointID, extra...)
	}
}

// Debug counts a debug-level checkpoint and forwards it to the next tracer
// when one is configured.
func (c *Client) Debug(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelDebug).Inc()
	if c.next != nil {
		c.next.Debug(ctx, payload, transactionID, checkpointID, extra...)
	}
}

// Warning counts a warning checkpoint and forwards it to the next tracer
// when one is configured.
func (c *Client) Warning(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelWarning).Inc()
	if c.next != nil {
		c.next.Warning(ctx, payload, transactionID, checkpointID, extra...)
	}
}

// Error counts an error checkpoint and forwards it to the next tracer when
// one is configured.
func (c *Client) Error(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelError).Inc()
	if c.next != nil {
		c.next.Error(ctx, payload, transactionID, checkpointID, extra...)
	}
}

// Critical counts a critical checkpoint and forwards it to the next tracer
// when one is configured.
func (c *Client) Critical(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelCritical).Inc()
	if c.next != nil {
		c.next.Critical(ctx, payload, transactionID, checkpointID, extra...)
	}
}

// FuncError counts an error checkpoint caused by a business rule violation
// and forwards it to the next tracer when one is configured.
func (c *Client) FuncError(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelError).Inc()
	c.functionalErrors.Inc()
	if c.next != nil {
		c.next.FuncError(ctx, payload, transactionID, checkpointID, extra...)
	}
}

// TechError counts an error checkpoint caused by an infrastructure failure
// and forwards it to the next tracer when one is configured.
func (c *Client) TechError(ctx context.Context, payload interface{}, transactionID, checkpointID string, err error, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelError).Inc()
	c.technicalErrors.Inc()
	if c.next != nil {
		c.next.TechError(ctx, payload, transactionID, checkpointID, err, extra...)
	}
}

// ReportStartExternal counts the start of an external interaction, raises the
// in-flight gauge, and forwards the checkpoint to the next tracer when one is
// configured. In-flight accounting relies on callers pairing it with
// ReportEndExternal.
func (c *Client) ReportStartExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelInfo).Inc()
	c.externalStarted.Inc()
	c.externalInFlight.Inc()
	if c.next != nil {
		c.next.ReportStartExternal(ctx, payload, transactionID, checkpointID, extra...)
	}
}

// ReportEndExternal counts the end of an external interaction, lowers the
// in-flight gauge, and forwards the checkpoint to the next tracer when one is
// configured.
func (c *Client) ReportEndExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.entries.WithLabelValues(levelInfo).Inc()
	c.externalCompleted.Inc()
	c.externalInFlight.Dec()
	if c.next != nil {
		c.next.ReportEndExternal(ctx, payload, transactionID, checkpointID, extra...)
	}
}
