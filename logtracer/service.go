package logtracer

// Info records an informational checkpoint. Use Info for general application
// progress and successful operations.
//
// Parameters:
//   - payload: The checkpoint payload, rendered as the log message
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
//
// Example:
//
//	svc.Info("rate table refreshed", "rates.refresh", map[string]interface{}{
//	    "entries": 412,
//	    "source":  "s3",
//	})
func (c *ServiceClient) Info(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.Info(payloadMessage(payload), c.checkpointFields(checkpointID, extra...)...)
}

// Debug records a debug-level checkpoint, useful for development and
// troubleshooting. Debug checkpoints are typically more verbose and include
// information primarily useful when diagnosing issues.
//
// Parameters:
//   - payload: The checkpoint payload, rendered as the log message
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
func (c *ServiceClient) Debug(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.Debug(payloadMessage(payload), c.checkpointFields(checkpointID, extra...)...)
}

// Warning records a checkpoint for potential issues that aren't necessarily
// errors but might need attention or could lead to problems if not addressed.
//
// Parameters:
//   - payload: The checkpoint payload, rendered as the log message
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
func (c *ServiceClient) Warning(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.Warn(payloadMessage(payload), c.checkpointFields(checkpointID, extra...)...)
}

// Error records an error checkpoint. Use Error when something has gone wrong
// that affects the current operation but doesn't require immediate
// termination of the application.
//
// Parameters:
//   - payload: The checkpoint payload, rendered as the log message
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
//
// Example:
//
//	svc.Error("rate table refresh failed", "rates.refresh", map[string]interface{}{
//	    "retry_in_s": 30,
//	})
func (c *ServiceClient) Error(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.Error(payloadMessage(payload), c.checkpointFields(checkpointID, extra...)...)
}

// Critical records a checkpoint for events demanding immediate attention.
// Critical checkpoints are emitted at Zap's DPanic level, which logs at high
// severity without panicking in the production configuration this package
// builds.
//
// Parameters:
//   - payload: The checkpoint payload, rendered as the log message
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
func (c *ServiceClient) Critical(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.DPanic(payloadMessage(payload), c.checkpointFields(checkpointID, extra...)...)
}
