package extcall_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/biztrace/extcall"
	"github.com/aalemi-dev/biztrace/exterr"
	"github.com/aalemi-dev/biztrace/tracing"
)

// marker captures one emitted checkpoint.
type marker struct {
	phase         string
	payload       interface{}
	transactionID string
	checkpointID  string
	extra         map[string]interface{}
}

// markerTracer records external markers and ignores every other checkpoint.
type markerTracer struct {
	markers []marker
}

var _ tracing.TransactionalTracer = (*markerTracer)(nil)

func (m *markerTracer) capture(phase string, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	mk := marker{phase: phase, payload: payload, transactionID: transactionID, checkpointID: checkpointID}
	if len(extra) > 0 {
		mk.extra = extra[0]
	}
	m.markers = append(m.markers, mk)
}

func (m *markerTracer) Info(context.Context, interface{}, string, string, ...map[string]interface{}) {
}

func (m *markerTracer) Debug(context.Context, interface{}, string, string, ...map[string]interface{}) {
}

func (m *markerTracer) Warning(context.Context, interface{}, string, string, ...map[string]interface{}) {
}

func (m *markerTracer) Error(context.Context, interface{}, string, string, ...map[string]interface{}) {
}

func (m *markerTracer) Critical(context.Context, interface{}, string, string, ...map[string]interface{}) {
}

func (m *markerTracer) FuncError(context.Context, interface{}, string, string, ...map[string]interface{}) {
}

func (m *markerTracer) TechError(context.Context, interface{}, string, string, error, ...map[string]interface{}) {
}

func (m *markerTracer) ReportStartExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	m.capture("start", payload, transactionID, checkpointID, extra...)
}

func (m *markerTracer) ReportEndExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	m.capture("end", payload, transactionID, checkpointID, extra...)
}

func TestDo_Success(t *testing.T) {
	t.Parallel()
	tracer := &markerTracer{}
	call := extcall.Call{
		Component:     "acme-pay",
		Operation:     "charge",
		Resource:      "acct-991",
		TransactionID: "txn-1",
		CheckpointID:  "checkout.charge",
		Metadata:      map[string]interface{}{"provider_region": "eu"},
	}

	err := extcall.Do(context.Background(), tracer, call, func(context.Context) error {
		return nil
	})
	require.NoError(t, err)
	require.Len(t, tracer.markers, 2)

	start := tracer.markers[0]
	assert.Equal(t, "start", start.phase)
	assert.Equal(t, "calling acme-pay charge", start.payload)
	assert.Equal(t, "txn-1", start.transactionID)
	assert.Equal(t, "checkout.charge", start.checkpointID)
	assert.Equal(t, "acme-pay", start.extra["component"])
	assert.Equal(t, "charge", start.extra["operation"])
	assert.Equal(t, "acct-991", start.extra["resource"])
	assert.Equal(t, "eu", start.extra["provider_region"])
	assert.NotContains(t, start.extra, "outcome")

	end := tracer.markers[1]
	assert.Equal(t, "end", end.phase)
	assert.Equal(t, "completed acme-pay charge", end.payload)
	assert.Equal(t, "success", end.extra["outcome"])
	assert.Contains(t, end.extra, "duration_ms")
	assert.GreaterOrEqual(t, end.extra["duration_ms"], int64(0))
	assert.NotContains(t, end.extra, "error")
}

func TestDo_FailureTranslatesError(t *testing.T) {
	t.Parallel()
	tracer := &markerTracer{}
	cause := errors.New("read tcp 10.0.0.12:55012: connection reset by peer")

	err := extcall.Do(context.Background(), tracer, extcall.Call{Operation: "fetch"}, func(context.Context) error {
		return cause
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, exterr.ErrConnection)
	assert.ErrorIs(t, err, cause)

	require.Len(t, tracer.markers, 2)
	end := tracer.markers[1]
	assert.Equal(t, "failed fetch", end.payload)
	assert.Equal(t, "error", end.extra["outcome"])
	assert.Equal(t, cause.Error(), end.extra["error"])
}

func TestDo_ClassifiedErrorUnchanged(t *testing.T) {
	t.Parallel()
	tracer := &markerTracer{}
	classified := exterr.NewAuthorization("scope missing")

	err := extcall.Do(context.Background(), tracer, extcall.Call{Operation: "fetch"}, func(context.Context) error {
		return classified
	})

	assert.Same(t, classified, err)
}

func TestDo_NilTracer(t *testing.T) {
	t.Parallel()
	ran := false

	err := extcall.Do(context.Background(), nil, extcall.Call{}, func(context.Context) error {
		ran = true
		return context.DeadlineExceeded
	})

	assert.True(t, ran)
	assert.ErrorIs(t, err, exterr.ErrTimeout)
}

type ctxKey struct{}

func TestDo_PassesContextThrough(t *testing.T) {
	t.Parallel()
	tracer := &markerTracer{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "sentinel")

	var got context.Context
	err := extcall.Do(ctx, tracer, extcall.Call{Operation: "fetch"}, func(inner context.Context) error {
		got = inner
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sentinel", got.Value(ctxKey{}))
}

func TestDo_OmitsEmptyResource(t *testing.T) {
	t.Parallel()
	tracer := &markerTracer{}

	err := extcall.Do(context.Background(), tracer, extcall.Call{Component: "rates-api", Operation: "fetch"}, func(context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.NotContains(t, tracer.markers[0].extra, "resource")
}
