package promtracer

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/biztrace/tracing"
)

// newTestClient returns a Client registered against a fresh registry so tests
// never collide on metric names.
func newTestClient(t *testing.T, next tracing.TransactionalTracer) (*Client, *prometheus.Registry) {
	t.Helper()
	registry := prometheus.NewRegistry()
	return NewClient(Config{Registerer: registry, Next: next}), registry
}

// metricValue reads the current value of a counter or gauge from the
// registry, filtered by the given label pairs.
func metricValue(t *testing.T, registry *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metric:
		for _, m := range family.GetMetric() {
			for key, value := range labels {
				matched := false
				for _, pair := range m.GetLabel() {
					if pair.GetName() == key && pair.GetValue() == value {
						matched = true
						break
					}
				}
				if !matched {
					continue metric
				}
			}
			if m.GetCounter() != nil {
				return m.GetCounter().GetValue()
			}
			if m.GetGauge() != nil {
				return m.GetGauge().GetValue()
			}
		}
	}
	t.Fatalf("metric %s not found with labels %v", name, labels)
	return 0
}

// recordingTracer captures forwarded checkpoints for assertions.
type recordingTracer struct {
	methods        []string
	transactionIDs []string
	lastErr        error
}

func (r *recordingTracer) record(method, transactionID string) {
	r.methods = append(r.methods, method)
	r.transactionIDs = append(r.transactionIDs, transactionID)
}

func (r *recordingTracer) Info(_ context.Context, _ interface{}, transactionID, _ string, _ ...map[string]interface{}) {
	r.record("Info", transactionID)
}

func (r *recordingTracer) Debug(_ context.Context, _ interface{}, transactionID, _ string, _ ...map[string]interface{}) {
	r.record("Debug", transactionID)
}

func (r *recordingTracer) Warning(_ context.Context, _ interface{}, transactionID, _ string, _ ...map[string]interface{}) {
	r.record("Warning", transactionID)
}

func (r *recordingTracer) Error(_ context.Context, _ interface{}, transactionID, _ string, _ ...map[string]interface{}) {
	r.record("Error", transactionID)
}

func (r *recordingTracer) Critical(_ context.Context, _ interface{}, transactionID, _ string, _ ...map[string]interface{}) {
	r.record("Critical", transactionID)
}

func (r *recordingTracer) FuncError(_ context.Context, _ interface{}, transactionID, _ string, _ ...map[string]interface{}) {
	r.record("FuncError", transactionID)
}

func (r *recordingTracer) TechError(_ context.Context, _ interface{}, transactionID, _ string, err error, _ ...map[string]interface{}) {
	r.record("TechError", transactionID)
	r.lastErr = err
}

func (r *recordingTracer) ReportStartExternal(_ context.Context, _ interface{}, transactionID, _ string, _ ...map[string]interface{}) {
	r.record("ReportStartExternal", transactionID)
}

func (r *recordingTracer) ReportEndExternal(_ context.Context, _ interface{}, transactionID, _ string, _ ...map[string]interface{}) {
	r.record("ReportEndExternal", transactionID)
}

func TestNewClient_PreInitializesLevelSeries(t *testing.T) {
	t.Parallel()
	_, registry := newTestClient(t, nil)

	for _, level := range []string{levelDebug, levelInfo, levelWarning, levelError, levelCritical} {
		got := metricValue(t, registry, "tracer_entries_total", map[string]string{"level": level})
		assert.Equal(t, 0.0, got, "level %s", level)
	}
}

func TestClient_CountsByLevel(t *testing.T) {
	t.Parallel()
	c, registry := newTestClient(t, nil)
	ctx := context.Background()

	c.Info(ctx, "a", "", "")
	c.Info(ctx, "b", "", "")
	c.Debug(ctx, "c", "", "")
	c.Warning(ctx, "d", "", "")
	c.Error(ctx, "e", "", "")
	c.Critical(ctx, "f", "", "")

	assert.Equal(t, 2.0, metricValue(t, registry, "tracer_entries_total", map[string]string{"level": levelInfo}))
	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_entries_total", map[string]string{"level": levelDebug}))
	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_entries_total", map[string]string{"level": levelWarning}))
	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_entries_total", map[string]string{"level": levelError}))
	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_entries_total", map[string]string{"level": levelCritical}))
}

func TestClient_CountsErrorKinds(t *testing.T) {
	t.Parallel()
	c, registry := newTestClient(t, nil)
	ctx := context.Background()

	c.FuncError(ctx, "credit limit exceeded", "txn-1", "checkout.credit")
	c.TechError(ctx, "charge failed", "txn-1", "checkout.charge", errors.New("refused"))
	c.TechError(ctx, "charge failed again", "txn-1", "checkout.charge", nil)

	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_functional_errors_total", nil))
	assert.Equal(t, 2.0, metricValue(t, registry, "tracer_technical_errors_total", nil))
	assert.Equal(t, 3.0, metricValue(t, registry, "tracer_entries_total", map[string]string{"level": levelError}))
}

func TestClient_ExternalLifecycle(t *testing.T) {
	t.Parallel()
	c, registry := newTestClient(t, nil)
	ctx := context.Background()

	c.ReportStartExternal(ctx, "charging card", "txn-1", "checkout.charge")
	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_external_calls_started_total", nil))
	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_external_calls_in_flight", nil))

	c.ReportEndExternal(ctx, "card charged", "txn-1", "checkout.charge")
	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_external_calls_completed_total", nil))
	assert.Equal(t, 0.0, metricValue(t, registry, "tracer_external_calls_in_flight", nil))
}

func TestClient_ForwardsToNext(t *testing.T) {
	t.Parallel()
	next := &recordingTracer{}
	c, _ := newTestClient(t, next)
	ctx := context.Background()
	cause := errors.New("refused")

	c.Info(ctx, "a", "txn-9", "cp")
	c.Debug(ctx, "b", "txn-9", "cp")
	c.Warning(ctx, "c", "txn-9", "cp")
	c.Error(ctx, "d", "txn-9", "cp")
	c.Critical(ctx, "e", "txn-9", "cp")
	c.FuncError(ctx, "f", "txn-9", "cp")
	c.TechError(ctx, "g", "txn-9", "cp", cause)
	c.ReportStartExternal(ctx, "h", "txn-9", "cp")
	c.ReportEndExternal(ctx, "i", "txn-9", "cp")

	want := []string{
		"Info", "Debug", "Warning", "Error", "Critical",
		"FuncError", "TechError", "ReportStartExternal", "ReportEndExternal",
	}
	assert.Equal(t, want, next.methods)
	assert.Same(t, cause, next.lastErr)
	for _, transactionID := range next.transactionIDs {
		assert.Equal(t, "txn-9", transactionID)
	}
}

func TestClient_NilNextOnlyCounts(t *testing.T) {
	t.Parallel()
	c, registry := newTestClient(t, nil)
	ctx := context.Background()

	// None of these may panic without a next tracer.
	c.Info(ctx, "a", "", "")
	c.TechError(ctx, "b", "", "", nil)
	c.ReportStartExternal(ctx, "c", "", "")
	c.ReportEndExternal(ctx, "d", "", "")

	assert.Equal(t, 1.0, metricValue(t, registry, "tracer_technical_errors_total", nil))
}

func TestNewClient_Namespace(t *testing.T) {
	t.Parallel()
	registry := prometheus.NewRegistry()
	c := NewClient(Config{Namespace: "checkout", Registerer: registry})
	c.Info(context.Background(), "a", "", "")

	got := metricValue(t, registry, "checkout_tracer_entries_total", map[string]string{"level": levelInfo})
	assert.Equal(t, 1.0, got)
}

func TestNewClient_ServiceLabel(t *testing.T) {
	t.Parallel()
	registry := prometheus.NewRegistry()
	c := NewClient(Config{ServiceName: "checkout", Registerer: registry})
	c.Info(context.Background(), "a", "", "")

	got := metricValue(t, registry, "tracer_entries_total", map[string]string{
		"level":   levelInfo,
		"service": "checkout",
	})
	assert.Equal(t, 1.0, got)
}

func TestFXModule_ProvidesTransactionalTracer(t *testing.T) {
	t.Parallel()
	var tr tracing.TransactionalTracer

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config {
			return Config{Registerer: prometheus.NewRegistry()}
		}),
		fx.Populate(&tr),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, tr)
}

func TestClient_ImplementsTransactionalTracer(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, nil)
	var _ tracing.TransactionalTracer = c // compile-time check
}
