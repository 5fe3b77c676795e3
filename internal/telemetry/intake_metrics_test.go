package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rakib-hossain32/doha-popular/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestIntakeMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		_ = provider.Shutdown(context.Background())
	})
	require.NoError(t, InitIntakeMetrics())

	ctx := context.Background()
	RecordSubmission(ctx, "inquiry")
	RecordSubmission(ctx, "inquiry")
	RecordSubmission(ctx, "application")
	RecordNotification(ctx, "inquiry", 3*time.Millisecond, nil)
	RecordNotification(ctx, "inquiry", time.Millisecond, errors.New("smtp down"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			data, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range data.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}
	assert.Equal(t, int64(3), sums["intake.submissions"])
	assert.Equal(t, int64(2), sums["intake.notifications"])
}

func TestSetupMetrics_Disabled(t *testing.T) {
	mp, err := SetupMetrics(context.Background(), &config.Config{}, "test")
	require.NoError(t, err)
	assert.Nil(t, mp)
	assert.NoError(t, ShutdownMetrics(context.Background()))
}
