package pipeline_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/couchcryptid/unit-converter/internal/domain"
	"github.com/couchcryptid/unit-converter/internal/observability"
	"github.com/couchcryptid/unit-converter/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionTransformer_Transform(t *testing.T) {
	tfm := pipeline.NewTransformer(10, observability.NewMetricsForTesting(), slog.Default())

	event, err := tfm.Transform(context.Background(), makeRawRequest("req-1", "100 c to f\n"))
	require.NoError(t, err)
	assert.Equal(t, "100 c to f", event.Input)
	assert.Equal(t, domain.OutcomeConverted, event.Outcome)
	assert.Equal(t, "100.0 degrees Celsius is 212.0 degrees Fahrenheit\n", event.Message)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.ProcessedAt.IsZero())
}

func TestConversionTransformer_NumberFormatError(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(10, metrics, slog.Default())

	_, err := tfm.Transform(context.Background(), makeRawRequest("req-2", "1.2.3 m to km"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNumberFormat)
	assert.Contains(t, err.Error(), "evaluate request")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Conversions.WithLabelValues("invalid_number", "pipeline")), 0)

	// Errors are never cached, so the second attempt misses again.
	_, err = tfm.Transform(context.Background(), makeRawRequest("req-2", "1.2.3 m to km"))
	require.Error(t, err)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.ConversionCache.WithLabelValues("miss")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.ConversionCache.WithLabelValues("hit")), 0)
}

func TestConversionTransformer_CacheHit(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(10, metrics, slog.Default())

	first, err := tfm.Evaluate("5 m to g")
	require.NoError(t, err)
	second, err := tfm.Evaluate("5 m to g")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.OutcomeImpossible, second.Outcome)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ConversionCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ConversionCache.WithLabelValues("miss")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.Conversions.WithLabelValues("impossible", "http")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.CacheEnabled), 0)
}

func TestConversionTransformer_CacheDisabled(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(0, metrics, slog.Default())

	for range 3 {
		res, err := tfm.Evaluate("banana")
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeParseError, res.Outcome)
	}

	assert.InDelta(t, 0, testutil.ToFloat64(metrics.ConversionCache.WithLabelValues("miss")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(metrics.Conversions.WithLabelValues("parse_error", "http")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.CacheEnabled), 0)
}
