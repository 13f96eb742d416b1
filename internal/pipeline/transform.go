package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/unit-converter/internal/domain"
	"github.com/couchcryptid/unit-converter/internal/observability"
)

// Entry point labels for the conversions metric.
const (
	sourcePipeline = "pipeline"
	sourceHTTP     = "http"
)

// outcomeInvalidNumber labels requests whose number text failed to parse.
const outcomeInvalidNumber = "invalid_number"

// ConversionTransformer implements Transformer by evaluating each request
// line, with an optional LRU cache of results in front of the evaluator.
type ConversionTransformer struct {
	cache   *resultCache
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTransformer creates a ConversionTransformer. A cacheSize of zero or less
// disables the result cache.
func NewTransformer(cacheSize int, metrics *observability.Metrics, logger *slog.Logger) *ConversionTransformer {
	t := &ConversionTransformer{
		metrics: metrics,
		logger:  logger,
	}
	if cacheSize > 0 {
		t.cache = newResultCache(cacheSize)
		metrics.CacheEnabled.Set(1)
	} else {
		metrics.CacheEnabled.Set(0)
	}
	return t
}

// Transform evaluates the request line carried by raw.
func (t *ConversionTransformer) Transform(_ context.Context, raw domain.RawRequest) (domain.ConversionEvent, error) {
	input := domain.RequestLine(raw)
	res, err := t.evaluate(input, sourcePipeline)
	if err != nil {
		return domain.ConversionEvent{}, fmt.Errorf("evaluate request: %w", err)
	}

	event := domain.NewConversionEvent(input, res)
	t.logger.Debug("request evaluated",
		"id", event.ID,
		"outcome", event.Outcome,
		"offset", raw.Offset,
	)
	return event, nil
}

// Evaluate answers a single request line outside the pipeline, e.g. over HTTP.
func (t *ConversionTransformer) Evaluate(input string) (domain.Result, error) {
	return t.evaluate(input, sourceHTTP)
}

func (t *ConversionTransformer) evaluate(input, source string) (domain.Result, error) {
	if t.cache != nil {
		if res, ok := t.cache.get(input); ok {
			t.metrics.ConversionCache.WithLabelValues("hit").Inc()
			t.metrics.Conversions.WithLabelValues(string(res.Outcome), source).Inc()
			return res, nil
		}
		t.metrics.ConversionCache.WithLabelValues("miss").Inc()
	}

	res, err := domain.Evaluate(input)
	if err != nil {
		if errors.Is(err, domain.ErrNumberFormat) {
			t.metrics.Conversions.WithLabelValues(outcomeInvalidNumber, source).Inc()
		}
		// Failures are not cached.
		return domain.Result{}, err
	}

	if t.cache != nil {
		t.cache.put(input, res)
	}
	t.metrics.Conversions.WithLabelValues(string(res.Outcome), source).Inc()
	return res, nil
}
