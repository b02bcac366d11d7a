package trace

import (
	"context"
	"errors"
	"testing"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func findProduct(ctx context.Context, fail bool) (err error) {
	_, span := StartSpan(ctx, attribute.String("app.product.id", "p1"))
	defer EndSpan(span, &err, nil)
	if fail {
		return errors.New("boom")
	}
	return nil
}

func TestSpanNamedAfterCaller(t *testing.T) {
	recorder := withRecorder(t)

	require.NoError(t, findProduct(context.Background(), false))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "findProduct", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("app.product.id", "p1"))
}

func TestEndSpanRecordsError(t *testing.T) {
	recorder := withRecorder(t)

	require.Error(t, findProduct(context.Background(), true))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func lookupSale(ctx context.Context, appErr *apierrors.AppError) *apierrors.AppError {
	_, span := StartSpan(ctx)
	defer EndAppSpan(span, appErr)
	return appErr
}

func TestEndAppSpanLeavesBusinessErrorsUnset(t *testing.T) {
	recorder := withRecorder(t)

	lookupSale(context.Background(), apierrors.NewBusinessError(apierrors.ErrCodeNotFound, apierrors.MsgSaleNotFound, nil))
	lookupSale(context.Background(), apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "down", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "lookupSale", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("app.error.code", apierrors.ErrCodeNotFound))
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestNewSamplerHonoursRatio(t *testing.T) {
	cfg := config.NewConfig()
	assert.Contains(t, NewSampler(cfg).Description(), "AlwaysOnSampler")

	cfg.OtelSampleRatio = 0
	assert.Contains(t, NewSampler(cfg).Description(), "AlwaysOffSampler")

	cfg.OtelSampleRatio = 0.25
	assert.Contains(t, NewSampler(cfg).Description(), "TraceIDRatioBased")
}

func rollbackStep(ctx context.Context, appErr *apierrors.AppError) {
	_, span := StartSpan(ctx)
	defer span.End()
	RecordSpanError(span, appErr, attribute.String("app.product.id", "p1"))
}

func TestRecordSpanErrorTagsAppErrors(t *testing.T) {
	recorder := withRecorder(t)

	rollbackStep(context.Background(), apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "down", nil))
	rollbackStep(context.Background(), apierrors.InvalidData(apierrors.MsgWrongProductID))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	require.Len(t, spans[0].Events(), 1)
	event := spans[0].Events()[0]
	assert.Equal(t, "exception", event.Name)
	assert.Contains(t, event.Attributes, attribute.String("app.error.code", apierrors.ErrCodeDatabaseAccess))
	assert.Contains(t, event.Attributes, attribute.String("app.product.id", "p1"))
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	require.Len(t, spans[1].Events(), 1)
	assert.Equal(t, codes.Unset, spans[1].Status().Code)
}
