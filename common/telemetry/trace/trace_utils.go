package trace

import (
	"errors"
	"fmt"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// RecordSpanError adds an exception event for a failure that does not end the
// span, such as one step of a rollback. AppErrors are tagged with their code,
// and the span status only turns to Error when AppErrorStatusMapper says so.
func RecordSpanError(span oteltrace.Span, err error, attrs ...attribute.KeyValue) {
	if span == nil || err == nil || !span.IsRecording() {
		return
	}

	eventAttrs := []attribute.KeyValue{semconv.ExceptionTypeKey.String(fmt.Sprintf("%T", err))}
	var appErr *apierrors.AppError
	if errors.As(err, &appErr) && appErr != nil {
		eventAttrs = append(eventAttrs, attributes.AttrErrorCodeKey.String(appErr.Code))
	}
	span.RecordError(err, oteltrace.WithAttributes(append(eventAttrs, attrs...)...))

	if AppErrorStatusMapper(err) == codes.Error {
		span.SetStatus(codes.Error, err.Error())
	}
}
