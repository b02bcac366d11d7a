package trace

import (
	"context"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	"github.com/narender/store-manager/common/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/narender/store-manager"

func DefaultStatusMapper(err error) codes.Code {
	if err == nil {
		return codes.Ok
	}

	return codes.Error
}

type StatusMapperFunc func(error) codes.Code

// StartSpan begins a new OTel span, inferring the operation name from the caller.
func StartSpan(ctx context.Context, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	operationName := utils.GetCallerFunctionName(3)
	tracer := otel.Tracer(tracerName)

	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(semconv.CodeFunctionKey.String(operationName)),
		trace.WithAttributes(semconv.CodeNamespaceKey.String(tracerName)),
	}
	if len(initialAttrs) > 0 {
		opts = append(opts, trace.WithAttributes(initialAttrs...))
	}

	return tracer.Start(ctx, operationName, opts...)
}

// EndSpan concludes the given span, recording the error pointed to by errPtr
// and setting the span status.
func EndSpan(span trace.Span, errPtr *error, statusMapper StatusMapperFunc, options ...trace.SpanEndOption) {
	defer span.End(options...)

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	err := *errPtr
	span.RecordError(err, trace.WithStackTrace(true))

	mapper := statusMapper
	if mapper == nil {
		mapper = DefaultStatusMapper
	}
	statusCode := mapper(err)

	statusMsg := ""
	if statusCode == codes.Error {
		statusMsg = err.Error()
	}

	span.SetStatus(statusCode, statusMsg)
}

// AppErrorStatusMapper leaves the status unset for business rule violations,
// which are expected outcomes, and marks everything else as an error.
func AppErrorStatusMapper(err error) codes.Code {
	if apierrors.IsBusiness(err) {
		return codes.Unset
	}
	return DefaultStatusMapper(err)
}

// EndAppSpan is EndSpan for operations returning *apierrors.AppError.
func EndAppSpan(span trace.Span, appErr *apierrors.AppError) {
	var err error
	if appErr != nil {
		err = appErr
		span.SetAttributes(attributes.AttrErrorCodeKey.String(appErr.Code))
	}
	EndSpan(span, &err, AppErrorStatusMapper)
}
