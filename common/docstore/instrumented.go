package docstore

import (
	"context"
	"errors"
	"log/slog"

	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// instrumentedStore wraps a backend with a span, operation metrics and debug
// logging per call.
type instrumentedStore struct {
	next    Store
	backend string
	logger  *slog.Logger
}

// Instrument decorates store with tracing, metrics and logging.
func Instrument(store Store, backend string, logger *slog.Logger) Store {
	return &instrumentedStore{next: store, backend: backend, logger: logger}
}

// storeStatus keeps expected outcomes (refused decrement, unknown id) from
// marking the span as failed.
func storeStatus(err error) codes.Code {
	switch {
	case err == nil:
		return codes.Ok
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrBelowZero):
		return codes.Unset
	default:
		return codes.Error
	}
}

func (s *instrumentedStore) attrs(collection string, extra ...attribute.KeyValue) []attribute.KeyValue {
	return append([]attribute.KeyValue{
		semconv.DBSystemKey.String(s.backend),
		attributes.AttrDBCollectionKey.String(collection),
	}, extra...)
}

func (s *instrumentedStore) done(ctx context.Context, op, collection string, mc commonmetric.MetricsController, err *error) {
	mc.End(ctx, err, attribute.String("db.system", s.backend))
	if *err != nil && storeStatus(*err) == codes.Error {
		s.logger.ErrorContext(ctx, "Store operation failed",
			slog.String("operation", op),
			slog.String("collection", collection),
			slog.String("backend", s.backend),
			slog.Any("error", *err),
		)
	}
}

func (s *instrumentedStore) FindByID(ctx context.Context, collection, id string, dest any) (found bool, err error) {
	ctx, span := commontrace.StartSpan(ctx, s.attrs(collection, attributes.AttrDBDocumentIDKey.String(id))...)
	defer commontrace.EndSpan(span, &err, storeStatus)
	defer s.done(ctx, "FindByID", collection, commonmetric.StartMetricsTimer("store", "FindByID"), &err)

	found, err = s.next.FindByID(ctx, collection, id, dest)
	s.logger.DebugContext(ctx, "Store lookup by id",
		slog.String("collection", collection), slog.String("id", id), slog.Bool("found", found))
	return found, err
}

func (s *instrumentedStore) FindOne(ctx context.Context, collection, field string, value any, dest any) (found bool, err error) {
	ctx, span := commontrace.StartSpan(ctx, s.attrs(collection, attribute.String("db.filter.field", field))...)
	defer commontrace.EndSpan(span, &err, storeStatus)
	defer s.done(ctx, "FindOne", collection, commonmetric.StartMetricsTimer("store", "FindOne"), &err)

	return s.next.FindOne(ctx, collection, field, value, dest)
}

func (s *instrumentedStore) FindAll(ctx context.Context, collection string, dest any) (err error) {
	ctx, span := commontrace.StartSpan(ctx, s.attrs(collection)...)
	defer commontrace.EndSpan(span, &err, storeStatus)
	defer s.done(ctx, "FindAll", collection, commonmetric.StartMetricsTimer("store", "FindAll"), &err)

	return s.next.FindAll(ctx, collection, dest)
}

func (s *instrumentedStore) Insert(ctx context.Context, collection string, doc any) (id string, err error) {
	ctx, span := commontrace.StartSpan(ctx, s.attrs(collection)...)
	defer commontrace.EndSpan(span, &err, storeStatus)
	defer s.done(ctx, "Insert", collection, commonmetric.StartMetricsTimer("store", "Insert"), &err)

	id, err = s.next.Insert(ctx, collection, doc)
	if err == nil {
		span.SetAttributes(attributes.AttrDBDocumentIDKey.String(id))
		s.logger.DebugContext(ctx, "Store insert", slog.String("collection", collection), slog.String("id", id))
	}
	return id, err
}

func (s *instrumentedStore) UpdateByID(ctx context.Context, collection, id string, patch map[string]any) (found bool, err error) {
	ctx, span := commontrace.StartSpan(ctx, s.attrs(collection, attributes.AttrDBDocumentIDKey.String(id))...)
	defer commontrace.EndSpan(span, &err, storeStatus)
	defer s.done(ctx, "UpdateByID", collection, commonmetric.StartMetricsTimer("store", "UpdateByID"), &err)

	return s.next.UpdateByID(ctx, collection, id, patch)
}

func (s *instrumentedStore) DeleteByID(ctx context.Context, collection, id string) (found bool, err error) {
	ctx, span := commontrace.StartSpan(ctx, s.attrs(collection, attributes.AttrDBDocumentIDKey.String(id))...)
	defer commontrace.EndSpan(span, &err, storeStatus)
	defer s.done(ctx, "DeleteByID", collection, commonmetric.StartMetricsTimer("store", "DeleteByID"), &err)

	return s.next.DeleteByID(ctx, collection, id)
}

func (s *instrumentedStore) Increment(ctx context.Context, collection, id, field string, delta int) (value int, err error) {
	ctx, span := commontrace.StartSpan(ctx, s.attrs(collection,
		attributes.AttrDBDocumentIDKey.String(id),
		attribute.String("db.field", field),
		attributes.AttrStockDeltaKey.Int(delta),
	)...)
	defer commontrace.EndSpan(span, &err, storeStatus)
	defer s.done(ctx, "Increment", collection, commonmetric.StartMetricsTimer("store", "Increment"), &err)

	value, err = s.next.Increment(ctx, collection, id, field, delta)
	if err == nil {
		span.SetAttributes(attributes.AttrProductNewStockKey.Int(value))
	}
	return value, err
}

func (s *instrumentedStore) Ping(ctx context.Context) (err error) {
	ctx, span := commontrace.StartSpan(ctx, semconv.DBSystemKey.String(s.backend))
	defer commontrace.EndSpan(span, &err, nil)

	return s.next.Ping(ctx)
}

func (s *instrumentedStore) Close(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Closing document store", slog.String("backend", s.backend))
	return s.next.Close(ctx)
}
