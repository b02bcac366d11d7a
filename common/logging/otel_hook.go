package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"
)

const hookScope = "github.com/narender/store-manager/common/logging"

// OtelHook adds trace/span ids to logrus entries and forwards them to the
// global OTel LoggerProvider.
type OtelHook struct {
	provider func() log.LoggerProvider
}

func NewOtelHook() *OtelHook {
	return &OtelHook{provider: global.GetLoggerProvider}
}

func (h *OtelHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *OtelHook) Fire(entry *logrus.Entry) error {
	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		entry.Data["trace_id"] = spanCtx.TraceID().String()
		entry.Data["span_id"] = spanCtx.SpanID().String()
	}

	record := log.Record{}
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(mapLogLevel(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(log.StringValue(entry.Message))

	for k, v := range entry.Data {
		record.AddAttributes(toKeyValue(k, v))
	}

	h.provider().Logger(hookScope).Emit(ctx, record)
	return nil
}

func toKeyValue(k string, v any) log.KeyValue {
	switch val := v.(type) {
	case string:
		return log.String(k, val)
	case int:
		return log.Int(k, val)
	case int64:
		return log.Int64(k, val)
	case float64:
		return log.Float64(k, val)
	case bool:
		return log.Bool(k, val)
	case error:
		return log.String(k, val.Error())
	default:
		return log.String(k, fmt.Sprintf("%+v", val))
	}
}

func mapLogLevel(level logrus.Level) log.Severity {
	switch level {
	case logrus.TraceLevel:
		return log.SeverityTrace
	case logrus.DebugLevel:
		return log.SeverityDebug
	case logrus.InfoLevel:
		return log.SeverityInfo
	case logrus.WarnLevel:
		return log.SeverityWarn
	case logrus.ErrorLevel:
		return log.SeverityError
	case logrus.FatalLevel, logrus.PanicLevel:
		return log.SeverityFatal
	default:
		return log.SeverityInfo
	}
}
