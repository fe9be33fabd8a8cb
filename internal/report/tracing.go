package report

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "yqhp/reports/internal/report"

// TracingHooks 为包装报表的取数过程创建 span
type TracingHooks struct {
	Name   string
	Tracer trace.Tracer
}

// NewTracingHooks 使用全局 TracerProvider 创建回调
func NewTracingHooks(name string) *TracingHooks {
	return &TracingHooks{Name: name, Tracer: otel.Tracer(tracerName)}
}

func (h *TracingHooks) BeforeQuery(ctx context.Context, params Params) context.Context {
	attrs := make([]attribute.KeyValue, 0, len(params))
	for k, v := range params {
		attrs = append(attrs, attribute.String("report.param."+k, v))
	}
	ctx, _ = h.Tracer.Start(ctx, "report."+h.Name, trace.WithAttributes(attrs...))
	return ctx
}

func (h *TracingHooks) AfterQuery(ctx context.Context) {
	trace.SpanFromContext(ctx).End()
}
