package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "leetmentor/services"

func traceGenerate(
	ctx context.Context,
	model string,
	operation string,
	attempt int,
	fn func(context.Context) (string, error),
) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "gemini."+operation, trace.WithAttributes(
		attribute.String("gemini.model", model),
		attribute.Int("gemini.attempt", attempt),
	))
	defer span.End()

	text, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("gemini.quota_exhausted", IsQuotaExhausted(err)))
		return "", err
	}

	span.SetAttributes(attribute.Int("gemini.response_chars", len(text)))
	return text, nil
}
