// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package oteltext provides OpenTelemetry instrumentation for text values.
package oteltext

import (
	"context"
	"log/slog"

	"github.com/z5labs/text"
	"github.com/z5labs/text/pkg/slogfield"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/text/pkg/oteltext"

// DefaultSpanName is used when no SpanName option is given.
const DefaultSpanName = "text.AsString"

type options struct {
	tp       trace.TracerProvider
	spanName string
	log      *slog.Logger
}

// Option helps configure Trace.
type Option interface {
	applyOption(*options)
}

type optionFunc func(*options)

func (f optionFunc) applyOption(opts *options) {
	f(opts)
}

// TracerProvider sets the trace.TracerProvider used for creating spans.
// The global one is used by default.
func TracerProvider(tp trace.TracerProvider) Option {
	return optionFunc(func(o *options) {
		o.tp = tp
	})
}

// SpanName sets the name of the span started for every evaluation.
func SpanName(name string) Option {
	return optionFunc(func(o *options) {
		o.spanName = name
	})
}

// Logger registers a logger which evaluations are reported to. Failures
// are logged at error level; successes at debug level with the length
// and [text.Hash] of the produced string, never the string itself. The
// records carry the trace and span id so they can be correlated with
// the recorded span.
func Logger(log *slog.Logger) Option {
	return optionFunc(func(o *options) {
		o.log = log
	})
}

var _ text.Text = (*Tracer)(nil)

// Tracer is a text.Text which records a span every time it is evaluated.
// text.Text carries no context.Context, so every span is a root span.
type Tracer struct {
	origin   text.Text
	tracer   trace.Tracer
	spanName string
	log      *slog.Logger
}

// Trace wraps t so that every evaluation of it is recorded as a span.
// Errors from t are recorded on the span and returned unchanged.
func Trace(t text.Text, opts ...Option) *Tracer {
	o := &options{
		tp:       otel.GetTracerProvider(),
		spanName: DefaultSpanName,
	}
	for _, opt := range opts {
		opt.applyOption(o)
	}
	return &Tracer{
		origin:   t,
		tracer:   o.tp.Tracer(instrumentationName),
		spanName: o.spanName,
		log:      o.log,
	}
}

// AsString implements the text.Text interface.
func (t *Tracer) AsString() (string, error) {
	ctx, span := t.tracer.Start(context.Background(), t.spanName)
	defer span.End()

	s, err := text.Read(t.origin)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.report(ctx, span, slog.LevelError, "failed to produce text", slogfield.Error(err))
		return "", err
	}

	span.SetAttributes(attribute.Int("text.length", len(s)))
	t.report(
		ctx,
		span,
		slog.LevelDebug,
		"produced text",
		slogfield.Int("text.length", len(s)),
		slogfield.Uint64("text.hash", text.Hash(s)),
	)
	return s, nil
}

func (t *Tracer) report(ctx context.Context, span trace.Span, lvl slog.Level, msg string, attrs ...slog.Attr) {
	if t.log == nil || !t.log.Enabled(ctx, lvl) {
		return
	}

	spanCtx := span.SpanContext()
	if spanCtx.IsValid() {
		attrs = append(
			attrs,
			slog.Group(
				"otel",
				slogfield.String("trace_id", spanCtx.TraceID().String()),
				slogfield.String("span_id", spanCtx.SpanID().String()),
			),
		)
	}
	t.log.LogAttrs(ctx, lvl, msg, attrs...)
}
