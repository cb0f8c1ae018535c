// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package oteltext

import (
	"fmt"

	"github.com/z5labs/text"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func ExampleTrace() {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	greeting := text.New(Trace(text.Of("hello"), TracerProvider(tp), SpanName("greeting")))
	fmt.Println(greeting)

	for _, span := range sr.Ended() {
		fmt.Println(span.Name())
	}
	// Output:
	// hello
	// greeting
}
