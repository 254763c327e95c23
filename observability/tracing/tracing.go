// Copyright 2023 Linkall Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tracing

import (
	// standard libraries.
	"context"
	"strings"

	// third-party libraries.
	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Start opens a span named pkgName/methodName on the global tracer provider,
// which is a no-op until the embedding application installs one.
func Start(ctx context.Context, pkgName, methodName string) (context.Context, oteltrace.Span) {
	return otel.Tracer(pkgName).Start(ctx, strings.Join([]string{pkgName, methodName}, "/"),
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal))
}

type Tracer struct {
	kind       oteltrace.SpanKind
	moduleName string
}

func NewTracer(moduleName string, kind oteltrace.SpanKind) *Tracer {
	return &Tracer{
		kind:       kind,
		moduleName: moduleName,
	}
}

func (t *Tracer) Start(ctx context.Context, methodName string,
	opts ...oteltrace.SpanStartOption,
) (context.Context, oteltrace.Span) {
	return otel.Tracer(t.moduleName).Start(ctx, strings.Join([]string{t.moduleName, methodName}, "/"),
		append(opts, oteltrace.WithSpanKind(t.kind))...)
}
