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
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestStart(t *testing.T) {
	Convey("spans are no-ops without a provider", t, func() {
		ctx, span := Start(context.Background(), "store.io", "OpenFile")
		So(span, ShouldNotBeNil)
		So(span.IsRecording(), ShouldBeFalse)
		So(oteltrace.SpanFromContext(ctx).IsRecording(), ShouldBeFalse)
		span.End()

		tracer := NewTracer("trevnictl", oteltrace.SpanKindInternal)
		_, span = tracer.Start(context.Background(), "describe")
		So(span, ShouldNotBeNil)
		span.End()
	})
}
