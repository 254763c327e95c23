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

package command

import (
	// standard libraries.
	"context"
	"encoding/hex"
	"unicode/utf8"

	// third-party libraries.
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	oteltrace "go.opentelemetry.io/otel/trace"

	// first-party libraries.
	"github.com/linkall-labs/trevni/observability/log"
	"github.com/linkall-labs/trevni/observability/tracing"

	// this project.
	"github.com/linkall-labs/trevni/internal/store"
	"github.com/linkall-labs/trevni/internal/store/codec"
	"github.com/linkall-labs/trevni/internal/store/io"
	"github.com/linkall-labs/trevni/internal/store/meta"
)

var tracer = tracing.NewTracer("trevnictl", oteltrace.SpanKindInternal)

func mustOpenInput(ctx context.Context, cmd *cobra.Command, cfg *store.Config, path string) (*io.File, *codec.Input) {
	f, err := io.OpenFile(ctx, path, cfg.Input.FileOptions()...)
	if err != nil {
		log.Error(ctx, "Open trevni file failed.", map[string]interface{}{
			log.KeyPath:  path,
			log.KeyError: err,
		})
		cmdFailedf(cmd, "open %s failed: %s", path, err)
	}
	return f, codec.NewInput(f, cfg.Input.Options()...)
}

func formatValue(v []byte) string {
	if utf8.Valid(v) {
		return string(v)
	}
	return "0x" + hex.EncodeToString(v)
}

func metaRows(m *meta.MetaData) []table.Row {
	rows := make([]table.Row, 0, m.Len())
	_ = m.Range(func(key string, value []byte) error {
		rows = append(rows, table.Row{key, formatValue(value)})
		return nil
	})
	return rows
}
