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

	// third-party libraries.
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	// first-party libraries.
	"github.com/linkall-labs/trevni/observability/log"

	// this project.
	"github.com/linkall-labs/trevni/internal/store/meta"
)

type metaBlock struct {
	Offset   int64          `json:"offset"`
	Next     int64          `json:"next"`
	Metadata *meta.MetaData `json:"metadata"`
}

func NewMetaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta FILE",
		Short: "decode a metadata block at an offset of a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, span := tracer.Start(context.Background(), "meta")
			defer span.End()

			cfg := mustLoadConfig(cmd)
			f, in := mustOpenInput(ctx, cmd, cfg, args[0])
			defer func() {
				_ = f.Close()
			}()

			log.Debug(ctx, "Decode metadata block.", map[string]interface{}{
				log.KeyPath:   args[0],
				log.KeyOffset: offset,
			})
			if err := in.SeekTo(offset); err != nil {
				cmdFailedf(cmd, "seek to %d failed: %s", offset, err)
			}
			m := meta.New()
			if err := meta.Read(in, m); err != nil {
				cmdFailedf(cmd, "read metadata at %d failed: %s", offset, err)
			}

			block := metaBlock{
				Offset:   offset,
				Next:     in.Tell(),
				Metadata: m,
			}
			if IsFormatJSON(cmd) {
				if err := printJSON(block); err != nil {
					cmdFailedf(cmd, "encode json failed: %s", err)
				}
				return
			}

			t := newTable()
			t.AppendRows([]table.Row{
				{"Offset", block.Offset},
				{"Next", block.Next},
				{"Entries", m.Len()},
			})
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignCenter},
				{Number: 2, Align: text.AlignLeft},
			})
			t.Render()
			printMeta("Metadata", m)
		},
	}
	cmd.Flags().Int64Var(&offset, "offset", 0, "the position of the metadata block")
	return cmd
}
