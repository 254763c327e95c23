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
	"fmt"

	// third-party libraries.
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	// this project.
	"github.com/linkall-labs/trevni/internal/store/header"
	"github.com/linkall-labs/trevni/internal/store/meta"
)

type fileInfo struct {
	Path           string           `json:"path"`
	Length         int64            `json:"length"`
	Rows           uint64           `json:"rows"`
	Columns        int              `json:"columns"`
	HeaderLength   int64            `json:"header_length"`
	Metadata       *meta.MetaData   `json:"metadata"`
	ColumnMetadata []*meta.MetaData `json:"column_metadata,omitempty"`
}

func NewDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "print the header and metadata of a trevni file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, span := tracer.Start(context.Background(), "describe")
			defer span.End()

			cfg := mustLoadConfig(cmd)
			f, in := mustOpenInput(ctx, cmd, cfg, args[0])
			defer func() {
				_ = f.Close()
			}()

			h, err := header.Read(in)
			if err != nil {
				cmdFailedf(cmd, "read header of %s failed: %s", args[0], err)
			}

			info := fileInfo{
				Path:         f.Path(),
				Length:       in.Length(),
				Rows:         h.RowCount,
				Columns:      len(h.Columns),
				HeaderLength: in.Tell(),
				Metadata:     h.File,
			}
			if showColumns {
				info.ColumnMetadata = h.Columns
			}

			if IsFormatJSON(cmd) {
				if err = printJSON(info); err != nil {
					cmdFailedf(cmd, "encode json failed: %s", err)
				}
				return
			}
			printFileInfo(info)
		},
	}
	cmd.Flags().BoolVar(&showColumns, "columns", false, "also print the metadata of each column")
	return cmd
}

func printFileInfo(info fileInfo) {
	t := newTable()
	t.AppendRows([]table.Row{
		{"Path", info.Path},
		{"Length", info.Length},
		{"Rows", info.Rows},
		{"Columns", info.Columns},
		{"Header Length", info.HeaderLength},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft},
	})
	t.Render()

	printMeta("File Metadata", info.Metadata)
	for i, c := range info.ColumnMetadata {
		printMeta(fmt.Sprintf("Column %d Metadata", i), c)
	}
}

func printMeta(title string, m *meta.MetaData) {
	t := newTable()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Key", "Value"})
	t.AppendRows(metaRows(m))
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, VAlign: text.VAlignMiddle, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, VAlign: text.VAlignMiddle, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
	})
	t.Render()
}
