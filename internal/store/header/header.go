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

// Package header reads and writes the header at the start of a Trevni file:
// the magic, the row and column counts, the file metadata and the metadata
// of each column.
package header

import (
	// standard libraries.
	"bytes"

	// this project.
	"github.com/linkall-labs/trevni/internal/store/codec"
	"github.com/linkall-labs/trevni/internal/store/meta"
	"github.com/linkall-labs/trevni/pkg/errors"
)

var Magic = []byte{'T', 'r', 'v', 0x02}

// maxPrealloc bounds the column slice allocated from an untrusted count.
const maxPrealloc = 1024

type Header struct {
	RowCount uint64
	File     *meta.MetaData
	Columns  []*meta.MetaData
}

type Encoder interface {
	meta.Encoder
	Write(p []byte) (int, error)
	WriteFixed32(v uint32)
	WriteFixed64(v uint64)
}

type Decoder interface {
	meta.Decoder
	ReadFully(p []byte) error
	ReadFixed32() (uint32, error)
	ReadFixed64() (uint64, error)
}

// Make sure codec.Output implements Encoder, and codec.Input implements Decoder.
var (
	_ Encoder = (*codec.Output)(nil)
	_ Decoder = (*codec.Input)(nil)
)

func New(rowCount uint64, columns int) *Header {
	h := &Header{
		RowCount: rowCount,
		File:     meta.New(),
		Columns:  make([]*meta.MetaData, columns),
	}
	for i := range h.Columns {
		h.Columns[i] = meta.New()
	}
	return h
}

func Write(out Encoder, h *Header) error {
	if _, err := out.Write(Magic); err != nil {
		return err
	}
	out.WriteFixed64(h.RowCount)
	out.WriteFixed32(uint32(len(h.Columns)))
	if err := writeMeta(out, h.File); err != nil {
		return err
	}
	for _, c := range h.Columns {
		if err := writeMeta(out, c); err != nil {
			return err
		}
	}
	return nil
}

func writeMeta(out Encoder, m *meta.MetaData) error {
	if m == nil {
		m = meta.New()
	}
	return m.Write(out)
}

func Read(in Decoder) (*Header, error) {
	magic := make([]byte, len(Magic))
	if err := in.ReadFully(magic); err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, Magic) {
		return nil, errors.ErrInvalidEncoding.WithMessagef("not a trevni file: magic %x", magic)
	}

	rows, err := in.ReadFixed64()
	if err != nil {
		return nil, err
	}
	columns, err := in.ReadFixed32()
	if err != nil {
		return nil, err
	}

	h := &Header{
		RowCount: rows,
		File:     meta.New(),
	}
	if err = meta.Read(in, h.File); err != nil {
		return nil, err
	}

	prealloc := columns
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	h.Columns = make([]*meta.MetaData, 0, prealloc)
	for i := uint32(0); i < columns; i++ {
		c := meta.New()
		if err = meta.Read(in, c); err != nil {
			return nil, err
		}
		h.Columns = append(h.Columns, c)
	}
	return h, nil
}
