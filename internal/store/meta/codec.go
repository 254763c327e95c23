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

package meta

import (
	// standard libraries.
	"math"

	// this project.
	"github.com/linkall-labs/trevni/internal/store/codec"
	"github.com/linkall-labs/trevni/pkg/errors"
)

type Encoder interface {
	WriteInt(v int32)
	WriteString(s string)
	WriteBytes(b []byte)
}

type Decoder interface {
	ReadInt() (int32, error)
	ReadString() (string, error)
	ReadBytes() ([]byte, error)
}

// Make sure codec.Output implements Encoder, and codec.Input implements Decoder.
var (
	_ Encoder = (*codec.Output)(nil)
	_ Decoder = (*codec.Input)(nil)
)

// Write encodes m as an entry count followed by (string key, bytes value)
// pairs in insertion order.
func (m *MetaData) Write(out Encoder) error {
	if len(m.keys) > math.MaxInt32 {
		return errors.ErrInvalidArgument.WithMessagef("too many metadata entries: %d", len(m.keys))
	}
	out.WriteInt(int32(len(m.keys)))
	for _, key := range m.keys {
		out.WriteString(key)
		out.WriteBytes(m.values[key])
	}
	return nil
}

// Read decodes entries written by Write into into. Entries are inserted
// without the reserved-key check, since reserved keys are written by the
// format itself.
func Read(in Decoder, into *MetaData) error {
	n, err := in.ReadInt()
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.ErrInvalidEncoding.WithMessagef("negative metadata entry count %d", n)
	}
	for i := int32(0); i < n; i++ {
		key, err := in.ReadString()
		if err != nil {
			return err
		}
		value, err := in.ReadBytes()
		if err != nil {
			return err
		}
		into.put(key, value)
	}
	return nil
}
