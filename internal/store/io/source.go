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

package io

import (
	// standard libraries.
	stdio "io"

	// this project.
	"github.com/linkall-labs/trevni/pkg/errors"
)

// Source is a finite, random-access byte range.
//
// Read may return fewer bytes than requested; a zero-length read, with or
// without io.EOF, means the source is exhausted. ReadFull either fills p or
// fails with errors.ErrEndOfStream. SeekTo takes an absolute position.
type Source interface {
	Length() int64
	Read(p []byte) (int, error)
	ReadFull(p []byte) error
	SeekTo(pos int64) error
}

// ByteSource is a Source whose whole content is already one contiguous slice.
// Readers may adopt the slice as their buffer instead of copying from it, so
// callers must not modify it while it is being read.
type ByteSource interface {
	Source
	Bytes() []byte
}

func readFull(r stdio.Reader, p []byte) error {
	n := 0
	for n < len(p) {
		m, err := r.Read(p[n:])
		n += m
		if err != nil && err != stdio.EOF { //nolint:errorlint // io.EOF is not an error.
			return err
		}
		if m == 0 {
			break
		}
	}
	if n < len(p) {
		return errors.ErrEndOfStream.Wrap(stdio.ErrUnexpectedEOF).
			WithMessagef("need %d bytes, only %d available", len(p), n)
	}
	return nil
}

func checkSeek(pos, length int64) error {
	if pos < 0 || pos > length {
		return errors.ErrOffsetOverflow.WithMessagef("seek to %d, source length is %d", pos, length)
	}
	return nil
}
