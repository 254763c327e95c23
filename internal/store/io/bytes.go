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
)

// ByteArray is an in-memory ByteSource.
type ByteArray struct {
	buf []byte
	pos int64
}

// Make sure ByteArray implements ByteSource.
var _ ByteSource = (*ByteArray)(nil)

func NewByteArray(b []byte) *ByteArray {
	return &ByteArray{buf: b}
}

func (a *ByteArray) Bytes() []byte {
	return a.buf
}

func (a *ByteArray) Length() int64 {
	return int64(len(a.buf))
}

func (a *ByteArray) Read(p []byte) (int, error) {
	if a.pos >= int64(len(a.buf)) {
		return 0, stdio.EOF
	}
	n := copy(p, a.buf[a.pos:])
	a.pos += int64(n)
	return n, nil
}

func (a *ByteArray) ReadFull(p []byte) error {
	return readFull(a, p)
}

func (a *ByteArray) SeekTo(pos int64) error {
	if err := checkSeek(pos, a.Length()); err != nil {
		return err
	}
	a.pos = pos
	return nil
}
