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
	"context"
	stdio "io"
	"os"

	// third-party libraries.
	"github.com/ncw/directio"

	// first-party libraries.
	"github.com/linkall-labs/trevni/observability/log"
	"github.com/linkall-labs/trevni/observability/tracing"

	// this project.
	"github.com/linkall-labs/trevni/pkg/errors"
)

const (
	defaultDirectBlockSize = 16 * directio.BlockSize // 64KB
)

type fileConfig struct {
	direct          bool
	directBlockSize int
}

type FileOption func(*fileConfig)

func makeFileConfig(opts ...FileOption) fileConfig {
	cfg := fileConfig{
		directBlockSize: defaultDirectBlockSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDirectIO opens the file with O_DIRECT, bypassing the page cache.
// Reads are then served through an aligned block.
func WithDirectIO(direct bool) FileOption {
	return func(cfg *fileConfig) {
		cfg.direct = direct
	}
}

// WithDirectBlockSize sets the aligned block size used in direct mode. It is
// rounded up to a multiple of directio.BlockSize.
func WithDirectBlockSize(size int) FileOption {
	return func(cfg *fileConfig) {
		if size <= 0 {
			return
		}
		cfg.directBlockSize = (size + directio.BlockSize - 1) / directio.BlockSize * directio.BlockSize
	}
}

// File is a file-backed Source. It reads with positional I/O, so the
// descriptor's own offset is never used.
type File struct {
	f    *os.File
	path string
	size int64
	pos  int64

	direct   bool
	block    []byte
	blockOff int64
	blockLen int
}

// Make sure File implements Source.
var _ Source = (*File)(nil)

func OpenFile(ctx context.Context, path string, opts ...FileOption) (*File, error) {
	ctx, span := tracing.Start(ctx, "store.io", "OpenFile")
	defer span.End()

	cfg := makeFileConfig(opts...)

	f, err := openFile(path, cfg.direct)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		if err2 := f.Close(); err2 != nil {
			return nil, errors.Chain(err, err2)
		}
		return nil, err
	}

	file := &File{
		f:        f,
		path:     path,
		size:     fi.Size(),
		direct:   cfg.direct,
		blockOff: -1,
	}
	if cfg.direct {
		file.block = directio.AlignedBlock(cfg.directBlockSize)
	}

	log.Debug(ctx, "Open file source.", map[string]interface{}{
		log.KeyPath:     path,
		log.KeyLength:   file.size,
		log.KeyDirectIO: cfg.direct,
	})

	return file, nil
}

func doOpenFile(path string, flag int, direct bool) (*os.File, error) {
	if direct {
		return directio.OpenFile(path, flag, 0)
	}
	return os.OpenFile(path, flag, 0)
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Length() int64 {
	return f.size
}

func (f *File) Read(p []byte) (int, error) {
	if f.pos >= f.size {
		return 0, stdio.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if f.direct {
		return f.readDirect(p)
	}
	if rest := f.size - f.pos; int64(len(p)) > rest {
		p = p[:rest]
	}
	n, err := f.f.ReadAt(p, f.pos)
	f.pos += int64(n)
	if err == stdio.EOF && n > 0 { //nolint:errorlint // io.EOF is not an error.
		err = nil
	}
	return n, err
}

func (f *File) readDirect(p []byte) (int, error) {
	aligned := f.pos - f.pos%int64(len(f.block))
	if aligned != f.blockOff {
		n, err := f.f.ReadAt(f.block, aligned)
		if err != nil && err != stdio.EOF { //nolint:errorlint // io.EOF is not an error.
			f.blockOff = -1
			return 0, err
		}
		f.blockOff = aligned
		f.blockLen = n
	}

	skip := int(f.pos - aligned)
	if skip >= f.blockLen {
		return 0, stdio.EOF
	}
	n := copy(p, f.block[skip:f.blockLen])
	f.pos += int64(n)
	return n, nil
}

func (f *File) ReadFull(p []byte) error {
	return readFull(f, p)
}

func (f *File) SeekTo(pos int64) error {
	if err := checkSeek(pos, f.size); err != nil {
		return err
	}
	f.pos = pos
	return nil
}

func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	if err := f.f.Close(); err != nil {
		return err
	}
	f.f = nil
	return nil
}
