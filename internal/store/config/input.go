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

package config

import (
	// this project.
	"github.com/linkall-labs/trevni/internal/store/codec"
	"github.com/linkall-labs/trevni/internal/store/io"
	"github.com/linkall-labs/trevni/pkg/errors"
)

const (
	baseKB             = 1024
	maxInputBufferSize = 64 * baseKB * baseKB
)

type Input struct {
	BufferSize      int  `yaml:"buffer_size"`
	DirectIO        bool `yaml:"direct_io"`
	DirectBlockSize int  `yaml:"direct_block_size"`
}

func (c *Input) Validate() error {
	if c.BufferSize != 0 && c.BufferSize < codec.MinBufferSize {
		return errors.ErrConfiguration.WithMessagef("input buffer size must not less than %d bytes", codec.MinBufferSize)
	}
	if c.BufferSize > maxInputBufferSize {
		return errors.ErrConfiguration.WithMessagef("input buffer size must not more than %dMB", maxInputBufferSize/baseKB/baseKB)
	}
	if c.DirectBlockSize < 0 {
		return errors.ErrConfiguration.WithMessage("input direct block size must not be negative")
	}
	if c.DirectBlockSize != 0 && !c.DirectIO {
		return errors.ErrConfiguration.WithMessage("input direct block size requires direct_io")
	}
	return nil
}

func (c *Input) Options() (opts []codec.Option) {
	if c.BufferSize != 0 {
		opts = append(opts, codec.WithBufferSize(c.BufferSize))
	}
	return opts
}

func (c *Input) FileOptions() (opts []io.FileOption) {
	if c.DirectIO {
		opts = append(opts, io.WithDirectIO(true))
	}
	if c.DirectBlockSize != 0 {
		opts = append(opts, io.WithDirectBlockSize(c.DirectBlockSize))
	}
	return opts
}
