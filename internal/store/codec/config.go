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

package codec

var defaultBufferSize = 8 * 1024

const (
	// MinBufferSize is the smallest window an Input accepts; it must hold the
	// longest fixed-size or varint primitive.
	MinBufferSize = 16

	maxVarintLen32 = 5
	maxVarintLen64 = 10
)

type config struct {
	bufferSize int
}

func defaultConfig() config {
	return config{
		bufferSize: defaultBufferSize,
	}
}

type Option func(*config)

func makeConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bufferSize < MinBufferSize {
		cfg.bufferSize = MinBufferSize
	}
	return cfg
}

// WithBufferSize sets the window size used when the source is not held in
// memory. Sizes below MinBufferSize are raised to it.
func WithBufferSize(size int) Option {
	return func(cfg *config) {
		cfg.bufferSize = size
	}
}
