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

package store

import (
	// standard libraries.
	"context"

	// first-party libraries.
	"github.com/linkall-labs/trevni/observability/log"

	// this project.
	"github.com/linkall-labs/trevni/internal/primitive"
	"github.com/linkall-labs/trevni/internal/store/config"
)

type Config struct {
	Input config.Input `yaml:"input"`
	Log   config.Log   `yaml:"log"`
}

func (c *Config) Validate() error {
	if err := c.Input.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// InitConfig loads and validates the configuration in filename. An empty
// filename yields the defaults.
func InitConfig(filename string) (*Config, error) {
	c := new(Config)
	if filename != "" {
		if err := primitive.LoadConfig(filename, c); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Log.Level != "" {
		log.SetLogLevel(c.Log.Level)
	}
	log.Debug(context.Background(), "Load configuration.", map[string]interface{}{
		log.KeyConfigFile: filename,
		log.KeyBufferSize: c.Input.BufferSize,
		log.KeyDirectIO:   c.Input.DirectIO,
	})
	return c, nil
}
