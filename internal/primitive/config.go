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

package primitive

import (
	// standard libraries.
	"os"

	// third-party libraries.
	"gopkg.in/yaml.v3"

	// this project.
	"github.com/linkall-labs/trevni/pkg/errors"
)

// LoadConfig reads a YAML file into config, expanding ${VAR} references from
// the environment first.
func LoadConfig(filename string, config interface{}) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.ErrConfiguration.Wrap(err).WithMessagef("read config file %s", filename)
	}
	str := os.ExpandEnv(string(b))
	if err = yaml.Unmarshal([]byte(str), config); err != nil {
		return errors.ErrConfiguration.Wrap(err).WithMessagef("parse config file %s", filename)
	}
	return nil
}
