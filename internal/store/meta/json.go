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
	"bytes"
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"
)

type binaryValue struct {
	Base64 string `json:"base64"`
}

// MarshalJSON renders m as a JSON object in insertion order. Values that are
// valid UTF-8 become strings; others become {"base64": "..."}.
func (m *MetaData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	err := m.Range(func(key string, value []byte) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')

		var v []byte
		if utf8.Valid(value) {
			v, err = json.Marshal(string(value))
		} else {
			v, err = json.Marshal(binaryValue{Base64: base64.StdEncoding.EncodeToString(value)})
		}
		if err != nil {
			return err
		}
		buf.Write(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
