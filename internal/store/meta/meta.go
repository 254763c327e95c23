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

// Package meta implements the string-keyed metadata attached to Trevni files
// and columns. Keys keep their insertion order, and keys under the "trevni."
// prefix are reserved for the format itself.
package meta

import (
	// standard libraries.
	"strconv"
	"strings"

	// this project.
	"github.com/linkall-labs/trevni/pkg/errors"
)

const (
	ReservedKeyPrefix = "trevni."

	CodecKey    = ReservedKeyPrefix + "codec"
	ChecksumKey = ReservedKeyPrefix + "checksum"
)

type RangeCallback func(key string, value []byte) error

type Ranger interface {
	Range(cb RangeCallback) error
}

// MetaData is an insertion-ordered map from string keys to byte values. The
// zero value is an empty MetaData ready to use.
type MetaData struct {
	keys   []string
	values map[string][]byte
}

// Make sure MetaData implements Ranger.
var _ Ranger = (*MetaData)(nil)

func New() *MetaData {
	return &MetaData{
		values: make(map[string][]byte),
	}
}

func IsReserved(key string) bool {
	return strings.HasPrefix(key, ReservedKeyPrefix)
}

func (m *MetaData) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *MetaData) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Get returns the stored value itself, not a copy.
func (m *MetaData) Get(key string) ([]byte, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MetaData) GetString(key string) (string, bool) {
	v, ok := m.values[key]
	if !ok {
		return "", false
	}
	return string(v), true
}

// GetLong parses the value of key as a decimal int64.
func (m *MetaData) GetLong(key string) (int64, error) {
	s, ok := m.GetString(key)
	if !ok {
		return 0, errors.ErrResourceNotFound.WithMessagef("metadata key %q not found", key)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.ErrMalformedValue.Wrap(err).WithMessagef("metadata key %q is not a long: %q", key, s)
	}
	return v, nil
}

// Set stores value under key. Reserved keys are rejected. A key that is
// already present keeps its position.
func (m *MetaData) Set(key string, value []byte) error {
	if IsReserved(key) {
		return errors.ErrReservedKey.WithMessagef("cannot set reserved key %q", key)
	}
	m.put(key, value)
	return nil
}

func (m *MetaData) SetString(key, value string) error {
	return m.Set(key, []byte(value))
}

// SetLong stores value in its decimal string form.
func (m *MetaData) SetLong(key string, value int64) error {
	return m.SetString(key, strconv.FormatInt(value, 10))
}

func (m *MetaData) setReserved(key string, value []byte) {
	m.put(key, value)
}

func (m *MetaData) put(key string, value []byte) {
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Range calls cb for each entry in insertion order, stopping at the first
// error.
func (m *MetaData) Range(cb RangeCallback) error {
	for _, key := range m.keys {
		if err := cb(key, m.values[key]); err != nil {
			return err
		}
	}
	return nil
}

// SetCodec records the compression codec name.
func (m *MetaData) SetCodec(name string) {
	m.setReserved(CodecKey, []byte(name))
}

func (m *MetaData) Codec() (string, bool) {
	return m.GetString(CodecKey)
}

// SetChecksum records the checksum algorithm name.
func (m *MetaData) SetChecksum(name string) {
	m.setReserved(ChecksumKey, []byte(name))
}

func (m *MetaData) Checksum() (string, bool) {
	return m.GetString(ChecksumKey)
}
