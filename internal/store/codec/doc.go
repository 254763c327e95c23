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

// Package codec reads and writes the primitive encodings of the Trevni
// format: zig-zag varint int/long, little-endian float/double and fixed
// integers, and length-prefixed bytes and UTF-8 strings.
//
// Input decodes from an io.Source through a bounded window that refills on
// demand and supports arbitrary seeks. When the source already holds its
// whole content in memory (io.ByteSource) the window is that memory, and no
// copy is made. Output is the matching in-memory encoder.
//
// Neither type is safe for concurrent use.
package codec
