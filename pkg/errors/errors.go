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

package errors

var (
	// UNKNOWN
	ErrUnknown = New("unknown").WithCode(CodeUnknown)

	// INTERNAL
	ErrInternal = New("internal error").WithCode(CodeInternal)

	// INVALID_ARGUMENT
	ErrInvalidArgument = New("invalid argument").WithCode(CodeInvalidArgument)

	// ENCODING
	ErrInvalidEncoding = New("invalid encoding").WithCode(CodeEncoding)

	// END_OF_STREAM
	ErrEndOfStream = New("end of stream").WithCode(CodeEndOfStream)

	// CONFIGURATION
	ErrConfiguration = New("configuration error").WithCode(CodeConfiguration)
	ErrReservedKey   = New("reserved key").WithCode(CodeConfiguration)

	// MALFORMED_VALUE
	ErrMalformedValue = New("malformed value").WithCode(CodeMalformedValue)

	// NOT_FOUND
	ErrResourceNotFound = New("resource not found").WithCode(CodeNotFound)

	// OFFSET_OVERFLOW
	ErrOffsetOverflow = New("the offset overflow").WithCode(CodeOffsetOverflow)
)
