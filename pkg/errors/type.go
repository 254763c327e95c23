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

import (
	// standard libraries.
	"encoding/json"
	"fmt"
)

type ErrorCode int32

const (
	CodeUnknown ErrorCode = iota
	CodeInternal
	CodeInvalidArgument
	CodeEncoding
	CodeEndOfStream
	CodeConfiguration
	CodeMalformedValue
	CodeNotFound
	CodeOffsetOverflow
)

var codeNames = map[ErrorCode]string{
	CodeUnknown:         "UNKNOWN",
	CodeInternal:        "INTERNAL",
	CodeInvalidArgument: "INVALID_ARGUMENT",
	CodeEncoding:        "ENCODING",
	CodeEndOfStream:     "END_OF_STREAM",
	CodeConfiguration:   "CONFIGURATION",
	CodeMalformedValue:  "MALFORMED_VALUE",
	CodeNotFound:        "NOT_FOUND",
	CodeOffsetOverflow:  "OFFSET_OVERFLOW",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int32(c))
}

func New(desc string) *ErrorType {
	return &ErrorType{
		Description: desc,
	}
}

func Convert(str string) (*ErrorType, bool) {
	et := &ErrorType{}
	if err := json.Unmarshal([]byte(str), et); err != nil {
		return nil, false
	}
	return et, true
}

type ErrorType struct {
	Description    string    `json:"description"`
	Message        string    `json:"message"`
	Code           ErrorCode `json:"code"`
	underlayErrors []error
}

func (e *ErrorType) WithCode(c ErrorCode) *ErrorType {
	_e := e.copy()
	_e.Code = c
	return _e
}

// WithMessage add additional message to explain what try to do cause this error.
func (e *ErrorType) WithMessage(str string) *ErrorType {
	_e := e.copy()
	_e.Message = str
	return _e
}

// WithMessagef is WithMessage with a format string.
func (e *ErrorType) WithMessagef(format string, args ...interface{}) *ErrorType {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// Wrap the other error as the underlay errors of this error. sometimes we return an error because
// of another error(named underlay error). So, we should add the underlay error to this error's context.
func (e *ErrorType) Wrap(err error) *ErrorType {
	if err == nil || err.Error() == "" {
		return nil
	}
	if v, ok := err.(*ErrorType); ok { //nolint:errorlint // only merge direct ErrorType.
		if v.Code == e.Code && v.Message == "" {
			return e
		}
	}
	_e := e.copy()
	_e.underlayErrors = append(_e.underlayErrors, err)
	return _e
}

// Is reports whether target is an ErrorType with the same code, so copies made by
// WithMessage or Wrap still match the sentinel they were derived from.
func (e *ErrorType) Is(target error) bool {
	t, ok := target.(*ErrorType) //nolint:errorlint // comparing sentinel.
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *ErrorType) Unwrap() []error {
	return e.underlayErrors
}

func (e *ErrorType) JSON() string {
	data, _ := json.Marshal(e)
	return string(data)
}

func (e *ErrorType) copy() *ErrorType {
	errs := make([]error, len(e.underlayErrors))
	copy(errs, e.underlayErrors)
	return &ErrorType{
		Description:    e.Description,
		Message:        e.Message,
		Code:           e.Code,
		underlayErrors: errs,
	}
}

// Error return readable error message by JSON format
func (e ErrorType) Error() string {
	str := fmt.Sprintf("{\"description\": \"%s\",\"code\":%d", e.Description, e.Code)
	if e.Message != "" {
		str = fmt.Sprintf("%s, \"message\": \"%s\"", str, e.Message)
	}

	for idx := range e.underlayErrors {
		v := e.underlayErrors[idx]
		switch v.(type) {
		case *ErrorType:
			str = fmt.Sprintf("%s, \"description %d\": %s", str, idx, e.underlayErrors[idx])
		default:
			str = fmt.Sprintf("%s, \"description %d\": \"%s\"", str, idx, e.underlayErrors[idx])
		}
	}

	return str + "}"
}
