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
	stderrors "errors"
	stdio "io"
	"strings"
	"testing"

	// third-party libraries.
	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorType(t *testing.T) {
	Convey("test error type", t, func() {
		Convey("derived errors match their sentinel", func() {
			err := ErrEndOfStream.WithMessage("need 4 bytes")
			So(Is(err, ErrEndOfStream), ShouldBeTrue)
			So(stderrors.Is(err, ErrEndOfStream), ShouldBeTrue)
			So(Is(err, ErrInvalidEncoding), ShouldBeFalse)
			So(err.Message, ShouldEqual, "need 4 bytes")
			So(ErrEndOfStream.Message, ShouldBeEmpty)
		})

		Convey("sentinels sharing a code match each other", func() {
			So(Is(ErrReservedKey.WithMessage("x"), ErrConfiguration), ShouldBeTrue)
		})

		Convey("wrap keeps the underlay error", func() {
			err := ErrEndOfStream.Wrap(stdio.ErrUnexpectedEOF).WithMessagef("at %d", 10)
			So(stderrors.Is(err, stdio.ErrUnexpectedEOF), ShouldBeTrue)
			So(Is(err, ErrEndOfStream), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "unexpected EOF")
			So(err.Error(), ShouldContainSubstring, "at 10")

			So(ErrInternal.Wrap(nil), ShouldBeNil)
			So(ErrInvalidEncoding.Wrap(ErrInvalidEncoding), ShouldEqual, ErrInvalidEncoding)
		})

		Convey("non-sentinel targets never match", func() {
			So(Is(ErrInternal, stdio.EOF), ShouldBeFalse)
			So(Is(stdio.EOF, ErrInternal), ShouldBeFalse)
		})

		Convey("json form", func() {
			err := ErrMalformedValue.WithMessage("bad")
			et, ok := Convert(err.JSON())
			So(ok, ShouldBeTrue)
			So(et.Code, ShouldEqual, CodeMalformedValue)
			So(et.Message, ShouldEqual, "bad")

			_, ok = Convert("not json")
			So(ok, ShouldBeFalse)
		})

		Convey("code names", func() {
			So(CodeEncoding.String(), ShouldEqual, "ENCODING")
			So(ErrorCode(99).String(), ShouldEqual, "ErrorCode(99)")
		})
	})
}

func TestChain(t *testing.T) {
	Convey("test chain", t, func() {
		So(Chain(), ShouldBeNil)
		So(Chain(nil, nil), ShouldBeNil)

		first := stderrors.New("first")
		So(Chain(nil, first), ShouldEqual, first)

		err := Chain(first, nil, stderrors.New("second"))
		So(strings.HasPrefix(err.Error(), "second"), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "first")
	})
}

func TestFromError(t *testing.T) {
	Convey("test from error", t, func() {
		et, ok := FromError(nil)
		So(ok, ShouldBeTrue)
		So(et, ShouldBeNil)

		var err error = ErrResourceNotFound.WithMessage("missing")
		et, ok = FromError(err)
		So(ok, ShouldBeTrue)
		So(et.Code, ShouldEqual, CodeNotFound)

		et, ok = FromError(stdio.EOF)
		So(ok, ShouldBeFalse)
		So(et.Code, ShouldEqual, CodeUnknown)
		So(et.Message, ShouldEqual, "EOF")
	})
}
