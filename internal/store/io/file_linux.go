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

//go:build linux
// +build linux

package io

import (
	// standard libraries.
	stderrors "errors"
	"os"
	"syscall"
)

const openFileFlag = os.O_RDONLY | syscall.O_NOATIME

func openFile(path string, direct bool) (*os.File, error) {
	f, err := doOpenFile(path, openFileFlag, direct)
	// O_NOATIME is only permitted to the owner of the file.
	if stderrors.Is(err, syscall.EPERM) {
		return doOpenFile(path, os.O_RDONLY, direct)
	}
	return f, err
}
