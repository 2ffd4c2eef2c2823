//go:build windows
// +build windows

/*
 * Copyright 2022-2023 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package handle

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestDeleteObject(t *testing.T) {
	var tests = []struct {
		name     string
		ret      uintptr
		lastErr  syscall.Errno
		expected error
	}{
		{"nonzero return is success", 1, 0, nil},
		{"zero return with success code is success", 0, 0, nil},
		{"zero return with failure code is failure", 0, syscall.Errno(windows.ERROR_INVALID_PARAMETER), syscall.Errno(windows.ERROR_INVALID_PARAMETER)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleteObjectCall = func(args ...uintptr) (uintptr, uintptr, error) {
				return tt.ret, 0, tt.lastErr
			}
			defer func() { deleteObjectCall = procDeleteObject.Call }()

			err := Hbitmap(0xbeef).Delete()
			if tt.expected == nil {
				require.NoError(t, err)
			} else {
				require.Equal(t, tt.expected, err)
			}
		})
	}
}

func TestDeleteObjectFiresOncePerKind(t *testing.T) {
	var ncalls int
	deleteObjectCall = func(args ...uintptr) (uintptr, uintptr, error) {
		ncalls++
		return 1, 0, syscall.Errno(0)
	}
	defer func() { deleteObjectCall = procDeleteObject.Call }()

	require.NoError(t, Hbrush(0x10).Delete())
	require.NoError(t, Hpen(0x20).Delete())
	require.NoError(t, Hfont(0x30).Delete())
	assert.Equal(t, 3, ncalls)
}

func TestGdiKindsImplementDeleter(t *testing.T) {
	for _, d := range []Deleter{Hbitmap(1), Hbrush(2), Hpen(3), Hfont(4)} {
		assert.NotNil(t, d)
	}
}
