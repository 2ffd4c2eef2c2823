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

package com

import (
	"unsafe"

	"github.com/rabbitstack/winguard/pkg/errors"
	"github.com/rabbitstack/winguard/pkg/sys"
	"golang.org/x/sys/windows"
)

var (
	sysAllocString   = sys.SysAllocString
	sysReAllocString = sys.SysReAllocString
	sysFreeString    = sys.SysFreeString
	sysStringLen     = sys.SysStringLen
)

// BStr owns the length-prefixed wide string allocated by the OLE
// automation layer. Automation method arguments and results travel in
// this representation.
type BStr struct {
	p uintptr
}

// NewBStr allocates the automation string with the contents of s. The
// null allocation maps to the out of memory error and no guard is
// materialized.
func NewBStr(s string) (*BStr, error) {
	w, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, err
	}
	p := sysAllocString(w)
	if p == 0 {
		return nil, errors.ErrOutOfMemory
	}
	return &BStr{p: p}, nil
}

// Len returns the number of wide characters in the string, not
// counting the terminating null character.
func (b *BStr) Len() uint32 { return sysStringLen(b.p) }

// String decodes the automation string into the native Go string.
func (b *BStr) String() string {
	if b.p == 0 {
		return ""
	}
	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(b.p)))
}

// Realloc replaces the owned string contents with s, reusing the
// underlying allocation when possible. On the out of memory condition
// the original string remains valid and owned.
func (b *BStr) Realloc(s string) error {
	w, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return err
	}
	if sysReAllocString(&b.p, w) == 0 {
		return errors.ErrOutOfMemory
	}
	return nil
}

// Ptr returns the raw automation string pointer for passing to native
// calls. The pointer remains owned by the guard.
func (b *BStr) Ptr() *uint16 { return (*uint16)(unsafe.Pointer(b.p)) }

// Free returns the string to the automation allocator. Subsequent
// invocations are no-ops.
func (b *BStr) Free() {
	if b.p == 0 {
		return
	}
	sysFreeString(b.p)
	b.p = 0
}
