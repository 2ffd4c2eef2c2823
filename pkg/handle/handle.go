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
	"fmt"
	"syscall"
	"unsafe"
)

var (
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procCloseHandle     = kernel32.NewProc("CloseHandle")
	procDuplicateHandle = kernel32.NewProc("DuplicateHandle")
)

// Call indirections for the native primitives. Tests swap
// them to drive the close/delete outcome deterministically.
var (
	closeHandleCall     = procCloseHandle.Call
	duplicateHandleCall = procDuplicateHandle.Call
)

// Any is the constraint satisfied by every handle kind. Each resource
// kind is declared as a distinct named uintptr type, so the compiler
// tells handle kinds apart without any runtime discriminant. The null
// token is always the single canonical invalid sentinel for the kind,
// and equality is plain address equality. A handle value never owns the
// resource it names. Ownership is tracked by whoever holds the value.
type Any interface {
	~uintptr
}

// FromRaw wraps the raw address in the typed handle value. No validation
// is performed, since native tokens are trusted once the acquisition call
// reports success.
func FromRaw[H Any](addr uintptr) H { return H(addr) }

// AsOpt collapses the null handle into the absent value for ergonomic
// chaining at call sites that treat the null token as a legitimate
// "no resource" outcome.
func AsOpt[H Any](h H) (H, bool) {
	if h == 0 {
		var zero H
		return zero, false
	}
	return h, true
}

// Format yields the hexadecimal representation of the handle value.
func Format[H Any](h H) string { return fmt.Sprintf("0x%x", uintptr(h)) }

// Closer is the capability implemented by handle kinds whose underlying
// resource is disposed through the CloseHandle API.
type Closer interface {
	Close() error
}

// Deleter is the capability implemented by GDI object kinds disposed
// through the DeleteObject API. The two closing protocols are kept
// apart because the native API defines two distinct freeing primitives
// with different failure semantics.
type Deleter interface {
	Delete() error
}

// DuplicateAccess is the enum for handle duplicate access flags.
type DuplicateAccess uint32

const (
	// ThreadQueryAccess determines that handle duplication requires the ability to query thread info.
	ThreadQueryAccess DuplicateAccess = 0x0040
	// ProcessQueryAccess determines that handle duplication requires the ability to query process info.
	ProcessQueryAccess DuplicateAccess = 0x1000
	// ReadControlAccess specifies the ability to query the security descriptor.
	ReadControlAccess DuplicateAccess = 0x00020000
	// SemaQueryAccess is the duplicate access type required for synchronization objects such as mutants.
	SemaQueryAccess DuplicateAccess = 0x0001
	// AllAccess doesn't specify the access mask.
	AllAccess DuplicateAccess = 0
)

// Handle represents the general kernel object handle.
type Handle uintptr

// Raw returns the underlying address-sized token.
func (h Handle) Raw() uintptr { return uintptr(h) }

// IsZero tells if the handle is the null sentinel.
func (h Handle) IsZero() bool { return h == 0 }

// IsValid determines if the handle instance is valid.
func (h Handle) IsValid() bool { return h != 0 && h != ^Handle(0) }

// String satisfies the fmt.Stringer interface.
func (h Handle) String() string { return Format(h) }

// Close disposes the underlying handle object. The handle value must not
// be used after this method returns. Closing the same raw token twice is
// a caller bug with the same consequences as in the native API.
func (h Handle) Close() error {
	return closeRaw(uintptr(h))
}

// Duplicate duplicates the handle from the source into the destination
// process address space with the specified access rights.
func (h Handle) Duplicate(src, dest Handle, access DuplicateAccess) (Handle, error) {
	var dup Handle
	r1, _, err := duplicateHandleCall(
		uintptr(src),
		uintptr(h),
		uintptr(dest),
		uintptr(unsafe.Pointer(&dup)),
		uintptr(access),
		0,
		0,
	)
	if r1 == 0 {
		return Handle(0), err
	}
	return dup, nil
}

// closeRaw invokes the CloseHandle primitive on the raw token. A zero
// return maps to the last-error code sampled by the syscall layer.
func closeRaw(h uintptr) error {
	r1, _, err := closeHandleCall(h)
	if r1 == 0 {
		return err
	}
	return nil
}
