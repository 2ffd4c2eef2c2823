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

// Package com implements the reference-counted capability sitting
// beneath every COM object along with the guards that bind resource
// release to the owner lifetime. The native side owns the actual
// reference counter. This package solely invokes the lifecycle
// primitives at the right points and never mirrors the counter
// locally, since other non-wrapped code may also hold references.
package com

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/rabbitstack/winguard/pkg/util/hresult"
	"golang.org/x/sys/windows"
)

// comCall performs an indexed call through the interface virtual table.
// Tests swap this indirection to simulate the dispatched object.
var comCall = func(fn uintptr, args ...uintptr) uintptr {
	r0, _, _ := syscall.SyscallN(fn, args...)
	return r0
}

// vtbl lays out the three lifecycle slots every COM interface
// virtual table begins with.
type vtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// cell pins the interface pointer on the Go heap so the finalizer can
// release the last outstanding reference when the wrapper becomes
// unreachable without an explicit Release call.
type cell struct {
	ppv **vtbl
}

// Unknown wraps the pointer to the virtual-table dispatched object.
// A non-null reference always denotes a live object with at least one
// outstanding reference count owned by this value. References obey the
// apartment threading rules of the native layer. A reference created
// for one threading model must not be freely handed to an incompatible
// thread without going through the native marshaling path, which this
// package doesn't implement.
type Unknown struct {
	c *cell
}

// Null yields the null reference. It only serves as a placeholder
// until a native call materializes a live object.
func Null() Unknown { return Unknown{} }

// wrap adopts the raw interface pointer already holding one reference
// count and arms the finalizer releasing it when the wrapper is
// garbage collected before the explicit release.
func wrap(raw uintptr) Unknown {
	c := &cell{ppv: (**vtbl)(unsafe.Pointer(raw))}
	runtime.SetFinalizer(c, func(c *cell) {
		if c.ppv != nil {
			comCall((*c.ppv).Release, uintptr(unsafe.Pointer(c.ppv)))
			c.ppv = nil
		}
	})
	return Unknown{c: c}
}

// IsNil tells if the reference points to the null object.
func (u Unknown) IsNil() bool { return u.c == nil || u.c.ppv == nil }

// Ptr returns the raw interface pointer. The pointer remains owned by
// the reference and must not outlive it.
func (u Unknown) Ptr() uintptr {
	if u.IsNil() {
		return 0
	}
	return uintptr(unsafe.Pointer(u.c.ppv))
}

// String satisfies the fmt.Stringer interface.
func (u Unknown) String() string {
	if u.IsNil() {
		return "null"
	}
	return fmt.Sprintf("0x%x", u.Ptr())
}

func (u Unknown) vt() *vtbl { return *u.c.ppv }

// AddRef increments the native reference count on the object. The
// returned count is informational only.
func (u Unknown) AddRef() uint32 {
	return uint32(comCall(u.vt().AddRef, u.Ptr()))
}

// Release decrements the native reference count by exactly one and
// consumes the reference. After the count reaches zero the object is
// destroyed, so the wrapper disarms itself and no further operations
// are dispatched through it. The returned count is informational only.
func (u Unknown) Release() uint32 {
	if u.IsNil() {
		return 0
	}
	n := uint32(comCall(u.vt().Release, u.Ptr()))
	runtime.SetFinalizer(u.c, nil)
	u.c.ppv = nil
	return n
}

// Clone produces a new reference to the same object, incrementing the
// native reference count so that both values release independently.
// Plain struct copies share the single owned count and must not be
// released twice.
func (u Unknown) Clone() Unknown {
	if u.IsNil() {
		return Unknown{}
	}
	u.AddRef()
	return wrap(u.Ptr())
}

// QueryInterface asks the object whether it supports the interface
// identified by iid and, when it does, returns the new reference to it.
// The native side increments the reference count on success.
func (u Unknown) QueryInterface(iid *windows.GUID) (Unknown, error) {
	if u.IsNil() {
		return Unknown{}, hresult.Pointer
	}
	var out uintptr
	hr := hresult.HRESULT(
		comCall(u.vt().QueryInterface, u.Ptr(), uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&out))),
	)
	if err := hr.Err(); err != nil {
		return Unknown{}, err
	}
	return wrap(out), nil
}
