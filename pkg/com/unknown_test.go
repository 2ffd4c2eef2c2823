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
	"runtime"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vtable slot sentinels recognized by the fake dispatcher
const (
	fnQueryInterface uintptr = 0xa1
	fnAddRef         uintptr = 0xa2
	fnRelease        uintptr = 0xa3
)

// fakeObject simulates the reference-counted COM object. The dispatcher
// interprets the sentinel slots and maintains the counter the way the
// native layer would.
type fakeObject struct {
	vt        *vtbl
	refs      int
	destroyed bool
}

func newFakeObject() *fakeObject {
	return &fakeObject{vt: &vtbl{QueryInterface: fnQueryInterface, AddRef: fnAddRef, Release: fnRelease}, refs: 1}
}

// raw yields the interface pointer, that is, the pointer to the
// pointer to the virtual table.
func (f *fakeObject) raw() uintptr { return uintptr(unsafe.Pointer(&f.vt)) }

func (f *fakeObject) dispatch(t *testing.T) {
	t.Helper()
	comCall = func(fn uintptr, args ...uintptr) uintptr {
		require.False(t, f.destroyed, "dispatched a call on the destroyed object")
		switch fn {
		case fnAddRef:
			f.refs++
			return uintptr(f.refs)
		case fnRelease:
			f.refs--
			if f.refs == 0 {
				f.destroyed = true
			}
			return uintptr(f.refs)
		case fnQueryInterface:
			f.refs++
			out := (*uintptr)(unsafe.Pointer(args[2]))
			*out = args[0]
			return 0
		default:
			t.Fatalf("unexpected vtable slot %#x", fn)
			return 0
		}
	}
	t.Cleanup(func() {
		comCall = func(fn uintptr, args ...uintptr) uintptr {
			// late finalizers must never reach the real dispatcher in tests
			return 0
		}
	})
}

func TestUnknownReleaseReachesZero(t *testing.T) {
	obj := newFakeObject()
	obj.dispatch(t)

	u := wrap(obj.raw())
	require.False(t, u.IsNil())

	n := u.Release()
	assert.Equal(t, uint32(0), n)
	assert.True(t, obj.destroyed)
	assert.True(t, u.IsNil())

	// the wrapper consumed itself, repeated release doesn't reach the object
	assert.Equal(t, uint32(0), u.Release())
	runtime.KeepAlive(obj)
}

func TestUnknownClone(t *testing.T) {
	obj := newFakeObject()
	obj.dispatch(t)

	u := wrap(obj.raw())
	clone := u.Clone()
	assert.Equal(t, 2, obj.refs)
	assert.Equal(t, u.Ptr(), clone.Ptr())

	clone.Release()
	assert.Equal(t, 1, obj.refs)
	assert.False(t, obj.destroyed)

	u.Release()
	assert.True(t, obj.destroyed)
	runtime.KeepAlive(obj)
}

func TestUnknownQueryInterface(t *testing.T) {
	obj := newFakeObject()
	obj.dispatch(t)

	u := wrap(obj.raw())
	q, err := u.QueryInterface(&IidTaskbarList2)
	require.NoError(t, err)
	assert.Equal(t, 2, obj.refs)

	q.Release()
	u.Release()
	assert.True(t, obj.destroyed)
	runtime.KeepAlive(obj)
}

func TestUnknownQueryInterfaceOnNull(t *testing.T) {
	_, err := Null().QueryInterface(&IidTaskbarList)
	require.Error(t, err)
}

func TestFinalizerReleasesAbandonedReference(t *testing.T) {
	released := make(chan struct{})
	comCall = func(fn uintptr, args ...uintptr) uintptr {
		if fn == fnRelease {
			close(released)
		}
		return 0
	}
	t.Cleanup(func() {
		comCall = func(fn uintptr, args ...uintptr) uintptr { return 0 }
	})

	vt := &vtbl{QueryInterface: fnQueryInterface, AddRef: fnAddRef, Release: fnRelease}
	u := wrap(uintptr(unsafe.Pointer(&vt)))
	_ = u
	u = Unknown{}

	deadline := time.After(time.Second * 5)
	for {
		runtime.GC()
		select {
		case <-released:
			runtime.KeepAlive(vt)
			return
		case <-deadline:
			t.Fatal("abandoned reference was never released")
		case <-time.After(time.Millisecond * 10):
		}
	}
}
