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
	"github.com/rabbitstack/winguard/pkg/util/hresult"
	log "github.com/sirupsen/logrus"
)

// Call indirections for the native lifecycle primitives.
// Tests swap them to simulate the acquire/release outcome.
var (
	coInitializeEx       = sys.CoInitializeEx
	coUninitialize       = sys.CoUninitialize
	coLockObjectExternal = sys.CoLockObjectExternal
	coTaskMemAlloc       = sys.CoTaskMemAlloc
	coTaskMemRealloc     = sys.CoTaskMemRealloc
	coTaskMemFree        = sys.CoTaskMemFree
)

// Guards are single-owner values. They only come to existence after the
// corresponding acquire call has reported success, fire their release
// primitive exactly once, either on the explicit Release/Free call or
// the deferred one, and can be disarmed with Detach when the ownership
// is transferred out. Failures on the release path are never propagated
// to the caller. There is no caller-reachable frame to return them to,
// so they are logged at debug level and discarded.

// UninitializeGuard closes the COM library for the calling thread when
// released. Keep the guard alive for as long as the library is in use.
type UninitializeGuard struct {
	code     hresult.HRESULT
	released bool
	detached bool
}

// Initialize initializes the COM library for the calling thread with
// the given concurrency model and returns the guard that uninitializes
// it exactly once on release. Besides plain success, the native call
// can report that the library is already initialized, either with the
// same or a different concurrency model. Both codes still denote a
// usable library, so the guard is constructed for them as well. Any
// other code surfaces as the error and no guard is materialized.
func Initialize(flags sys.Coinit) (*UninitializeGuard, error) {
	hr := coInitializeEx(0, flags)
	switch hr {
	case hresult.SOk, hresult.SFalse, hresult.RPCChangedMode:
		return &UninitializeGuard{code: hr}, nil
	default:
		return nil, hr
	}
}

// Code returns the informational status the initialization call
// reported. Useful to distinguish the first initialization from
// the repeated one.
func (g *UninitializeGuard) Code() hresult.HRESULT { return g.code }

// Release uninitializes the COM library. Subsequent invocations are no-ops.
func (g *UninitializeGuard) Release() {
	if g.released || g.detached {
		return
	}
	g.released = true
	coUninitialize()
}

// Detach disarms the guard so the release primitive never fires.
// The caller takes over the uninitialization duty.
func (g *UninitializeGuard) Detach() { g.detached = true }

// LockGuard keeps the external strong lock on the object and removes it
// on release. The guard retains the reference to the locked object, not
// its ownership, so the unlock call addresses the right target.
type LockGuard struct {
	obj      Unknown
	released bool
	detached bool
}

// LockObjectExternal places the strong external lock on the object,
// keeping its reference count above zero regardless of the internal
// references, and returns the guard that removes the lock exactly once
// on release.
func LockObjectExternal(obj Unknown) (*LockGuard, error) {
	if obj.IsNil() {
		return nil, errors.ErrNullInterface
	}
	if err := coLockObjectExternal(obj.Ptr(), 1, 0).Err(); err != nil {
		return nil, err
	}
	return &LockGuard{obj: obj}, nil
}

// Object returns the reference to the locked object.
func (g *LockGuard) Object() Unknown { return g.obj }

// Release removes the external lock from the object. Subsequent
// invocations are no-ops.
func (g *LockGuard) Release() {
	if g.released || g.detached {
		return
	}
	g.released = true
	if hr := coLockObjectExternal(g.obj.Ptr(), 0, 1); !hr.Succeeded() {
		log.Debugf("unable to remove the external lock on the object %s: %v", g.obj, hr)
	}
}

// Detach disarms the guard so the unlock primitive never fires.
func (g *LockGuard) Detach() { g.detached = true }

// TaskMem owns the memory block obtained from the COM task allocator.
// The block size is tracked by the caller, not the guard, hence reads
// and writes go through the explicit Bytes accessor.
type TaskMem struct {
	block    uintptr
	detached bool
}

// TaskMemAlloc allocates the memory block of the given size from the
// COM task allocator. The null block maps to the out of memory error
// and no guard is materialized.
func TaskMemAlloc(size uintptr) (*TaskMem, error) {
	block := coTaskMemAlloc(size)
	if block == 0 {
		return nil, errors.ErrOutOfMemory
	}
	return &TaskMem{block: block}, nil
}

// Realloc grows or shrinks the owned block, preserving its contents up
// to the smaller of the two sizes. On the out of memory condition the
// original block remains valid and owned by the guard.
func (m *TaskMem) Realloc(size uintptr) error {
	block := coTaskMemRealloc(m.block, size)
	if block == 0 {
		return errors.ErrOutOfMemory
	}
	m.block = block
	return nil
}

// Ptr returns the base address of the owned block.
func (m *TaskMem) Ptr() unsafe.Pointer { return unsafe.Pointer(m.block) }

// Bytes returns the slice over the owned block. The length is not
// validated, since the block size is caller-tracked.
func (m *TaskMem) Bytes(n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(m.block)), n)
}

// Free returns the block to the COM task allocator. Subsequent
// invocations are no-ops.
func (m *TaskMem) Free() {
	if m.block == 0 || m.detached {
		return
	}
	coTaskMemFree(m.block)
	m.block = 0
}

// Detach disarms the guard and hands the raw block over to the caller,
// which becomes responsible for freeing it.
func (m *TaskMem) Detach() uintptr {
	m.detached = true
	return m.block
}
