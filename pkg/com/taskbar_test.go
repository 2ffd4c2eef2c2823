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
	"unsafe"

	"github.com/rabbitstack/winguard/pkg/handle"
	"github.com/rabbitstack/winguard/pkg/util/hresult"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTaskbar dispatches taskbar interface slots identified by
// distinct sentinels so the vtable layout is exercised end to end.
type fakeTaskbar struct {
	vt    *taskbarList3Vtbl
	calls map[uintptr][]uintptr
}

const (
	fnHrInit               uintptr = 0xb1
	fnMarkFullscreenWindow uintptr = 0xb2
	fnSetProgressValue     uintptr = 0xb3
	fnSetProgressState     uintptr = 0xb4
	fnRegisterTab          uintptr = 0xb5
	fnSetTabOrder          uintptr = 0xb6
	fnSetTabActive         uintptr = 0xb7
)

func newFakeTaskbar(t *testing.T) *fakeTaskbar {
	f := &fakeTaskbar{calls: make(map[uintptr][]uintptr)}
	f.vt = &taskbarList3Vtbl{
		taskbarList2Vtbl: taskbarList2Vtbl{
			taskbarListVtbl: taskbarListVtbl{
				vtbl:   vtbl{QueryInterface: fnQueryInterface, AddRef: fnAddRef, Release: fnRelease},
				HrInit: fnHrInit,
			},
			MarkFullscreenWindow: fnMarkFullscreenWindow,
		},
		SetProgressValue: fnSetProgressValue,
		SetProgressState: fnSetProgressState,
		RegisterTab:      fnRegisterTab,
		SetTabOrder:      fnSetTabOrder,
		SetTabActive:     fnSetTabActive,
	}
	comCall = func(fn uintptr, args ...uintptr) uintptr {
		if fn == fnRelease {
			return 0
		}
		f.calls[fn] = args[1:]
		return uintptr(hresult.SOk)
	}
	t.Cleanup(func() {
		comCall = func(fn uintptr, args ...uintptr) uintptr { return 0 }
	})
	return f
}

func (f *fakeTaskbar) wrap() TaskbarList3 {
	raw := uintptr(unsafe.Pointer(&f.vt))
	return TaskbarList3{TaskbarList2{TaskbarList{wrap(raw)}}}
}

func TestTaskbarVtableDispatch(t *testing.T) {
	f := newFakeTaskbar(t)
	tb := f.wrap()

	require.NoError(t, tb.HrInit())
	require.NoError(t, tb.MarkFullscreenWindow(handle.Hwnd(0x700), true))
	require.NoError(t, tb.SetProgressValue(handle.Hwnd(0x700), 30, 100))
	require.NoError(t, tb.SetProgressState(handle.Hwnd(0x700), ProgressPaused))
	require.NoError(t, tb.RegisterTab(handle.Hwnd(0x701), handle.Hwnd(0x700)))
	require.NoError(t, tb.SetTabOrder(handle.Hwnd(0x701), handle.Hwnd(0)))
	require.NoError(t, tb.SetTabActive(handle.Hwnd(0x701), handle.Hwnd(0x700)))

	assert.Equal(t, []uintptr{}, f.calls[fnHrInit])
	assert.Equal(t, []uintptr{0x700, 1}, f.calls[fnMarkFullscreenWindow])
	assert.Equal(t, []uintptr{0x700, 30, 100}, f.calls[fnSetProgressValue])
	assert.Equal(t, []uintptr{0x700, uintptr(ProgressPaused)}, f.calls[fnSetProgressState])
	assert.Equal(t, []uintptr{0x701, 0x700}, f.calls[fnRegisterTab])
	assert.Equal(t, []uintptr{0x701, 0}, f.calls[fnSetTabOrder])
	assert.Equal(t, []uintptr{0x701, 0x700, 0}, f.calls[fnSetTabActive])

	tb.Release()
	runtime.KeepAlive(f)
}

func TestTaskbarDispatchFailure(t *testing.T) {
	f := newFakeTaskbar(t)
	comCall = func(fn uintptr, args ...uintptr) uintptr {
		if fn == fnRelease {
			return 0
		}
		return uintptr(hresult.ClassNotReg)
	}
	tb := f.wrap()

	err := tb.HrInit()
	require.Error(t, err)
	assert.Equal(t, hresult.ClassNotReg, err)

	tb.Release()
	runtime.KeepAlive(f)
}
