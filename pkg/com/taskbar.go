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

	"github.com/rabbitstack/winguard/pkg/handle"
	"github.com/rabbitstack/winguard/pkg/sys"
	"github.com/rabbitstack/winguard/pkg/util/hresult"
	"golang.org/x/sys/windows"
)

var (
	// ClsidTaskbarList identifies the shell taskbar list coclass.
	ClsidTaskbarList = windows.GUID{Data1: 0x56fdf344, Data2: 0xfd6d, Data3: 0x11d0, Data4: [8]byte{0x95, 0x8a, 0x00, 0x60, 0x97, 0xc9, 0xa0, 0x90}}
	// IidTaskbarList identifies the ITaskbarList interface.
	IidTaskbarList = windows.GUID{Data1: 0x56fdf342, Data2: 0xfd6d, Data3: 0x11d0, Data4: [8]byte{0x95, 0x8a, 0x00, 0x60, 0x97, 0xc9, 0xa0, 0x90}}
	// IidTaskbarList2 identifies the ITaskbarList2 interface.
	IidTaskbarList2 = windows.GUID{Data1: 0x602d4995, Data2: 0xb13a, Data3: 0x429b, Data4: [8]byte{0xa6, 0x6e, 0x19, 0x35, 0xe4, 0x4f, 0x43, 0x17}}
	// IidTaskbarList3 identifies the ITaskbarList3 interface.
	IidTaskbarList3 = windows.GUID{Data1: 0xea1afb91, Data2: 0x9e28, Data3: 0x4b86, Data4: [8]byte{0x90, 0xe9, 0x9e, 0x9f, 0x8a, 0x5e, 0xef, 0xaf}}
)

// ProgressState designates the kind of the progress indicator
// displayed on the taskbar button.
type ProgressState uint32

const (
	// ProgressNone stops displaying progress.
	ProgressNone ProgressState = 0x0
	// ProgressIndeterminate shows the marquee style indicator.
	ProgressIndeterminate ProgressState = 0x1
	// ProgressNormal shows the determinate green indicator.
	ProgressNormal ProgressState = 0x2
	// ProgressError shows the red indicator.
	ProgressError ProgressState = 0x4
	// ProgressPaused shows the yellow indicator.
	ProgressPaused ProgressState = 0x8
)

type taskbarListVtbl struct {
	vtbl
	HrInit       uintptr
	AddTab       uintptr
	DeleteTab    uintptr
	ActivateTab  uintptr
	SetActiveAlt uintptr
}

type taskbarList2Vtbl struct {
	taskbarListVtbl
	MarkFullscreenWindow uintptr
}

type taskbarList3Vtbl struct {
	taskbarList2Vtbl
	SetProgressValue      uintptr
	SetProgressState      uintptr
	RegisterTab           uintptr
	UnregisterTab         uintptr
	SetTabOrder           uintptr
	SetTabActive          uintptr
	ThumbBarAddButtons    uintptr
	ThumbBarUpdateButtons uintptr
	ThumbBarSetImageList  uintptr
	SetOverlayIcon        uintptr
	SetThumbnailTooltip   uintptr
	SetThumbnailClip      uintptr
}

// TaskbarList exposes the methods controlling which tabs the taskbar
// displays. Derived interfaces hold their base interface as a field,
// so the whole chain shares the single underlying reference.
type TaskbarList struct {
	Unknown
}

// TaskbarList2 extends TaskbarList with the fullscreen window marking.
type TaskbarList2 struct {
	TaskbarList
}

// TaskbarList3 extends TaskbarList2 with the progress and tab
// management methods introduced with the Windows 7 taskbar.
type TaskbarList3 struct {
	TaskbarList2
}

// NewTaskbarList3 instantiates the taskbar list object inside the
// caller process and returns the reference to its richest interface.
func NewTaskbarList3() (TaskbarList3, error) {
	u, err := CreateInstance(&ClsidTaskbarList, sys.ClsctxInprocServer, &IidTaskbarList3)
	if err != nil {
		return TaskbarList3{}, err
	}
	return TaskbarList3{TaskbarList2{TaskbarList{u}}}, nil
}

func (t TaskbarList) tvt() *taskbarListVtbl {
	return (*taskbarListVtbl)(unsafe.Pointer(t.vt()))
}

// HrInit initializes the taskbar list object. Must be called before
// any other method on this interface.
func (t TaskbarList) HrInit() error {
	return hresult.HRESULT(comCall(t.tvt().HrInit, t.Ptr())).Err()
}

// AddTab adds the window tab to the taskbar.
func (t TaskbarList) AddTab(hwnd handle.Hwnd) error {
	return hresult.HRESULT(comCall(t.tvt().AddTab, t.Ptr(), hwnd.Raw())).Err()
}

// DeleteTab removes the window tab from the taskbar.
func (t TaskbarList) DeleteTab(hwnd handle.Hwnd) error {
	return hresult.HRESULT(comCall(t.tvt().DeleteTab, t.Ptr(), hwnd.Raw())).Err()
}

// ActivateTab activates the window tab on the taskbar.
func (t TaskbarList) ActivateTab(hwnd handle.Hwnd) error {
	return hresult.HRESULT(comCall(t.tvt().ActivateTab, t.Ptr(), hwnd.Raw())).Err()
}

func (t TaskbarList2) t2vt() *taskbarList2Vtbl {
	return (*taskbarList2Vtbl)(unsafe.Pointer(t.vt()))
}

// MarkFullscreenWindow marks the window as full-screen so the shell
// treats it accordingly.
func (t TaskbarList2) MarkFullscreenWindow(hwnd handle.Hwnd, fullscreen bool) error {
	var f uintptr
	if fullscreen {
		f = 1
	}
	return hresult.HRESULT(comCall(t.t2vt().MarkFullscreenWindow, t.Ptr(), hwnd.Raw(), f)).Err()
}

func (t TaskbarList3) t3vt() *taskbarList3Vtbl {
	return (*taskbarList3Vtbl)(unsafe.Pointer(t.vt()))
}

// SetProgressValue displays the determinate progress on the taskbar
// button of the window.
func (t TaskbarList3) SetProgressValue(hwnd handle.Hwnd, completed, total uint64) error {
	return hresult.HRESULT(comCall(t.t3vt().SetProgressValue, t.Ptr(), hwnd.Raw(), uintptr(completed), uintptr(total))).Err()
}

// SetProgressState sets the kind of the progress indicator displayed
// on the taskbar button of the window.
func (t TaskbarList3) SetProgressState(hwnd handle.Hwnd, state ProgressState) error {
	return hresult.HRESULT(comCall(t.t3vt().SetProgressState, t.Ptr(), hwnd.Raw(), uintptr(state))).Err()
}

// RegisterTab registers the tab window with the MDI application window.
func (t TaskbarList3) RegisterTab(tab, mdi handle.Hwnd) error {
	return hresult.HRESULT(comCall(t.t3vt().RegisterTab, t.Ptr(), tab.Raw(), mdi.Raw())).Err()
}

// UnregisterTab removes the thumbnail association created with RegisterTab.
func (t TaskbarList3) UnregisterTab(tab handle.Hwnd) error {
	return hresult.HRESULT(comCall(t.t3vt().UnregisterTab, t.Ptr(), tab.Raw())).Err()
}

// SetTabOrder inserts the tab thumbnail before the given one, or at
// the end of the list when insertBefore is the null handle.
func (t TaskbarList3) SetTabOrder(tab, insertBefore handle.Hwnd) error {
	return hresult.HRESULT(comCall(t.t3vt().SetTabOrder, t.Ptr(), tab.Raw(), insertBefore.Raw())).Err()
}

// SetTabActive marks the tab as active on the taskbar.
func (t TaskbarList3) SetTabActive(tab, mdi handle.Hwnd) error {
	return hresult.HRESULT(comCall(t.t3vt().SetTabActive, t.Ptr(), tab.Raw(), mdi.Raw(), 0)).Err()
}
