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

package sys

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall.go

//sys MapViewOfFile(handle windows.Handle, access FileMapAccess, offsetHi uint32, offsetLo uint32, length uintptr) (addr uintptr, err error) = kernel32.MapViewOfFile
//sys UnmapViewOfFile(addr uintptr) (err error) = kernel32.UnmapViewOfFile
//sys SendMessage(hwnd uintptr, msg uint32, wparam uintptr, lparam uintptr) (ret uintptr) = user32.SendMessageW
//sys DestroyIcon(icon uintptr) (err error) = user32.DestroyIcon
//sys CoInitializeEx(reserved uintptr, flags Coinit) (hr hresult.HRESULT) = ole32.CoInitializeEx
//sys CoUninitialize() = ole32.CoUninitialize
//sys CoCreateInstance(clsid *windows.GUID, unkOuter uintptr, clsctx Clsctx, iid *windows.GUID, ppv *uintptr) (hr hresult.HRESULT) = ole32.CoCreateInstance
//sys CoLockObjectExternal(unk uintptr, lock int32, lastUnlockReleases int32) (hr hresult.HRESULT) = ole32.CoLockObjectExternal
//sys CoTaskMemAlloc(size uintptr) (block uintptr) = ole32.CoTaskMemAlloc
//sys CoTaskMemRealloc(block uintptr, size uintptr) (newblock uintptr) = ole32.CoTaskMemRealloc
//sys CoTaskMemFree(block uintptr) = ole32.CoTaskMemFree
//sys CoCreateGuid(guid *windows.GUID) (hr hresult.HRESULT) = ole32.CoCreateGuid
//sys CLSIDFromProgID(progID *uint16, clsid *windows.GUID) (hr hresult.HRESULT) = ole32.CLSIDFromProgID
//sys CLSIDFromString(str *uint16, clsid *windows.GUID) (hr hresult.HRESULT) = ole32.CLSIDFromString
//sys StringFromCLSID(clsid *windows.GUID, str **uint16) (hr hresult.HRESULT) = ole32.StringFromCLSID
//sys SysAllocString(str *uint16) (bstr uintptr) = oleaut32.SysAllocString
//sys SysReAllocString(bstr *uintptr, str *uint16) (ok int32) = oleaut32.SysReAllocString
//sys SysFreeString(bstr uintptr) = oleaut32.SysFreeString
//sys SysStringLen(bstr uintptr) (n uint32) = oleaut32.SysStringLen
