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

	"github.com/rabbitstack/winguard/pkg/sys"
	"golang.org/x/sys/windows"
)

var coCreateInstance = sys.CoCreateInstance

// CreateInstance creates the single object of the class identified by
// clsid and returns the reference to its interface identified by iid.
// The reference owns one count on the freshly created object.
func CreateInstance(clsid *windows.GUID, clsctx sys.Clsctx, iid *windows.GUID) (Unknown, error) {
	var ppv uintptr
	if err := coCreateInstance(clsid, 0, clsctx, iid, &ppv).Err(); err != nil {
		return Unknown{}, err
	}
	return wrap(ppv), nil
}

// CLSIDFromProgID resolves the programmatic identifier, such as
// "Shell.Application", to the class identifier registered in the
// machine registry.
func CLSIDFromProgID(progID string) (windows.GUID, error) {
	p, err := windows.UTF16PtrFromString(progID)
	if err != nil {
		return windows.GUID{}, err
	}
	var clsid windows.GUID
	if err := sys.CLSIDFromProgID(p, &clsid).Err(); err != nil {
		return windows.GUID{}, err
	}
	return clsid, nil
}

// CLSIDFromString parses the textual class identifier representation,
// such as "{56FDF344-FD6D-11D0-958A-006097C9A090}".
func CLSIDFromString(s string) (windows.GUID, error) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return windows.GUID{}, err
	}
	var clsid windows.GUID
	if err := sys.CLSIDFromString(p, &clsid).Err(); err != nil {
		return windows.GUID{}, err
	}
	return clsid, nil
}

// StringFromCLSID renders the class identifier in its textual brace
// form. The intermediate buffer allocated by the native layer is
// returned to the task allocator before this function yields.
func StringFromCLSID(clsid *windows.GUID) (string, error) {
	var p *uint16
	if err := sys.StringFromCLSID(clsid, &p).Err(); err != nil {
		return "", err
	}
	s := windows.UTF16PtrToString(p)
	coTaskMemFree(uintptr(unsafe.Pointer(p)))
	return s, nil
}

// CreateGUID returns a globally unique 128-bit identifier.
func CreateGUID() (windows.GUID, error) {
	var guid windows.GUID
	if err := sys.CoCreateGuid(&guid).Err(); err != nil {
		return windows.GUID{}, err
	}
	return guid, nil
}
