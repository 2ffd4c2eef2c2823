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
	"unsafe"

	"github.com/rabbitstack/winguard/pkg/sys"
	"golang.org/x/sys/windows"
)

// Call indirections for the mapping primitives. Tests swap them
// to simulate the native layer outcome.
var (
	mapViewOfFile   = sys.MapViewOfFile
	unmapViewOfFile = sys.UnmapViewOfFile
)

// Hfilemap represents the handle to the file mapping object.
type Hfilemap uintptr

// CreateFileMapping creates or opens the named or unnamed file mapping
// object for the specified file. The zero maximum size derives the
// mapping size from the backing file.
func CreateFileMapping(file windows.Handle, protect uint32, maxSize uint64, name string) (Hfilemap, error) {
	var n *uint16
	if name != "" {
		var err error
		n, err = windows.UTF16PtrFromString(name)
		if err != nil {
			return 0, err
		}
	}
	h, err := windows.CreateFileMapping(file, nil, protect, uint32(maxSize>>32), uint32(maxSize), n)
	if err != nil {
		return 0, err
	}
	return Hfilemap(h), nil
}

// Raw returns the underlying address-sized token.
func (h Hfilemap) Raw() uintptr { return uintptr(h) }

// IsZero tells if the handle is the null sentinel.
func (h Hfilemap) IsZero() bool { return h == 0 }

// String satisfies the fmt.Stringer interface.
func (h Hfilemap) String() string { return Format(h) }

// Close disposes the file mapping object. The handle value must not be
// used after this method returns. Outstanding views keep the mapping
// alive until they are unmapped.
func (h Hfilemap) Close() error { return closeRaw(uintptr(h)) }

// MapView maps the view of the file mapping into the address space of
// the calling process. The offset must be a multiple of the system
// allocation granularity. Must be paired with the MapView.Unmap call.
func (h Hfilemap) MapView(access sys.FileMapAccess, offset uint64, length uintptr) (MapView, error) {
	addr, err := mapViewOfFile(windows.Handle(h), access, uint32(offset>>32), uint32(offset), length)
	if err != nil {
		return 0, err
	}
	return MapView(addr), nil
}

// MapView is the address of the mapped view backed by the file mapping object.
type MapView uintptr

// Raw returns the base address of the view.
func (v MapView) Raw() uintptr { return uintptr(v) }

// IsZero tells if the view address is the null sentinel.
func (v MapView) IsZero() bool { return v == 0 }

// String satisfies the fmt.Stringer interface.
func (v MapView) String() string { return Format(v) }

// Unmap unmaps the view from the process address space. The view value
// and any slice obtained from it must not be used after this method returns.
func (v MapView) Unmap() error { return unmapViewOfFile(uintptr(v)) }

// Bytes returns the slice representing the mapped memory. The length is
// not validated against the true mapping size. The caller must
// independently know the mapping extends at least that far. If the
// backing file is resized to a smaller size, the slice will still
// describe the bytes beyond the valid region, which may cause serious
// errors. In that case, regenerate the slice by calling Bytes again
// with the adjusted length.
func (v MapView) Bytes(n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(v))), n)
}
