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

import "syscall"

var (
	gdi32 = syscall.NewLazyDLL("gdi32.dll")

	procDeleteObject = gdi32.NewProc("DeleteObject")
)

var deleteObjectCall = procDeleteObject.Call

// Hbitmap represents the handle to the GDI bitmap object.
type Hbitmap uintptr

// Hbrush represents the handle to the GDI brush object.
type Hbrush uintptr

// Hpen represents the handle to the GDI pen object.
type Hpen uintptr

// Hfont represents the handle to the GDI font object.
type Hfont uintptr

// Raw returns the underlying address-sized token.
func (h Hbitmap) Raw() uintptr { return uintptr(h) }

// IsZero tells if the handle is the null sentinel.
func (h Hbitmap) IsZero() bool { return h == 0 }

// String satisfies the fmt.Stringer interface.
func (h Hbitmap) String() string { return Format(h) }

// Delete destroys the bitmap object and frees all system resources
// associated with it. The handle value must not be used afterwards.
func (h Hbitmap) Delete() error { return deleteRaw(uintptr(h)) }

// Raw returns the underlying address-sized token.
func (h Hbrush) Raw() uintptr { return uintptr(h) }

// IsZero tells if the handle is the null sentinel.
func (h Hbrush) IsZero() bool { return h == 0 }

// String satisfies the fmt.Stringer interface.
func (h Hbrush) String() string { return Format(h) }

// Delete destroys the brush object. The handle value must not be used afterwards.
func (h Hbrush) Delete() error { return deleteRaw(uintptr(h)) }

// Raw returns the underlying address-sized token.
func (h Hpen) Raw() uintptr { return uintptr(h) }

// IsZero tells if the handle is the null sentinel.
func (h Hpen) IsZero() bool { return h == 0 }

// String satisfies the fmt.Stringer interface.
func (h Hpen) String() string { return Format(h) }

// Delete destroys the pen object. The handle value must not be used afterwards.
func (h Hpen) Delete() error { return deleteRaw(uintptr(h)) }

// Raw returns the underlying address-sized token.
func (h Hfont) Raw() uintptr { return uintptr(h) }

// IsZero tells if the handle is the null sentinel.
func (h Hfont) IsZero() bool { return h == 0 }

// String satisfies the fmt.Stringer interface.
func (h Hfont) String() string { return Format(h) }

// Delete destroys the font object. The handle value must not be used afterwards.
func (h Hfont) Delete() error { return deleteRaw(uintptr(h)) }

// deleteRaw invokes the DeleteObject primitive on the raw GDI token.
// The boolean return of this primitive is unreliable. A zero return
// accompanied by the last-error code of zero means the deletion
// genuinely succeeded, while any other accompanying code signals the
// real failure. Hence the last-error code is inspected before the zero
// return is deemed a failure.
func deleteRaw(h uintptr) error {
	r1, _, err := deleteObjectCall(h)
	if r1 != 0 {
		return nil
	}
	if errno, ok := err.(syscall.Errno); ok && errno == 0 {
		return nil
	}
	return err
}
