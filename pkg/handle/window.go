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
	"golang.org/x/sys/windows"

	"github.com/rabbitstack/winguard/pkg/sys"
)

var (
	sendMessage = sys.SendMessage
	destroyIcon = sys.DestroyIcon
)

// Hwnd represents the window handle.
type Hwnd uintptr

// Hicon represents the icon handle.
type Hicon uintptr

// Raw returns the underlying address-sized token.
func (w Hwnd) Raw() uintptr { return uintptr(w) }

// IsZero tells if the window handle is the null sentinel.
func (w Hwnd) IsZero() bool { return w == 0 }

// String satisfies the fmt.Stringer interface.
func (w Hwnd) String() string { return Format(w) }

// SendMessage sends the message to the window procedure and doesn't
// return until the procedure has processed it.
func (w Hwnd) SendMessage(msg uint32, wparam, lparam uintptr) uintptr {
	return sendMessage(uintptr(w), msg, wparam, lparam)
}

// SetIcon associates the icon with the static control and returns the
// handle of the previously associated icon. The zero return designates
// the message failure since the control had no icon to hand back.
func (w Hwnd) SetIcon(icon Hicon) (Hicon, error) {
	return zeroAsErr(w.SendMessage(sys.StmSetIcon, uintptr(icon), 0))
}

// Icon retrieves the icon associated with the static control.
func (w Hwnd) Icon() (Hicon, error) {
	return zeroAsErr(w.SendMessage(sys.StmGetIcon, 0, 0))
}

// Raw returns the underlying address-sized token.
func (i Hicon) Raw() uintptr { return uintptr(i) }

// IsZero tells if the icon handle is the null sentinel.
func (i Hicon) IsZero() bool { return i == 0 }

// String satisfies the fmt.Stringer interface.
func (i Hicon) String() string { return Format(i) }

// Destroy destroys the icon and frees any memory it occupied. The
// handle value must not be used after this method returns.
func (i Hicon) Destroy() error { return destroyIcon(uintptr(i)) }

// zeroAsErr maps the zero message return to the error outcome. Window
// messages don't publish the failure reason, so the invalid parameter
// code stands for all of them.
func zeroAsErr(ret uintptr) (Hicon, error) {
	if ret == 0 {
		return 0, windows.ERROR_INVALID_PARAMETER
	}
	return Hicon(ret), nil
}
