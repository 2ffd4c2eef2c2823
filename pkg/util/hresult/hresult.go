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

package hresult

import "fmt"

// HRESULT is the 32-bit status code returned by COM and OLE calls. The
// high-order bit indicates failure, so any code below 0x80000000 falls
// into the success or informational ranges.
// https://learn.microsoft.com/en-us/windows/win32/seccrypto/common-hresult-values
type HRESULT uint32

const (
	// SOk denotes successful completion.
	SOk HRESULT = 0x00000000
	// SFalse denotes successful completion with a negative outcome, such
	// as initializing an already initialized subsystem.
	SFalse HRESULT = 0x00000001
	// RPCChangedMode signals that the COM library is already initialized
	// with a different concurrency model. Informational for library
	// initialization purposes.
	RPCChangedMode HRESULT = 0x80010106
	// NoInterface signals the requested interface is not supported by the object.
	NoInterface HRESULT = 0x80004002
	// Pointer signals an invalid pointer was supplied to the call.
	Pointer HRESULT = 0x80004003
	// OutOfMemory signals the native layer failed to allocate required memory.
	OutOfMemory HRESULT = 0x8007000e
	// ClassNotReg signals the CLSID is not registered in the machine registry.
	ClassNotReg HRESULT = 0x80040154
)

// Succeeded determines whether the status code is in the success or
// informational ranges.
func (hr HRESULT) Succeeded() bool { return hr&0x80000000 == 0 }

// Err maps the status code to the idiomatic error value. Success codes
// yield a nil error, while any failure code is carried verbatim so the
// caller can compare it against known constants.
func (hr HRESULT) Err() error {
	if hr.Succeeded() {
		return nil
	}
	return hr
}

// Error yields the human-readable status code representation.
func (hr HRESULT) Error() string {
	return fmt.Sprintf("hresult(0x%08x): %s", uint32(hr), FormatMessage(uint32(hr)))
}

// String satisfies the fmt.Stringer interface.
func (hr HRESULT) String() string { return fmt.Sprintf("0x%08x", uint32(hr)) }
