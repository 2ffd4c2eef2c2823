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

// FileMapAccess determines the type of access to the file mapping object
// and, consequently, the protection of the pages mapped by the view.
type FileMapAccess uint32

const (
	// FileMapCopy gives copy-on-write access to the mapping.
	FileMapCopy FileMapAccess = 0x0001
	// FileMapWrite gives read/write access to the mapping.
	FileMapWrite FileMapAccess = 0x0002
	// FileMapRead gives read-only access to the mapping.
	FileMapRead FileMapAccess = 0x0004
	// FileMapExecute gives execute access to the mapping. The view pages
	// must have been committed with executable page protection.
	FileMapExecute FileMapAccess = 0x0020
	// FileMapAllAccess combines all access rights except execute.
	FileMapAllAccess FileMapAccess = 0x000f001f
)

// Coinit designates the concurrency model flags accepted
// by the COM library initialization call.
type Coinit uint32

const (
	// CoinitMultithreaded initializes the thread for the multithreaded apartment.
	CoinitMultithreaded Coinit = 0x0
	// CoinitApartmentThreaded initializes the thread for a single-threaded apartment.
	CoinitApartmentThreaded Coinit = 0x2
	// CoinitDisableOle1DDE disables DDE for OLE1 support.
	CoinitDisableOle1DDE Coinit = 0x4
	// CoinitSpeedOverMemory trades memory for speed.
	CoinitSpeedOverMemory Coinit = 0x8
)

// Clsctx is the context in which the code that manages
// the newly created object will run.
type Clsctx uint32

const (
	// ClsctxInprocServer loads the code that creates and manages objects
	// into the caller process as a DLL.
	ClsctxInprocServer Clsctx = 0x1
	// ClsctxInprocHandler runs the in-process handler inside the caller process.
	ClsctxInprocHandler Clsctx = 0x2
	// ClsctxLocalServer runs the server code in a separate process on the same machine.
	ClsctxLocalServer Clsctx = 0x4
	// ClsctxRemoteServer runs the server code on a different machine.
	ClsctxRemoteServer Clsctx = 0x10
	// ClsctxAll is the combination of all the server contexts.
	ClsctxAll = ClsctxInprocServer | ClsctxInprocHandler | ClsctxLocalServer | ClsctxRemoteServer
)

const (
	// StmSetIcon is the static control message that associates an icon with the control.
	StmSetIcon = 0x0170
	// StmGetIcon is the static control message that retrieves the icon associated with the control.
	StmGetIcon = 0x0171
)
