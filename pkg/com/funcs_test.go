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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLSIDRoundtrip(t *testing.T) {
	clsid, err := CLSIDFromString("{56FDF344-FD6D-11D0-958A-006097C9A090}")
	require.NoError(t, err)
	assert.Equal(t, ClsidTaskbarList, clsid)

	s, err := StringFromCLSID(&clsid)
	require.NoError(t, err)
	assert.Equal(t, "{56FDF344-FD6D-11D0-958A-006097C9A090}", s)
}

func TestCLSIDFromStringMalformed(t *testing.T) {
	_, err := CLSIDFromString("not a clsid")
	require.Error(t, err)
}

func TestCLSIDFromProgIDUnregistered(t *testing.T) {
	_, err := CLSIDFromProgID("Winguard.Nonexistent.Application")
	require.Error(t, err)
}

func TestCreateGUID(t *testing.T) {
	a, err := CreateGUID()
	require.NoError(t, err)
	b, err := CreateGUID()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
