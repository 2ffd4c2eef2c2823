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

	errs "github.com/rabbitstack/winguard/pkg/errors"
	"github.com/rabbitstack/winguard/pkg/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBStrRoundtrip(t *testing.T) {
	b, err := NewBStr("winguard")
	require.NoError(t, err)
	defer b.Free()

	assert.Equal(t, uint32(8), b.Len())
	assert.Equal(t, "winguard", b.String())
}

func TestBStrRealloc(t *testing.T) {
	b, err := NewBStr("short")
	require.NoError(t, err)
	defer b.Free()

	require.NoError(t, b.Realloc("a considerably longer automation string"))
	assert.Equal(t, "a considerably longer automation string", b.String())
	assert.Equal(t, uint32(39), b.Len())
}

func TestBStrFreeFiresOnce(t *testing.T) {
	var frees []uintptr
	sysFreeString = func(bstr uintptr) { frees = append(frees, bstr) }
	defer func() { sysFreeString = sys.SysFreeString }()

	b, err := NewBStr("once")
	require.NoError(t, err)

	b.Free()
	b.Free()
	require.Len(t, frees, 1)

	// return the string for real now that the accounting is done
	sys.SysFreeString(frees[0])
}

func TestBStrAllocOutOfMemory(t *testing.T) {
	sysAllocString = func(str *uint16) uintptr { return 0 }
	defer func() { sysAllocString = sys.SysAllocString }()

	b, err := NewBStr("no memory for this one")
	require.Nil(t, b)
	require.True(t, errs.IsOutOfMemory(err))
}
