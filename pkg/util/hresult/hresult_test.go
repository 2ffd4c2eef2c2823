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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSucceeded(t *testing.T) {
	assert.True(t, SOk.Succeeded())
	assert.True(t, SFalse.Succeeded())
	assert.False(t, RPCChangedMode.Succeeded())
	assert.False(t, OutOfMemory.Succeeded())
	assert.False(t, NoInterface.Succeeded())
}

func TestErr(t *testing.T) {
	require.NoError(t, SOk.Err())
	require.NoError(t, SFalse.Err())

	err := OutOfMemory.Err()
	require.Error(t, err)
	// the raw code travels verbatim for caller inspection
	assert.Equal(t, OutOfMemory, err)
}

func TestFormatMessage(t *testing.T) {
	assert.NotEqual(t, "Unknown", FormatMessage(uint32(OutOfMemory)))
	assert.Contains(t, OutOfMemory.Error(), "0x8007000e")
}
