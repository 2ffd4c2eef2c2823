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

package errors

import (
	"errors"
)

var (
	// ErrOutOfMemory is returned when a native allocator yields a null block.
	// It is synthesized locally, since allocator primitives communicate the
	// exhaustion condition solely through the null return value.
	ErrOutOfMemory = errors.New("native allocator was not able to satisfy the allocation request")

	// ErrNullInterface is returned when a COM method invocation is attempted
	// on a null interface reference.
	ErrNullInterface = errors.New("interface reference points to a null object")
)

// IsOutOfMemory determines if the error being passed is of `ErrOutOfMemory` type.
func IsOutOfMemory(err error) bool { return errors.Is(err, ErrOutOfMemory) }
