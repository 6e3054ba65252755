// Copyright 2026 The colorprim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package colorprim

import (
	"errors"
	"fmt"
)

// The error kinds reported by the library. Every failure returned by a
// public entry point wraps exactly one of these sentinels, so callers can
// classify failures with errors.Is.
var (
	// ErrNotInitialized is returned when Initialize was never called.
	ErrNotInitialized = errors.New("colorprim: not initialized")

	// ErrInvalidValue is returned when one or more arguments are absent,
	// malformed, or violate the format compatibility and size constraints.
	ErrInvalidValue = errors.New("colorprim: invalid value")

	// ErrInvalidOperation is returned when the arguments are individually
	// valid but their combination is unsupported, such as a source and
	// destination pixel format pair with no registered conversion.
	ErrInvalidOperation = errors.New("colorprim: invalid operation")

	// ErrNotEnoughData is returned when a provided plane buffer is smaller
	// than the minimum size reported by GetBuffersSize.
	ErrNotEnoughData = errors.New("colorprim: not enough data")
)

func errInvalidValuef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

func errNotEnoughDataf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotEnoughData, fmt.Sprintf(format, args...))
}
