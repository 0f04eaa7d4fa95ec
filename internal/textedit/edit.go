// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package textedit accumulates, validates and renders non-overlapping text edits
// against the original contents of a single source file.
package textedit

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict is wrapped by [ConflictError].
	ErrConflict = errors.New("conflicting edits")

	// ErrInvalidPosition is returned for positions outside the edited file or inverted ranges.
	ErrInvalidPosition = errors.New("invalid edit position")
)

// Edit replaces the byte range [Start, End) of a file with NewText.
//
// Start == End is an insertion, an empty NewText a deletion.
type Edit struct {
	Start, End int
	NewText    string
}

// Len returns the length of the replaced range.
func (e Edit) Len() int { return e.End - e.Start }

// Insertion reports whether the edit is zero-width.
func (e Edit) Insertion() bool { return e.Start == e.End }

// ConflictError reports two edits of a [Buffer] that can't be applied together.
type ConflictError struct {
	First, Second Edit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting edits [%d, %d) and [%d, %d)",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Unwrap returns [ErrConflict].
func (e *ConflictError) Unwrap() error { return ErrConflict }
