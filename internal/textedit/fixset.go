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

package textedit

import (
	"fmt"
	"go/token"
	"iter"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// FixSet is a validated, ordered and non-overlapping collection of edits.
//
// The zero value is the empty set. Offsets are only meaningful against the
// exact source the set was built from.
type FixSet struct {
	edits []Edit
}

// Len returns the number of edits.
func (f FixSet) Len() int { return len(f.edits) }

// Empty reports whether the set contains no edits.
func (f FixSet) Empty() bool { return len(f.edits) == 0 }

// Edits returns a copy of the ordered edits.
func (f FixSet) Edits() []Edit { return slices.Clone(f.edits) }

// All yields the edits in order.
func (f FixSet) All() iter.Seq[Edit] { return slices.Values(f.edits) }

// TextEdits converts the set to [analysis.TextEdit]s for file.
func (f FixSet) TextEdits(file *token.File) []analysis.TextEdit {
	edits := make([]analysis.TextEdit, 0, len(f.edits))
	for _, e := range f.edits {
		edits = append(edits, analysis.TextEdit{
			Pos:     file.Pos(e.Start),
			End:     file.Pos(e.End),
			NewText: []byte(e.NewText),
		})
	}

	return edits
}

// Render returns src with the edits of f applied. src is not modified.
func Render(src []byte, f FixSet) ([]byte, error) {
	size := len(src)
	for _, e := range f.edits {
		if e.End > len(src) {
			return nil, fmt.Errorf("%w: edit [%d, %d) beyond source length %d", ErrInvalidPosition, e.Start, e.End, len(src))
		}

		size += len(e.NewText) - e.Len()
	}

	out := make([]byte, 0, size)
	last := 0

	for _, e := range f.edits {
		out = append(out, src[last:e.Start]...)
		out = append(out, e.NewText...)
		last = e.End
	}

	return append(out, src[last:]...), nil
}
