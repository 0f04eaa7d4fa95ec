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
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"slices"
)

// Buffer accumulates edits against one file. Builders never fail; the first invalid
// position is remembered and returned by [Buffer.Build].
type Buffer struct {
	file  *token.File
	edits []Edit
	err   error
}

// NewBuffer creates an empty [Buffer] for positions in file.
func NewBuffer(file *token.File) *Buffer {
	return &Buffer{file: file}
}

// Len returns the number of registered edits.
func (b *Buffer) Len() int { return len(b.edits) }

// InsertAt inserts text at pos.
func (b *Buffer) InsertAt(pos token.Pos, text string) *Buffer {
	return b.ReplaceRange(pos, pos, text)
}

// InsertBefore inserts text before the start of node.
func (b *Buffer) InsertBefore(node ast.Node, text string) *Buffer {
	return b.InsertAt(node.Pos(), text)
}

// InsertAfter inserts text after the end of node.
func (b *Buffer) InsertAfter(node ast.Node, text string) *Buffer {
	return b.InsertAt(node.End(), text)
}

// Prefix is [Buffer.InsertBefore].
func (b *Buffer) Prefix(node ast.Node, text string) *Buffer { return b.InsertBefore(node, text) }

// Postfix is [Buffer.InsertAfter].
func (b *Buffer) Postfix(node ast.Node, text string) *Buffer { return b.InsertAfter(node, text) }

// ReplaceRange replaces the source between pos and end.
func (b *Buffer) ReplaceRange(pos, end token.Pos, text string) *Buffer {
	start, ok1 := b.offset(pos)
	stop, ok2 := b.offset(end)

	if !ok1 || !ok2 {
		b.fail(fmt.Errorf("%w: range %d-%d outside of file", ErrInvalidPosition, pos, end))

		return b
	}

	return b.Replace(start, stop, text)
}

// ReplaceNode replaces the source of node.
func (b *Buffer) ReplaceNode(node ast.Node, text string) *Buffer {
	return b.ReplaceRange(node.Pos(), node.End(), text)
}

// Replace replaces the byte range [start, end) of the file.
func (b *Buffer) Replace(start, end int, text string) *Buffer {
	if start < 0 || end < start || (b.file != nil && end > b.file.Size()) {
		b.fail(fmt.Errorf("%w: offsets [%d, %d)", ErrInvalidPosition, start, end))

		return b
	}

	b.edits = append(b.edits, Edit{Start: start, End: end, NewText: text})

	return b
}

// Delete removes the byte range [start, end) of the file.
func (b *Buffer) Delete(start, end int) *Buffer { return b.Replace(start, end, "") }

// DeleteNode removes the source of node.
func (b *Buffer) DeleteNode(node ast.Node) *Buffer { return b.ReplaceNode(node, "") }

// Build validates the registered edits and returns them as a [FixSet].
//
// Edits are ordered by start offset. At the same offset insertions come before
// replacements and keep their registration order. Two edits conflict when their
// non-empty ranges intersect or an insertion lies strictly inside a replaced range.
func (b *Buffer) Build() (FixSet, error) {
	if b.err != nil {
		return FixSet{}, b.err
	}

	edits := slices.Clone(b.edits)
	slices.SortStableFunc(edits, func(x, y Edit) int {
		if c := cmp.Compare(x.Start, y.Start); c != 0 {
			return c
		}

		return cmp.Compare(x.Len(), y.Len())
	})

	var (
		covering Edit // replacement reaching furthest to the right so far
		seen     bool
	)

	for _, e := range edits {
		if seen && e.Start < covering.End {
			return FixSet{}, &ConflictError{First: covering, Second: e}
		}

		if !e.Insertion() && (!seen || e.End > covering.End) {
			covering, seen = e, true
		}
	}

	return FixSet{edits: edits}, nil
}

func (b *Buffer) offset(pos token.Pos) (int, bool) {
	if b.file == nil || !pos.IsValid() {
		return 0, false
	}

	base := b.file.Base()
	if int(pos) < base || int(pos) > base+b.file.Size() {
		return 0, false
	}

	return int(pos) - base, true
}

func (b *Buffer) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
