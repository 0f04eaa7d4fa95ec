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

// Package freshname supplies identifiers that don't collide with names visible at an insertion point.
package freshname

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// MaxTries is the number of candidates a [Sequence] proposes for a base name.
const MaxTries = 99

// fallback is used when no base can be derived from a type.
const fallback = "res"

// Namer proposes candidate names. Candidates are not guaranteed to be unused;
// callers validate each one and request the next on a clash.
type Namer interface {
	Candidates(base string) iter.Seq[string]
}

// Sequence is the default [Namer], yielding base, base2, base3, ...
type Sequence struct{}

// Candidates implements [Namer].
func (Sequence) Candidates(base string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(base) {
			return
		}

		for i := 2; i <= MaxTries; i++ {
			if !yield(base + strconv.Itoa(i)) {
				return
			}
		}
	}
}

// Pick returns the first candidate of n for base that doesn't clash.
func Pick(n Namer, base string, clash func(name string) bool) (string, bool) {
	for name := range n.Candidates(base) {
		if !token.IsIdentifier(name) || name == "_" || clash(name) {
			continue
		}

		return name, true
	}

	return "", false
}

// Base derives a base name from the type of a resource: *time.Ticker → "ticker".
func Base(t types.Type) string {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}

	var name string

	switch t := types.Unalias(t).(type) {
	case *types.Named:
		name = t.Obj().Name()

	case *types.Basic:
		name = t.Name()

	default:
		return fallback
	}

	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return fallback
	}

	name = string(unicode.ToLower(r)) + name[size:]
	if !token.IsIdentifier(name) { // keywords
		return fallback
	}

	return name
}

// Clash reports whether name is visible at pos in scope or spelled inside any of nodes.
//
// A name spelled inside the enclosed statements could refer to an outer object
// that an inserted declaration would shadow.
func Clash(scope *types.Scope, pos token.Pos, name string, nodes ...ast.Node) bool {
	if scope != nil {
		if _, obj := scope.LookupParent(name, pos); obj != nil {
			return true
		}
	}

	for _, node := range nodes {
		if spelled(node, name) {
			return true
		}
	}

	return false
}

func spelled(node ast.Node, name string) bool {
	found := false

	ast.Inspect(node, func(n ast.Node) bool {
		if found {
			return false
		}

		if id, ok := n.(*ast.Ident); ok && id.Name == name {
			found = true
		}

		return !found
	})

	return found
}
