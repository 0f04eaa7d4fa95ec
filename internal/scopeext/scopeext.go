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

// Package scopeext computes how far a scoped block around a declaration has to extend
// within its statement list.
package scopeext

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/leakscope/internal/astutil"
)

// References reports whether any identifier inside node refers to obj.
//
// Identity is by object, so a shadowing declaration of the same name doesn't match.
func References(info *types.Info, node ast.Node, obj types.Object) bool {
	found := false

	ast.Inspect(node, func(n ast.Node) bool {
		if found {
			return false
		}

		if id, ok := n.(*ast.Ident); ok && (info.Uses[id] == obj || info.Defs[id] == obj) {
			found = true
		}

		return !found
	})

	return found
}

// LastUse returns the highest index j >= i of stmts whose statement refers to obj, or i
// when no later statement does.
//
// Later statements are searched as complete subtrees, including nested blocks and
// function literals, so the result never ends before the real last use.
func LastUse(info *types.Info, stmts []ast.Stmt, i int, obj types.Object) int {
	last := i

	for j := i + 1; j < len(stmts); j++ {
		if References(info, stmts[j], obj) {
			last = j
		}
	}

	return last
}

// Cover extends [LastUse] of obj declared at stmts[i] until no statement after the
// span refers to an object declared at the top level of the span in scope.
//
// Enclosing the span in a new block hides its declarations from following statements.
func Cover(info *types.Info, scope *types.Scope, stmts []ast.Stmt, i int, obj types.Object) int {
	last := LastUse(info, stmts, i, obj)

	for checked := i; checked < last; {
		from := checked + 1
		checked = last

		for k := from; k <= checked; k++ {
			for def := range astutil.AllDefined(info, scope, stmts[k]) {
				last = max(last, LastUse(info, stmts, k, def))
			}
		}
	}

	return last
}
