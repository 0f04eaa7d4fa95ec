// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"go/types"
	"iter"
)

// AllDefined yields all objects defined by identifiers inside node that belong to scope.
//
// Objects of nested scopes (inner blocks, function literals) are skipped.
func AllDefined(info *types.Info, scope *types.Scope, node ast.Node) iter.Seq[types.Object] {
	return func(yield func(types.Object) bool) {
		done := false

		ast.Inspect(node, func(n ast.Node) bool {
			if done {
				return false
			}

			id, ok := n.(*ast.Ident)
			if !ok {
				return true
			}

			obj := info.Defs[id]
			if obj == nil || obj.Name() == "_" || obj.Parent() != scope {
				return true
			}

			done = !yield(obj)

			return !done
		})
	}
}
