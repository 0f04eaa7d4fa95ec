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

package astutil

import (
	"go/ast"
	"go/types"
)

// TypeString prints t as it has to be spelled inside file of package pkg.
//
// The result is false when t refers to a package that file doesn't import.
func TypeString(info *types.Info, file *ast.File, pkg *types.Package, t types.Type) (string, bool) {
	imports := make(map[string]string, len(file.Imports)) // path -> local name

	for _, spec := range file.Imports {
		var obj types.Object
		if spec.Name != nil {
			obj = info.Defs[spec.Name]
		} else {
			obj = info.Implicits[spec]
		}

		pkgName, ok := obj.(*types.PkgName)
		if !ok || pkgName.Name() == "_" {
			continue
		}

		imports[pkgName.Imported().Path()] = pkgName.Name()
	}

	imported := true
	qualifier := func(p *types.Package) string {
		if p == pkg {
			return ""
		}

		name, ok := imports[p.Path()]
		switch {
		case !ok:
			imported = false
			return p.Name()

		case name == ".":
			return ""

		default:
			return name
		}
	}

	s := types.TypeString(t, qualifier)

	return s, imported
}
