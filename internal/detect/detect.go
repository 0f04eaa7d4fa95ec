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

// Package detect finds resource producing calls whose result is never released.
package detect

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/leakscope/internal/resource"
)

// Leak is a resource producing call without release.
type Leak struct {
	Call inspector.Cursor
	Spec resource.Spec
}

// Stage holds the configuration for leak detection.
type Stage struct {
	Info      *types.Info
	Resources resource.Set

	// Package is the root of all files of the package, searched for uses of package-level variables.
	Package inspector.Cursor
}

// Leaks returns the unreleased resources produced inside decl.
func (s Stage) Leaks(ctx context.Context, decl inspector.Cursor) []Leak {
	defer trace.StartRegion(ctx, "Leaks").End()

	var leaks []Leak

	for c := range decl.Preorder((*ast.CallExpr)(nil)) {
		spec, ok := s.Resources.Match(s.Info, c.Node().(*ast.CallExpr))
		if !ok || s.handled(c, decl, spec) {
			continue
		}

		leaks = append(leaks, Leak{Call: c, Spec: spec})
	}

	return leaks
}

// handled reports whether the result of call is released or its ownership is transferred.
func (s Stage) handled(call, decl inspector.Cursor, spec resource.Spec) bool {
	parent := call.Parent()

	switch kind, index := call.ParentEdge(); kind {
	case edge.ReturnStmt_Results, edge.SendStmt_Value, edge.CompositeLit_Elts, edge.KeyValueExpr_Value:
		return true

	case edge.SelectorExpr_X:
		return parent.Node().(*ast.SelectorExpr).Sel.Name == spec.Release

	case edge.AssignStmt_Rhs:
		assign := parent.Node().(*ast.AssignStmt)
		if len(assign.Lhs) != len(assign.Rhs) {
			return false
		}

		id, ok := assign.Lhs[index].(*ast.Ident)
		if assign.Tok != token.DEFINE {
			return !ok || id.Name != "_" // stored in an existing location
		}

		return ok && s.bindingHandled(s.Info.Defs[id], decl, spec)

	case edge.ValueSpec_Values:
		vspec := parent.Node().(*ast.ValueSpec)
		if len(vspec.Names) != len(vspec.Values) {
			return false
		}

		return s.bindingHandled(s.Info.Defs[vspec.Names[index]], decl, spec)

	default:
		return false
	}
}

// bindingHandled reports whether a variable holding a resource is released or escapes.
func (s Stage) bindingHandled(obj types.Object, decl inspector.Cursor, spec resource.Spec) bool {
	if obj == nil {
		return false // blank
	}

	root := decl
	if obj.Parent() == obj.Pkg().Scope() {
		root = s.Package
	}

	for c := range root.Preorder((*ast.Ident)(nil)) {
		if s.Info.Uses[c.Node().(*ast.Ident)] != obj {
			continue
		}

		if s.used(c, spec) {
			return true
		}
	}

	return false
}

// used reports whether the identifier releases the resource or hands it on.
func (s Stage) used(id inspector.Cursor, spec resource.Spec) bool {
	switch kind, _ := id.ParentEdge(); kind {
	case edge.SelectorExpr_X:
		return id.Parent().Node().(*ast.SelectorExpr).Sel.Name == spec.Release

	case edge.ReturnStmt_Results, edge.SendStmt_Value, edge.CompositeLit_Elts, edge.KeyValueExpr_Value,
		edge.ValueSpec_Values:
		return true

	case edge.AssignStmt_Rhs:
		assign := id.Parent().Node().(*ast.AssignStmt)
		if len(assign.Lhs) != len(assign.Rhs) {
			return true
		}

		_, index := id.ParentEdge()
		lhs, ok := assign.Lhs[index].(*ast.Ident)

		return !ok || lhs.Name != "_"

	case edge.CallExpr_Args:
		fun, ok := ast.Unparen(id.Parent().Node().(*ast.CallExpr).Fun).(*ast.Ident)
		if !ok {
			return false
		}

		builtin, ok := s.Info.Uses[fun].(*types.Builtin)

		return ok && builtin.Name() == "append"

	case edge.UnaryExpr_X:
		return id.Parent().Node().(*ast.UnaryExpr).Op == token.AND

	default:
		return false
	}
}
