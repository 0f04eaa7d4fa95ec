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

// Package classify assigns the syntactic context of a resource producing call to one of a
// closed set of [Variant]s.
package classify

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Context is the classification of a call.
type Context struct {
	Variant Variant

	// Stmt is the statement the rewrite encloses: the declaration, range statement,
	// expression statement or the statement containing the chain.
	Stmt inspector.Cursor

	// List is the statement list containing Stmt at Index.
	List  []ast.Stmt
	Index int

	// Chain is the outermost expression of the selector chain on the call (ChainedCall only).
	Chain inspector.Cursor

	// Binding is the declared variable for Declaration and for a ChainedCall inside a
	// single variable declaration, which has to be split.
	Binding *ast.Ident

	// Init is the initializer of the split declaration (ChainedCall with Binding only).
	Init ast.Expr

	// Reason describes why the context is Unsupported.
	Reason string
}

// Classify inspects the parent and grandparent of call.
func Classify(call inspector.Cursor) Context {
	parent := call.Parent()

	switch kind, _ := call.ParentEdge(); kind {
	case edge.SelectorExpr_X:
		return chained(call)

	case edge.AssignStmt_Rhs:
		return assignment(parent)

	case edge.ValueSpec_Values:
		return valueSpec(parent)

	case edge.RangeStmt_X:
		return inList(Context{Variant: LoopIterable, Stmt: parent})

	case edge.CallExpr_Args:
		if kind, _ := parent.ParentEdge(); kind != edge.ExprStmt_X {
			return unsupported("argument of a call inside " + describe(parent.Parent().Node()))
		}

		return inList(Context{Variant: StatementExpr, Stmt: parent.Parent()})

	default:
		return unsupported("inside " + describe(parent.Node()))
	}
}

// assignment classifies `v := call()`.
func assignment(stmt inspector.Cursor) Context {
	assign := stmt.Node().(*ast.AssignStmt)

	if assign.Tok != token.DEFINE {
		return unsupported("discarded result")
	}

	if len(assign.Lhs) != 1 || len(assign.Rhs) != 1 {
		return unsupported("multi-value declaration")
	}

	id, ok := assign.Lhs[0].(*ast.Ident)
	if !ok || id.Name == "_" {
		return unsupported("blank declaration")
	}

	return inList(Context{Variant: Declaration, Stmt: stmt, Binding: id})
}

// valueSpec classifies `var v = call()`.
func valueSpec(spec inspector.Cursor) Context {
	vspec := spec.Node().(*ast.ValueSpec)

	decl := spec.Parent()
	if kind, _ := decl.ParentEdge(); kind != edge.DeclStmt_Decl {
		return unsupported("package-level declaration")
	}

	if len(decl.Node().(*ast.GenDecl).Specs) != 1 || len(vspec.Names) != 1 || len(vspec.Values) != 1 {
		return unsupported("multi-value declaration")
	}

	if id := vspec.Names[0]; id.Name != "_" {
		return inList(Context{Variant: Declaration, Stmt: decl.Parent(), Binding: id})
	}

	return unsupported("blank declaration")
}

// chained classifies `call().Method()` and friends.
func chained(call inspector.Cursor) Context {
	chain := call

chain:
	for {
		switch kind, _ := chain.ParentEdge(); kind {
		case edge.SelectorExpr_X, edge.CallExpr_Fun, edge.IndexExpr_X, edge.IndexListExpr_X,
			edge.SliceExpr_X, edge.TypeAssertExpr_X:
			chain = chain.Parent()

		default:
			break chain
		}
	}

	stmt, reason := enclosingStmt(chain)
	if reason != "" {
		return unsupported(reason)
	}

	ctx := Context{Variant: ChainedCall, Stmt: stmt, Chain: chain}

	switch n := stmt.Node().(type) {
	case *ast.AssignStmt:
		if n.Tok != token.DEFINE {
			break
		}

		if len(n.Lhs) != 1 || len(n.Rhs) != 1 {
			return unsupported("multi-value declaration")
		}

		id, ok := n.Lhs[0].(*ast.Ident)
		if !ok || id.Name == "_" {
			return unsupported("blank declaration")
		}

		ctx.Binding, ctx.Init = id, n.Rhs[0]

	case *ast.DeclStmt:
		decl, ok := n.Decl.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR || len(decl.Specs) != 1 {
			return unsupported("multi-value declaration")
		}

		vspec, ok := decl.Specs[0].(*ast.ValueSpec)
		if !ok || len(vspec.Names) != 1 || len(vspec.Values) != 1 {
			return unsupported("multi-value declaration")
		}

		if vspec.Names[0].Name == "_" {
			return unsupported("blank declaration")
		}

		ctx.Binding, ctx.Init = vspec.Names[0], vspec.Values[0]

	case *ast.DeferStmt, *ast.GoStmt:
		return unsupported(describe(n))

	case *ast.ReturnStmt:
		if len(n.Results) == 0 {
			return unsupported("empty return")
		}
	}

	return inList(ctx)
}

// enclosingStmt returns the innermost statement containing c. The statement must
// evaluate c exactly once per execution, otherwise the reason is non-empty.
func enclosingStmt(c inspector.Cursor) (inspector.Cursor, string) {
	for {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.BinaryExpr_Y:
			if op := c.Parent().Node().(*ast.BinaryExpr).Op; op == token.LAND || op == token.LOR {
				return inspector.Cursor{}, "conditionally evaluated operand"
			}

		case edge.ForStmt_Cond:
			return inspector.Cursor{}, "loop condition"

		case edge.CaseClause_List:
			return inspector.Cursor{}, "case expression"
		}

		c = c.Parent()

		switch c.Node().(type) {
		case ast.Stmt:
			return c, ""

		case *ast.File, *ast.FuncDecl, nil:
			return inspector.Cursor{}, "outside of a function body"
		}
	}
}

// inList completes ctx with the statement list containing ctx.Stmt.
func inList(ctx Context) Context {
	var list []ast.Stmt

	kind, index := ctx.Stmt.ParentEdge()
	switch n := ctx.Stmt.Parent().Node().(type) {
	case *ast.BlockStmt:
		if kind == edge.BlockStmt_List {
			list = n.List
		}

	case *ast.CaseClause:
		if kind == edge.CaseClause_Body {
			list = n.Body
		}

	case *ast.CommClause:
		if kind == edge.CommClause_Body {
			list = n.Body
		}
	}

	if list == nil {
		return unsupported(describe(ctx.Stmt.Node()) + " inside " + describe(ctx.Stmt.Parent().Node()))
	}

	ctx.List, ctx.Index = list, index

	return ctx
}

func unsupported(reason string) Context {
	return Context{Variant: Unsupported, Index: -1, Reason: reason}
}

// describe returns a human-readable name for the node type.
func describe(node ast.Node) string {
	switch node.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.BinaryExpr:
		return "binary expression"

	case *ast.CompositeLit:
		return "composite literal"

	case *ast.IfStmt:
		return "if statement"

	case *ast.LabeledStmt:
		return "labeled statement"

	case nil:
		return "<nil>"

	default:
		return astutil.NodeDescription(node)
		// keep-sorted end
	}
}
