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

package fixer

import (
	"go/ast"
	"go/token"
)

// movable checks that the statements keep their meaning inside a function literal.
func movable(stmts ...ast.Node) error {
	var reason string

	for _, stmt := range stmts {
		ast.Walk(spanVisitor{reason: &reason}, stmt)

		if reason != "" {
			return &SpanError{Reason: reason}
		}
	}

	return nil
}

// spanVisitor tracks the nesting of statements able to receive branches.
type spanVisitor struct {
	loops, breakables, switches int
	reason                      *string
}

// Visit implements [ast.Visitor].
func (v spanVisitor) Visit(n ast.Node) ast.Visitor {
	if n == nil || *v.reason != "" {
		return nil
	}

	switch n := n.(type) {
	case *ast.FuncLit:
		return nil // own control flow

	case *ast.ReturnStmt:
		*v.reason = "return statement"

	case *ast.DeferStmt:
		*v.reason = "defer statement"

	case *ast.LabeledStmt:
		*v.reason = "labeled statement"

	case *ast.BranchStmt:
		switch {
		case n.Label != nil:
			*v.reason = n.Tok.String() + " with label"

		case n.Tok == token.BREAK && v.breakables == 0,
			n.Tok == token.CONTINUE && v.loops == 0,
			n.Tok == token.FALLTHROUGH && v.switches == 0:
			*v.reason = n.Tok.String() + " statement"
		}

	case *ast.ForStmt, *ast.RangeStmt:
		v.loops++
		v.breakables++

	case *ast.SwitchStmt, *ast.TypeSwitchStmt:
		v.breakables++
		v.switches++

	case *ast.SelectStmt:
		v.breakables++
	}

	if *v.reason != "" {
		return nil
	}

	return v
}
