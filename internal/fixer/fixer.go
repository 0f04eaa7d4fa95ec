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

// Package fixer synthesizes the edits that release a resource on every exit path.
//
// The rewrite encloses the statements using the resource in an immediately invoked
// function literal, binds the resource to a name and defers its release:
//
//	func() {
//		r := open()
//		defer r.Close()
//		...
//	}()
package fixer

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/leakscope/internal/astutil"
	"fillmore-labs.com/leakscope/internal/classify"
	"fillmore-labs.com/leakscope/internal/freshname"
	"fillmore-labs.com/leakscope/internal/resource"
	"fillmore-labs.com/leakscope/internal/scopeext"
	"fillmore-labs.com/leakscope/internal/textedit"
)

var (
	// ErrUnsupported is returned for contexts without a rewrite.
	ErrUnsupported = errors.New("unsupported context")

	// ErrNoName is returned when the [freshname.Namer] has no acceptable candidate.
	ErrNoName = errors.New("no fresh name available")

	// ErrUnqualified is returned when a type can't be spelled in the current file.
	ErrUnqualified = errors.New("type can't be spelled in file")
)

// SpanError is returned when the enclosed statements can't be moved into a function literal.
type SpanError struct {
	Reason string
}

func (e *SpanError) Error() string {
	return "can't enclose " + e.Reason + " in a function literal"
}

// Synthesizer builds fixes for a single file.
type Synthesizer struct {
	Info *types.Info
	Pkg  *types.Package
	Fset *token.FileSet
	File astutil.CurrentFile

	// Source is the content of File, when available. Otherwise call expressions are
	// printed from the syntax tree.
	Source []byte

	// Namer proposes names for the resource, [freshname.Sequence] when nil.
	Namer freshname.Namer
}

// Synthesize returns the edits enclosing the use of the resource produced by call.
//
// A non-nil error explains why no fix is offered. It never invalidates the finding.
func (s Synthesizer) Synthesize(call inspector.Cursor, spec resource.Spec, ctx classify.Context) (textedit.FixSet, error) {
	switch ctx.Variant {
	case classify.Declaration:
		return s.declaration(spec, ctx)

	case classify.ChainedCall:
		return s.chained(call, spec, ctx)

	case classify.LoopIterable, classify.StatementExpr:
		return s.enclose(call, spec, ctx)

	default:
		return textedit.FixSet{}, fmt.Errorf("%w: %s", ErrUnsupported, ctx.Reason)
	}
}

// declaration encloses `v := call()` and every later statement using v.
func (s Synthesizer) declaration(spec resource.Spec, ctx classify.Context) (textedit.FixSet, error) {
	obj := s.Info.Defs[ctx.Binding]
	if obj == nil {
		return textedit.FixSet{}, fmt.Errorf("%w: %s is not defined", ErrUnsupported, ctx.Binding.Name)
	}

	last := scopeext.Cover(s.Info, obj.Parent(), ctx.List, ctx.Index, obj)

	decl, span := ctx.List[ctx.Index], ctx.List[ctx.Index+1:last+1]
	for _, stmt := range span {
		if err := movable(stmt); err != nil {
			return textedit.FixSet{}, err
		}
	}

	if err := s.redeclared(decl.Pos(), span); err != nil {
		return textedit.FixSet{}, err
	}

	b := textedit.NewBuffer(s.File.Handle())
	b.Prefix(decl, "func() {\n")
	b.InsertAt(s.File.StmtEnd(ctx.List, ctx.Index), "\ndefer "+ctx.Binding.Name+"."+spec.Release+"()")
	b.InsertAt(s.File.StmtEnd(ctx.List, last), "\n}()")

	return b.Build()
}

// redeclared rejects short variable declarations in span assigning a variable declared
// before start, which would declare a new variable inside the function literal.
func (s Synthesizer) redeclared(start token.Pos, span []ast.Stmt) error {
	for _, stmt := range span {
		assign, ok := stmt.(*ast.AssignStmt)
		if !ok || assign.Tok != token.DEFINE {
			continue
		}

		for _, lhs := range assign.Lhs {
			id, ok := lhs.(*ast.Ident)
			if !ok || s.Info.Defs[id] != nil {
				continue
			}

			if obj := s.Info.Uses[id]; obj != nil && obj.Pos() < start {
				return &SpanError{Reason: "redeclaration of " + id.Name}
			}
		}
	}

	return nil
}

// chained binds the call result before the statement containing the selector chain.
func (s Synthesizer) chained(call inspector.Cursor, spec resource.Spec, ctx classify.Context) (textedit.FixSet, error) {
	if ctx.Binding != nil {
		return s.split(call, spec, ctx)
	}

	if ret, ok := ctx.Stmt.Node().(*ast.ReturnStmt); ok {
		return s.returned(call, spec, ctx, ret)
	}

	return s.enclose(call, spec, ctx)
}

// split turns `v := call().M()` into a declaration of v followed by an enclosed assignment.
func (s Synthesizer) split(call inspector.Cursor, spec resource.Spec, ctx classify.Context) (textedit.FixSet, error) {
	stmt := ctx.Stmt.Node()

	obj := s.Info.Defs[ctx.Binding]
	if obj == nil {
		return textedit.FixSet{}, fmt.Errorf("%w: %s is not defined", ErrUnsupported, ctx.Binding.Name)
	}

	typ, ok := astutil.TypeString(s.Info, s.File.File(), s.Pkg, obj.Type())
	if !ok {
		return textedit.FixSet{}, fmt.Errorf("%w: %s", ErrUnqualified, typ)
	}

	bind, name, err := s.bind(call, spec, stmt)
	if err != nil {
		return textedit.FixSet{}, err
	}

	b := textedit.NewBuffer(s.File.Handle())
	b.ReplaceRange(stmt.Pos(), ctx.Init.Pos(), "var "+ctx.Binding.Name+" "+typ+"\nfunc() {\n"+bind+ctx.Binding.Name+" = ")
	b.ReplaceNode(call.Node(), name)
	b.InsertAt(s.File.StmtEnd(ctx.List, ctx.Index), "\n}()")

	return b.Build()
}

// returned turns `return call().M()` into a return of an invoked function literal.
func (s Synthesizer) returned(call inspector.Cursor, spec resource.Spec, ctx classify.Context, ret *ast.ReturnStmt) (textedit.FixSet, error) {
	results, err := s.results(ctx.Stmt)
	if err != nil {
		return textedit.FixSet{}, err
	}

	bind, name, err := s.bind(call, spec, ret)
	if err != nil {
		return textedit.FixSet{}, err
	}

	b := textedit.NewBuffer(s.File.Handle())
	b.ReplaceRange(ret.Pos(), ret.Results[0].Pos(), "return func() "+results+" {\n"+bind+"return ")
	b.ReplaceNode(call.Node(), name)
	b.InsertAt(s.File.StmtEnd(ctx.List, ctx.Index), "\n}()")

	return b.Build()
}

// enclose wraps the statement of ctx, binding the call result first.
func (s Synthesizer) enclose(call inspector.Cursor, spec resource.Spec, ctx classify.Context) (textedit.FixSet, error) {
	stmt := ctx.Stmt.Node()
	if err := movable(stmt); err != nil {
		return textedit.FixSet{}, err
	}

	bind, name, err := s.bind(call, spec, stmt)
	if err != nil {
		return textedit.FixSet{}, err
	}

	b := textedit.NewBuffer(s.File.Handle())
	b.Prefix(stmt, "func() {\n"+bind)
	b.ReplaceNode(call.Node(), name)
	b.InsertAt(s.File.StmtEnd(ctx.List, ctx.Index), "\n}()")

	return b.Build()
}

// bind returns the statements declaring a fresh name for the call result and deferring its release.
func (s Synthesizer) bind(call inspector.Cursor, spec resource.Spec, stmt ast.Node) (string, string, error) {
	expr := call.Node().(*ast.CallExpr)

	name, err := s.freshName(s.Info.TypeOf(expr), stmt)
	if err != nil {
		return "", "", err
	}

	text, err := s.text(expr)
	if err != nil {
		return "", "", err
	}

	return name + " := " + text + "\ndefer " + name + "." + spec.Release + "()\n", name, nil
}

// freshName picks a name usable before stmt that isn't spelled inside it.
func (s Synthesizer) freshName(t types.Type, stmt ast.Node) (string, error) {
	var namer freshname.Namer = freshname.Sequence{}
	if s.Namer != nil {
		namer = s.Namer
	}

	pos := stmt.Pos()
	scope := s.Pkg.Scope().Innermost(pos)
	base := freshname.Base(t)

	name, ok := freshname.Pick(namer, base, func(name string) bool {
		return freshname.Clash(scope, pos, name, stmt)
	})
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoName, base)
	}

	return name, nil
}

// results spells the result list of the function containing stmt.
func (s Synthesizer) results(stmt inspector.Cursor) (string, error) {
	var sig *types.Signature

	// innermost function only
	for fun := range stmt.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		sig = s.signature(fun.Node())
		break
	}

	if sig == nil || sig.Results().Len() == 0 {
		return "", fmt.Errorf("%w: no enclosing function with results", ErrUnsupported)
	}

	res := sig.Results()
	list := make([]string, 0, res.Len())

	for v := range res.Variables() {
		typ, ok := astutil.TypeString(s.Info, s.File.File(), s.Pkg, v.Type())
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnqualified, typ)
		}

		list = append(list, typ)
	}

	if len(list) == 1 {
		return list[0], nil
	}

	return "(" + strings.Join(list, ", ") + ")", nil
}

func (s Synthesizer) signature(fun ast.Node) *types.Signature {
	switch n := fun.(type) {
	case *ast.FuncDecl:
		if fn, ok := s.Info.Defs[n.Name].(*types.Func); ok {
			return fn.Signature()
		}

	case *ast.FuncLit:
		if sig, ok := s.Info.TypeOf(n).(*types.Signature); ok {
			return sig
		}
	}

	return nil
}

var rawcfg = printer.Config{Mode: printer.RawFormat}

// text returns the source of node.
func (s Synthesizer) text(node ast.Node) (string, error) {
	if handle := s.File.Handle(); s.Source != nil && handle != nil {
		start, end := handle.Offset(node.Pos()), handle.Offset(node.End())
		if end <= len(s.Source) && handle.Size() == len(s.Source) {
			return string(s.Source[start:end]), nil
		}
	}

	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, s.Fset, node); err != nil {
		return "", fmt.Errorf("can't print expression: %w", err)
	}

	return buf.String(), nil
}
