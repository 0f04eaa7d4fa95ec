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

package classify_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/leakscope/internal/classify"
	"fillmore-labs.com/leakscope/internal/testsource"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	const decls = "use := func(any) {}\n"

	tests := []struct {
		name    string
		src     string
		want    Variant
		binding string
	}{
		{"declaration", `s := open(); use(s)`, Declaration, "s"},
		{"var declaration", `var s = open(); use(s)`, Declaration, "s"},
		{"typed var declaration", `var s *S = open(); use(s)`, Declaration, "s"},
		{"case clause", `switch { case true: s := open(); use(s) }`, Declaration, "s"},
		{"chained statement", `open().Each()`, ChainedCall, ""},
		{"chained declaration", `n := open().Count()`, ChainedCall, "n"},
		{"chained var", `var n int = open().Count()`, ChainedCall, "n"},
		{"chained assignment", `n = open().Count()`, ChainedCall, ""},
		{"chained return", `_ = func() int { return open().Count() }`, ChainedCall, ""},
		{"chained index", `use(open().Items()[0])`, ChainedCall, ""},
		{"range", `for x := range open() { use(x) }`, LoopIterable, ""},
		{"statement argument", `use(open())`, StatementExpr, ""},
		{"select clause", `select { default: use(open()) }`, StatementExpr, ""},
		{"function literal", `func() { use(open()) }()`, StatementExpr, ""},
		{"discarded", `_ = open()`, Unsupported, ""},
		{"blank declaration", `var _ = open()`, Unsupported, ""},
		{"multi-value", `n, s := 1, open(); use(n); use(s)`, Unsupported, ""},
		{"chained multi-value", `n, m := open().Pair()`, Unsupported, ""},
		{"binary expression", `_ = open() == nil`, Unsupported, ""},
		{"returned", `_ = func() any { return open() }`, Unsupported, ""},
		{"go statement", `go use(open())`, Unsupported, ""},
		{"chained defer", `defer open().Each()`, Unsupported, ""},
		{"chained if init", `if n := open().Count(); n > 0 { use(n) }`, Unsupported, ""},
		{"labeled range", `L: for range open() { break L }`, Unsupported, ""},
		{"nested call argument", `use(len(open()))`, Unsupported, ""},
		{"conditional operand", `ok := false; use(ok && open().Count() > 0)`, Unsupported, ""},
		{"conditional else operand", `ok := true; if !ok || open().Count() > 0 { use(ok) }`, Unsupported, ""},
		{"unconditional operand", `n := 1; if open().Count() > n && n > 0 { use(n) }`, ChainedCall, ""},
		{"loop condition", `for open().Count() > 0 {}`, Unsupported, ""},
		{"case expression", `switch { case open().Count() > 0: }`, Unsupported, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, f, _, _ := testsource.Parse(t, decls+tt.src)

			call := testsource.CallTo(t, f, "open")
			ctx := Classify(call)

			if ctx.Variant != tt.want {
				t.Fatalf("Classify() = %v (%s), want %v", ctx.Variant, ctx.Reason, tt.want)
			}

			switch {
			case ctx.Variant == Unsupported:
				if ctx.Reason == "" {
					t.Error("Unsupported context without reason")
				}

			case ctx.Index < 0 || ctx.Index >= len(ctx.List) || ctx.List[ctx.Index] != ctx.Stmt.Node():
				t.Errorf("Statement %d not in list of %d", ctx.Index, len(ctx.List))
			}

			if got := bindingName(ctx.Binding); got != tt.binding {
				t.Errorf("Binding = %q, want %q", got, tt.binding)
			}
		})
	}
}

func TestVariantString(t *testing.T) {
	t.Parallel()

	for v, want := range map[Variant]string{
		Unsupported:   "uns",
		ChainedCall:   "chn",
		Declaration:   "dcl",
		LoopIterable:  "rng",
		StatementExpr: "arg",
		Variant(42):   "Variant(42)",
	} {
		if got := v.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", v, got, want)
		}
	}
}

func bindingName(id *ast.Ident) string {
	if id == nil {
		return ""
	}

	return id.Name
}
