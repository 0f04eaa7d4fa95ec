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

package freshname_test

import (
	"go/ast"
	"go/types"
	"slices"
	"testing"

	. "fillmore-labs.com/leakscope/internal/freshname"
	"fillmore-labs.com/leakscope/internal/testsource"
)

func TestSequence(t *testing.T) {
	t.Parallel()

	got := slices.Collect(Sequence{}.Candidates("ticker"))
	if len(got) != MaxTries {
		t.Fatalf("Got %d candidates, want %d", len(got), MaxTries)
	}

	if got[0] != "ticker" || got[1] != "ticker2" || got[len(got)-1] != "ticker99" {
		t.Errorf("Got candidates %q ... %q", got[:2], got[len(got)-1])
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	taken := map[string]bool{"server": true, "server2": true}

	name, ok := Pick(Sequence{}, "server", func(name string) bool { return taken[name] })
	if !ok || name != "server3" {
		t.Errorf("Got Pick() = %q, %v, want %q", name, ok, "server3")
	}

	if _, ok := Pick(Sequence{}, "x", func(string) bool { return true }); ok {
		t.Error("Expected exhaustion")
	}

	if _, ok := Pick(Sequence{}, "type", func(string) bool { return false }); !ok {
		t.Error("Expected keyword base to fall through to a numbered candidate")
	}
}

func TestBase(t *testing.T) {
	t.Parallel()

	pkg := types.NewPackage("example.com/res", "res")
	named := types.NewNamed(types.NewTypeName(0, pkg, "Stream", nil), types.Typ[types.Int], nil)
	keyword := types.NewNamed(types.NewTypeName(0, pkg, "Func", nil), types.Typ[types.Int], nil)

	tests := []struct {
		name string
		typ  types.Type
		want string
	}{
		{"named", named, "stream"},
		{"pointer", types.NewPointer(named), "stream"},
		{"keyword", keyword, "res"},
		{"basic", types.Typ[types.String], "string"},
		{"slice", types.NewSlice(named), "res"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Base(tt.typ); got != tt.want {
				t.Errorf("Got Base() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClash(t *testing.T) {
	t.Parallel()

	const src = `x := 1
_ = x
{
	y := 2
	_ = y
}
_ = len("")`

	fset, f, fn, _ := testsource.Parse(t, src)
	pkg, _ := testsource.Check(t, fset, f)

	last := fn.Body.List[len(fn.Body.List)-1]
	scope := pkg.Scope().Innermost(last.Pos())
	block := fn.Body.List[2]

	tests := []struct {
		name  string
		nodes []ast.Node
		want  bool
	}{
		{"x", nil, true},
		{"len", nil, true},
		{"y", nil, false},
		{"y", []ast.Node{block}, true},
		{"z", []ast.Node{block}, false},
	}

	for _, tt := range tests {
		if got := Clash(scope, last.Pos(), tt.name, tt.nodes...); got != tt.want {
			t.Errorf("Got Clash(%q, %d nodes) = %v, want %v", tt.name, len(tt.nodes), got, tt.want)
		}
	}
}
