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

package report_test

import (
	"go/ast"
	"testing"

	"fillmore-labs.com/leakscope/internal/astutil"
	"fillmore-labs.com/leakscope/internal/classify"
	. "fillmore-labs.com/leakscope/internal/report"
	"fillmore-labs.com/leakscope/internal/resource"
	"fillmore-labs.com/leakscope/internal/testsource"
	"fillmore-labs.com/leakscope/internal/textedit"
)

func TestFinding(t *testing.T) {
	t.Parallel()

	const src = "package test\n\nfunc _() { _ = open }\n"

	fset, f := testsource.ParseFile(t, src)
	currentFile := astutil.NewCurrentFile(fset, f)

	var call ast.Node
	ast.Inspect(f, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.Name == "open" {
			call = id
		}

		return call == nil
	})

	fix, err := textedit.NewBuffer(currentFile.Handle()).ReplaceNode(call, "open()").Build()
	if err != nil {
		t.Fatalf("Can't build fix: %v", err)
	}

	spec := resource.Spec{PkgPath: "net/http/httptest", FuncName: "NewServer", Release: "Close"}

	tests := []struct {
		name    string
		finding Finding
		fixes   int
	}{
		{"without fix", Finding{Call: call, Spec: spec, Variant: classify.Unsupported}, 0},
		{"with fix", Finding{Call: call, Spec: spec, Variant: classify.Declaration, Fix: fix}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := tt.finding.Diagnostic(currentFile)

			want := "Resource returned by httptest.NewServer is never released, call Close (lk:" + tt.finding.Variant.String() + ")"
			if d.Message != want {
				t.Errorf("Message = %q, want %q", d.Message, want)
			}

			if d.Pos != call.Pos() || d.End != call.End() {
				t.Errorf("Range = %d-%d, want %d-%d", d.Pos, d.End, call.Pos(), call.End())
			}

			if len(d.SuggestedFixes) != tt.fixes {
				t.Fatalf("Got %d fixes, want %d", len(d.SuggestedFixes), tt.fixes)
			}

			for _, sf := range d.SuggestedFixes {
				if len(sf.TextEdits) != 1 || sf.TextEdits[0].Pos != call.Pos() || string(sf.TextEdits[0].NewText) != "open()" {
					t.Errorf("Unexpected edits %v", sf.TextEdits)
				}
			}
		})
	}
}
