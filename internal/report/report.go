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

package report

import (
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/leakscope/internal/astutil"
	"fillmore-labs.com/leakscope/internal/classify"
	"fillmore-labs.com/leakscope/internal/resource"
	"fillmore-labs.com/leakscope/internal/textedit"
)

// Finding is an unreleased resource with an optional fix.
type Finding struct {
	Call    ast.Node
	Spec    resource.Spec
	Variant classify.Variant

	// Fix encloses the resource use, empty when no fix is possible.
	Fix textedit.FixSet
}

// Message returns the diagnostic message of the finding.
func (f Finding) Message() string {
	return fmt.Sprintf("Resource returned by %s is never released, call %s (lk:%s)",
		f.Spec.Callee(), f.Spec.Release, f.Variant)
}

// Diagnostic converts the finding for the analysis framework.
func (f Finding) Diagnostic(currentFile astutil.CurrentFile) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos:      f.Call.Pos(),
		End:      f.Call.End(),
		Category: f.Variant.String(),
		Message:  f.Message(),
	}

	if !f.Fix.Empty() {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   fmt.Sprintf("Defer %s on the result of %s", f.Spec.Release, f.Spec.Callee()),
			TextEdits: f.Fix.TextEdits(currentFile.Handle()),
		}}
	}

	return diagnostic
}

// ProcessDiagnostics reports the findings of a single declaration.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, findings []Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		p.Report(f.Diagnostic(currentFile))
	}
}
