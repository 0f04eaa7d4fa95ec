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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/leakscope/internal/astutil"
	"fillmore-labs.com/leakscope/internal/classify"
	"fillmore-labs.com/leakscope/internal/config"
	"fillmore-labs.com/leakscope/internal/detect"
	"fillmore-labs.com/leakscope/internal/fixer"
	"fillmore-labs.com/leakscope/internal/report"
	"fillmore-labs.com/leakscope/internal/textedit"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the leakscope analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("leakscope: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	resources, err := r.ResourceSet()
	if err != nil {
		return nil, err
	}

	if resources.Len() == 0 {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "LeakScope")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())
	trace.Logf(ctx, "behavior", "%03b", r.Behavior.Value())

	ds := detect.Stage{
		Info:      p.TypesInfo,
		Resources: resources,
		Package:   in.Root(),
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		fs := fixer.Synthesizer{
			Info:   p.TypesInfo,
			Pkg:    p.Pkg,
			Fset:   p.Fset,
			File:   currentFile,
			Source: source(p, currentFile),
		}

		// Loop over all top-level declarations in this file
		for c := range f.Children() {
			switch decl := c.Node().(type) {
			case *ast.FuncDecl:
				if decl.Body == nil {
					continue
				}

				// Skip functions with nolint comment
				if decl.Doc != nil && astutil.CommentHasNoLint(decl.Doc.List[len(decl.Doc.List)-1]) {
					continue
				}

			case *ast.GenDecl:

			default:
				continue
			}

			// Stage 1: Collect unreleased resources
			leaks := ds.Leaks(ctx, c)
			if len(leaks) == 0 {
				continue
			}

			// Stage 2: Classify the contexts and synthesize fixes
			findings := r.findings(ctx, p, fs, leaks)

			// Stage 3: Generate diagnostics with suggested fixes
			report.ProcessDiagnostics(ctx, p, currentFile, findings)
		}
	}

	return nil, nil
}

// findings classifies leaks and attaches fixes where possible.
func (r *Options) findings(ctx context.Context, p *analysis.Pass, fs fixer.Synthesizer, leaks []detect.Leak) []report.Finding {
	defer trace.StartRegion(ctx, "Synthesize").End()

	fix := r.Behavior.Enabled(config.SuggestFixes) && !fs.File.Generated()

	findings := make([]report.Finding, 0, len(leaks))

	for _, leak := range leaks {
		call := leak.Call.Node()

		// Skip calls with nolint comment
		if fs.File.NoLintComment(call.Pos()) {
			continue
		}

		c := classify.Classify(leak.Call)

		finding := report.Finding{Call: call, Spec: leak.Spec, Variant: c.Variant}

		if fix && c.Variant.Fixable() {
			fixes, err := fs.Synthesize(leak.Call, leak.Spec, c)
			switch {
			case err == nil:
				finding.Fix = fixes

			case errors.Is(err, textedit.ErrConflict), errors.Is(err, textedit.ErrInvalidPosition):
				astutil.InternalError(p, call, "Can't build fix: %v", err)

			default:
				trace.Log(ctx, "nofix", err.Error())
			}
		}

		findings = append(findings, finding)
	}

	return findings
}

// source returns the content of the current file, or nil when unavailable.
func source(p *analysis.Pass, currentFile astutil.CurrentFile) []byte {
	if p.ReadFile == nil {
		return nil
	}

	content, err := p.ReadFile(currentFile.Handle().Name())
	if err != nil {
		return nil
	}

	return content
}
