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

// Package resource describes calls whose single result must be released.
package resource

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"unicode"

	"golang.org/x/tools/go/types/typeutil"
)

// ErrInvalidSpec is returned for malformed resource specifications.
var ErrInvalidSpec = errors.New("invalid resource specification")

// Spec describes a resource producing function or method and the method releasing its result.
//
// Textual format: "pkg/path.Func:Release" or "pkg/path.Type.Method:Release".
type Spec struct {
	PkgPath  string
	TypeName string // empty for package-level functions
	FuncName string
	Release  string
}

// Parse parses a single resource specification.
func Parse(s string) (Spec, error) {
	fun, release, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !token.IsIdentifier(release) {
		return Spec{}, fmt.Errorf("%w %q: missing release method", ErrInvalidSpec, s)
	}

	lastDot := strings.LastIndex(fun, ".")
	if lastDot <= 0 || !token.IsIdentifier(fun[lastDot+1:]) {
		return Spec{}, fmt.Errorf("%w %q: missing function", ErrInvalidSpec, s)
	}

	spec := Spec{FuncName: fun[lastDot+1:], Release: release}
	prefix := fun[:lastDot]

	// Type names start with uppercase, package names don't.
	if dot := strings.LastIndex(prefix, "."); dot > strings.LastIndex(prefix, "/") {
		if possibleType := prefix[dot+1:]; possibleType != "" && unicode.IsUpper(rune(possibleType[0])) {
			spec.TypeName = possibleType
			prefix = prefix[:dot]
		}
	}

	spec.PkgPath = prefix

	return spec, nil
}

// ParseList parses a comma separated list of resource specifications.
func ParseList(s string) ([]Spec, error) {
	var specs []Spec

	for part := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		spec, err := Parse(part)
		if err != nil {
			return nil, err
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

// String returns the textual format of the specification.
func (s Spec) String() string {
	var b strings.Builder

	b.WriteString(s.PkgPath) // ignore error
	b.WriteByte('.')         // ignore error

	if s.TypeName != "" {
		b.WriteString(s.TypeName) // ignore error
		b.WriteByte('.')          // ignore error
	}

	b.WriteString(s.FuncName) // ignore error
	b.WriteByte(':')          // ignore error
	b.WriteString(s.Release)  // ignore error

	return b.String()
}

// Callee returns a short human-readable name of the resource producing function.
func (s Spec) Callee() string {
	pkg := s.PkgPath
	if i := strings.LastIndex(pkg, "/"); i >= 0 {
		pkg = pkg[i+1:]
	}

	if s.TypeName != "" {
		return pkg + "." + s.TypeName + "." + s.FuncName
	}

	return pkg + "." + s.FuncName
}

type key struct{ pkgPath, typeName, funcName string }

// Set is an immutable-by-convention lookup table of [Spec]s.
type Set struct {
	specs map[key]Spec
}

// NewSet creates a [Set] from specs. Later specifications win.
func NewSet(specs ...Spec) Set {
	s := Set{specs: make(map[key]Spec, len(specs))}
	for _, spec := range specs {
		s.specs[key{spec.PkgPath, spec.TypeName, spec.FuncName}] = spec
	}

	return s
}

// Len returns the number of specifications.
func (s Set) Len() int { return len(s.specs) }

// Lookup returns the specification for fn.
func (s Set) Lookup(fn *types.Func) (Spec, bool) {
	pkg := fn.Pkg()
	if pkg == nil {
		return Spec{}, false
	}

	var typeName string

	if recv := fn.Signature().Recv(); recv != nil {
		recvType := types.Unalias(recv.Type())
		if ptr, ok := recvType.(*types.Pointer); ok {
			recvType = types.Unalias(ptr.Elem())
		}

		named, ok := recvType.(*types.Named)
		if !ok {
			return Spec{}, false // interface methods
		}

		typeName = named.Obj().Name()
	}

	spec, ok := s.specs[key{pkg.Path(), typeName, fn.Name()}]

	return spec, ok
}

// Match returns the specification for a call to a statically known function with exactly one result.
func (s Set) Match(info *types.Info, call *ast.CallExpr) (Spec, bool) {
	if len(s.specs) == 0 {
		return Spec{}, false
	}

	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok {
		return Spec{}, false
	}

	if fn.Signature().Results().Len() != 1 {
		return Spec{}, false
	}

	return s.Lookup(fn)
}

// Defaults returns the standard library resources checked by default.
func Defaults() []Spec {
	return []Spec{
		{PkgPath: "time", FuncName: "NewTicker", Release: "Stop"},
		{PkgPath: "time", FuncName: "NewTimer", Release: "Stop"},
		{PkgPath: "net/http/httptest", FuncName: "NewServer", Release: "Close"},
		{PkgPath: "net/http/httptest", FuncName: "NewTLSServer", Release: "Close"},
		{PkgPath: "net/http/httptest", FuncName: "NewUnstartedServer", Release: "Close"},
		{PkgPath: "compress/gzip", FuncName: "NewWriter", Release: "Close"},
		{PkgPath: "compress/zlib", FuncName: "NewWriter", Release: "Close"},
		{PkgPath: "archive/zip", FuncName: "NewWriter", Release: "Close"},
		{PkgPath: "archive/tar", FuncName: "NewWriter", Release: "Close"},
	}
}
