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

package classify

// Variant is the syntactic context of a resource producing call, selecting the rewrite strategy.
type Variant uint8

//go:generate go tool stringer -type Variant -linecomment
const (
	// Unsupported means no structurally safe rewrite exists; the call is reported without a fix.
	Unsupported Variant = iota // uns

	// ChainedCall is a method or field access directly on the call result, which is never bound.
	ChainedCall // chn

	// Declaration binds the call result to a single new variable.
	Declaration // dcl

	// LoopIterable is a range statement iterating directly over the call result.
	LoopIterable // rng

	// StatementExpr passes the call result to a call whose result is discarded.
	StatementExpr // arg
)

// Fixable reports whether the variant has a rewrite strategy.
func (v Variant) Fixable() bool { return v != Unsupported }
