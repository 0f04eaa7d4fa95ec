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

// Package analyzer implements the leakscope static analysis pass.
//
// # Overview
//
// LeakScope detects results of resource producing calls that are never released,
// like tickers that are never stopped or servers that are never closed.
//
// # Example
//
// Before:
//
//	func poll(d time.Duration, n int) {
//	    t := time.NewTicker(d)  // ticker is never stopped
//	    for range n {
//	        <-t.C
//	    }
//	    fmt.Println("done")
//	}
//
// After applying leakscope's suggested fix:
//
//	func poll(d time.Duration, n int) {
//	    func() {
//	        t := time.NewTicker(d)
//	        defer t.Stop()  // stopped when the enclosed statements complete
//	        for range n {
//	            <-t.C
//	        }
//	    }()
//	    fmt.Println("done")
//	}
//
// # Supported Contexts
//
// A fix is suggested when the call is
//
//   - the value of a single variable declaration (lk:dcl)
//   - the receiver of a method call or field access (lk:chn)
//   - the operand of a range statement (lk:rng)
//   - an argument of a call statement (lk:arg)
//
// Other contexts are reported without a fix (lk:uns). So are statements that change
// meaning inside a function literal, like return, goto or labeled statements.
//
// # Resources
//
// By default, the standard library constructors of tickers, timers, test servers and
// compressing writers are checked. Additional resources are configured with
// "pkg/path.Func:Release" or "pkg/path.Type.Method:Release" specifications.
package analyzer
