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

package nofix

import (
	"fmt"

	"test/res"
)

var global = res.Open("global") // want "res.Open is never released.*lk:uns"

func useGlobal() int { return global.Count() }

func binary(p string) bool {
	return res.Open(p) == nil // want "res.Open is never released.*lk:uns"
}

func discarded(p string) {
	_ = res.Open(p) // want "res.Open is never released.*lk:uns"
}

func argumentOfDeclaration(p string) {
	s := fmt.Sprint(res.Open(p)) // want "res.Open is never released.*lk:uns"
	fmt.Println(s)
}

func multiValue(p string) {
	n, r := 1, res.Open(p) // want "res.Open is never released.*lk:uns"
	fmt.Println(n, r.Count())
}

func returnInSpan(p string) int {
	r := res.Open(p) // want "res.Open is never released.*lk:dcl"
	if r.Count() > 0 {
		return 1
	}
	return 0
}

func breakInSpan(p string, f func(string)) {
	for range 3 {
		r := res.Open(p) // want "res.Open is never released.*lk:dcl"
		if r.Count() > 0 {
			break
		}
		r.Each(f)
	}
}

func labeled(p string) {
L:
	for x := range res.ReadLines(p) { // want "res.ReadLines is never released.*lk:uns"
		if x == "" {
			continue L
		}
	}
}

func ifInit(p string) {
	if n := res.Open(p).Count(); n > 0 { // want "res.Open is never released.*lk:uns"
		fmt.Println(n)
	}
}

func deferred(p string, f func(string)) {
	defer res.Open(p).Each(f) // want "res.Open is never released.*lk:uns"
}

func goroutine(p string) {
	go res.Consume(res.Open(p)) // want "res.Open is never released.*lk:uns"
}

func unimported(p string) {
	b := res.Open(p).Buffer() // want "res.Open is never released.*lk:chn"
	fmt.Println(b.Len())
}

func shortCircuit(p string, ok bool) bool {
	return ok && res.Open(p).Count() > 0 // want "res.Open is never released.*lk:uns"
}

func loopCondition(p string) {
	for res.Open(p).Count() > 3 { // want "res.Open is never released.*lk:uns"
		p += "."
	}
}

func redeclared(p string) (int, error) {
	n, err := 0, fmt.Errorf("none")
	r := res.Open(p) // want "res.Open is never released.*lk:dcl"
	c, err := r.Count(), error(nil)
	n += c
	return n, err
}
