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

package a

import (
	"fmt"

	"test/res"
)

func declaration(p string, f func(string)) {
	n := 5
	r := res.Open(p) // want "res.Open is never released.*lk:dcl"
	r.Each(f)
	n++
	fmt.Println(n)
}

func varDeclaration(p string) {
	var r *res.Stream = res.Open(p) // want "res.Open is never released.*lk:dcl"
	total := r.Count()
	fmt.Println(total)
	fmt.Println("done")
}

func chainedDeclaration(p string) {
	n := res.Open(p).Count() // want "res.Open is never released.*lk:chn"
	fmt.Println(n)
}

func chainedStatement(p string, f func(string)) {
	res.Open(p).Each(f) // want "res.Open is never released.*lk:chn"
}

func chainedReturn(p string) (int, error) {
	return res.Open(p).Count(), nil // want "res.Open is never released.*lk:chn"
}

func loop(p string) {
	for x := range res.ReadLines(p) { // want "res.ReadLines is never released.*lk:rng"
		fmt.Println(x)
	}
}

func loopClash(p string, lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
	for x := range res.ReadLines(p) { // want "res.ReadLines is never released.*lk:rng"
		fmt.Println(x)
	}
}

func statementExpr(p string) {
	res.Consume(res.Open(p)) // want "res.Open is never released.*lk:arg"
}

func method(pool *res.Pool, v int) {
	switch v {
	case 1:
		s := pool.Get() // want "res.Pool.Get is never released.*lk:dcl"
		fmt.Println(s.Count())
	default:
		fmt.Println(v)
	}
}

func closure(p string) func() int {
	return func() int {
		n := 0
		for range 3 {
			n += res.Open(p).Count() // want "res.Open is never released.*lk:chn"
		}
		return n
	}
}
