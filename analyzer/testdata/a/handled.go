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
	"net/http/httptest"
	"testing"
	"time"

	"test/res"
)

type holder struct {
	s *res.Stream
}

func released(p string) int {
	s := res.Open(p)
	defer s.Close()

	return s.Count()
}

func returned(p string) *res.Stream {
	return res.Open(p)
}

func stored(p string) *holder {
	return &holder{s: res.Open(p)}
}

func assigned(p string, h *holder) {
	h.s = res.Open(p)
}

func sent(p string, ch chan<- *res.Stream) {
	ch <- res.Open(p)
}

func escaped(p string) *res.Stream {
	s := res.Open(p)
	s.Each(func(string) {})

	return s
}

func cleanup(t *testing.T) {
	srv := httptest.NewServer(nil)
	t.Cleanup(srv.Close)
}

func stopped(d time.Duration) bool {
	return time.NewTimer(d).Stop()
}

func collected(p string) []*res.Stream {
	var all []*res.Stream

	s := res.Open(p)
	all = append(all, s)

	return all
}

func suppressed(p string, f func(string)) {
	res.Open(p).Each(f) //nolint:leakscope
}

//nolint:leakscope
func suppressedFunc(p string) {
	_ = res.Open(p)
}
