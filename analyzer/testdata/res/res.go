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

package res

import "bytes"

type Stream struct {
	buf bytes.Buffer
}

func Open(name string) *Stream {
	s := &Stream{}
	s.buf.WriteString(name)

	return s
}

func (s *Stream) Close() error { return nil }

func (s *Stream) Count() int { return s.buf.Len() }

func (s *Stream) Each(f func(string)) { f(s.buf.String()) }

func (s *Stream) Buffer() *bytes.Buffer { return &s.buf }

func Consume(s *Stream) { _ = s.Count() }

type Lines func(yield func(string) bool)

func ReadLines(name string) Lines {
	return func(yield func(string) bool) { yield(name) }
}

func (Lines) Close() error { return nil }

type Pool struct{}

func (*Pool) Get() *Stream { return &Stream{} }
