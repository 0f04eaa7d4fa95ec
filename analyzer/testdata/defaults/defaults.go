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

package defaults

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"
)

func poll(d time.Duration, n int) {
	t := time.NewTicker(d) // want "time.NewTicker is never released, call Stop \\(lk:dcl\\)"
	for range n {
		<-t.C
	}
	fmt.Println("done")
}

func get(h http.Handler) (*http.Response, error) {
	srv := httptest.NewServer(h) // want "httptest.NewServer is never released, call Close \\(lk:dcl\\)"
	return http.Get(srv.URL)
}

func compress(w io.Writer, data []byte) {
	gzip.NewWriter(w).Write(data) // want "gzip.NewWriter is never released, call Close \\(lk:chn\\)"
}

func wait(d time.Duration) {
	<-time.NewTimer(d).C // want "time.NewTimer is never released, call Stop \\(lk:chn\\)"
}
