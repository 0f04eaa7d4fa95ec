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

package gclplugin

import leakscope "fillmore-labs.com/leakscope/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Fix enables suggested fixes.
	Fix *bool `json:"fix,omitzero"`
	// Defaults enables the standard library resources.
	Defaults *bool `json:"defaults,omitzero"`
	// Resources lists additional resource specifications.
	Resources []string `json:"resources,omitzero"`
}

// Options converts [Settings] into a list of [leakscope.Option] for the leakscope analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []leakscope.Option {
	var opts []leakscope.Option

	opts = appendOption(opts, s.Fix, leakscope.WithFixes)
	opts = appendOption(opts, s.Defaults, leakscope.WithDefaults)

	if len(s.Resources) > 0 {
		opts = append(opts, leakscope.WithResources(s.Resources...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [leakscope.Option] list.
func appendOption[T any](opts []leakscope.Option, value *T, constructor func(T) leakscope.Option) []leakscope.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
