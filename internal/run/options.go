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
	"fmt"

	"fillmore-labs.com/leakscope/internal/config"
	"fillmore-labs.com/leakscope/internal/resource"
)

// Options represent configuration options for the leakscope analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Resources are additional resource specifications in textual form.
	Resources []string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

// ResourceSet returns the resources to check.
func (r *Options) ResourceSet() (resource.Set, error) {
	var specs []resource.Spec
	if r.Behavior.Enabled(config.DefaultResources) {
		specs = resource.Defaults()
	}

	for _, s := range r.Resources {
		list, err := resource.ParseList(s)
		if err != nil {
			return resource.Set{}, fmt.Errorf("leakscope: %w", err)
		}

		specs = append(specs, list...)
	}

	return resource.NewSet(specs...), nil
}
