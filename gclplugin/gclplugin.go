// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	leakscope "fillmore-labs.com/leakscope/analyzer"
	"fillmore-labs.com/leakscope/internal/resource"
)

func init() { register.Plugin("leakscope", New) }

// New decodes the linter settings of a .golangci.yml into a [Plugin].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return Plugin{settings: settings}, nil
}

// Plugin runs leakscope inside golangci-lint.
type Plugin struct {
	settings Settings
}

// GetLoadMode requests type information, needed to resolve resource producing calls.
func (Plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

// BuildAnalyzers rejects malformed resource specifications before any package is loaded.
// Generated files are left to golangci-lint's own exclusion rules.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	for _, spec := range p.settings.Resources {
		if _, err := resource.ParseList(spec); err != nil {
			return nil, err
		}
	}

	opts := append(p.settings.Options(), leakscope.WithGenerated(true))
	a := leakscope.New(opts...)

	return []*analysis.Analyzer{a}, nil
}
