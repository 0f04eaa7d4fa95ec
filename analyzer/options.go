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
package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/leakscope/internal/config"
	"fillmore-labs.com/leakscope/internal/run"
)

// Option configures specific behavior of a [New] leakscope analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fixes)
}

// WithDefaults is an [Option] to configure whether the standard library resources are checked.
func WithDefaults(defaults bool) Option { return defaultsOption{defaults: defaults} }

type defaultsOption struct{ defaults bool }

func (o defaultsOption) apply(r *run.Options) {
	r.Behavior.Set(config.DefaultResources, o.defaults)
}

func (o defaultsOption) LogAttr() slog.Attr {
	return slog.Bool("defaults", o.defaults)
}

// WithResources is an [Option] adding resource producing functions to check.
//
// A specification has the form "pkg/path.Func:Release" or "pkg/path.Type.Method:Release",
// for example "os.Open:Close". Invalid specifications fail the analysis.
func WithResources(specs ...string) Option { return resourcesOption{specs: slices.Clone(specs)} }

type resourcesOption struct{ specs []string }

func (o resourcesOption) apply(r *run.Options) {
	r.Resources = append(r.Resources, o.specs...)
}

func (o resourcesOption) LogAttr() slog.Attr {
	return slog.Any("resources", o.specs)
}
