/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package selector

import (
	"github.com/rs/zerolog"

	"dirpx.dev/accessor/apis"
	"dirpx.dev/accessor/modgraph"
	"dirpx.dev/accessor/strategy"
)

// DefaultCallerModule is the caller module used when neither the
// configuration nor build info names one.
const DefaultCallerModule = "main"

// Option configures selection.
type Option func(*selector)

// WithDetector replaces HostEnforcesModules. A nil detector is ignored.
func WithDetector(d Detector) Option {
	return func(s *selector) {
		if d != nil {
			s.detect = d
		}
	}
}

// WithGraph supplies the module graph used by the module-aware strategy.
// By default a graph is built from the configuration.
func WithGraph(g apis.ModuleGraph) Option {
	return func(s *selector) {
		s.graph = g
	}
}

// WithLogger sets the logger that records the selection decision.
func WithLogger(l zerolog.Logger) Option {
	return func(s *selector) {
		s.log = l
	}
}

// selector holds the inputs of a single selection.
type selector struct {
	detect Detector
	graph  apis.ModuleGraph
	log    zerolog.Logger
}

// Select chooses the accessor strategy for cfg. ModeReflect and ModeModule
// force a strategy; any other mode consults the detector. The result is meant
// to be computed once and shared for the life of the process.
func Select(cfg apis.Config, opts ...Option) apis.MemberAccessor {
	s := selector{detect: HostEnforcesModules, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&s)
	}

	var enforced bool
	switch cfg.Mode {
	case apis.ModeReflect:
	case apis.ModeModule:
		enforced = true
	default:
		enforced = s.detect(cfg)
	}

	if !enforced {
		acc := strategy.NewReflectStrategy()
		s.log.Debug().
			Str("mode", string(cfg.Mode)).
			Str("strategy", acc.Name()).
			Msg("accessor strategy selected")
		return acc
	}

	caller := CallerModule(cfg)
	g := s.graph
	if g == nil {
		g = modgraph.New(cfg)
	}
	acc := strategy.NewModuleStrategy(g, caller)
	s.log.Debug().
		Str("mode", string(cfg.Mode)).
		Str("strategy", acc.Name()).
		Str("caller", caller).
		Str("opens", cfg.Opens).
		Str("sealed", cfg.Sealed).
		Msg("accessor strategy selected")
	return acc
}

// CallerModule resolves the module accessed members are opened to:
// cfg.CallerModule, then the main module from build info, then
// DefaultCallerModule.
func CallerModule(cfg apis.Config) string {
	if cfg.CallerModule != "" {
		return cfg.CallerModule
	}
	if m := modgraph.MainModule(); m != "" {
		return m
	}
	return DefaultCallerModule
}
