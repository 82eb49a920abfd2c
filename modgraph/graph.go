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

package modgraph

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/mod/module"

	"dirpx.dev/accessor/apis"
)

var (
	// ErrSealed is returned when a package matches a sealed pattern.
	ErrSealed = errors.New("accessor(modgraph): package is sealed")
	// ErrNotOpenable is returned when a package matches no opens pattern.
	ErrNotOpenable = errors.New("accessor(modgraph): package is not openable")
)

// Option configures a graph.
type Option func(*graph)

// WithModules replaces the module list normally read from build info.
func WithModules(mods ...string) Option {
	return func(g *graph) {
		g.mods = sortModules(mods)
	}
}

// New constructs a ModuleGraph whose negotiation policy follows cfg.Opens and cfg.Sealed.
func New(cfg apis.Config, opts ...Option) apis.ModuleGraph {
	g := &graph{
		opens:  cfg.Opens,
		sealed: cfg.Sealed,
		mods:   sortModules(buildModules()),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// graph is a ModuleGraph backed by sync.Map memoizing every negotiation.
type graph struct {
	// opens and sealed are GOPRIVATE-style prefix pattern lists.
	opens, sealed string
	// mods are known module paths, longest first.
	mods []string
	// mu guards the opened counter.
	mu sync.Mutex
	// m maps apis.Opening to its outcome (nil error on success).
	m sync.Map // map[apis.Opening]error
	// count tracks the number of successful openings.
	count int
}

// outcome wraps a negotiation result so nil errors can be stored in sync.Map.
type outcome struct{ err error }

// Locate returns the package at pkgPath with its owning module.
func (g *graph) Locate(pkgPath string) apis.Package {
	if pkgPath == "" {
		return apis.Package{}
	}
	return apis.Package{Module: moduleOf(pkgPath, g.mods), Path: pkgPath}
}

// Exports applies the internal/ visibility rule across module boundaries.
func (g *graph) Exports(pkg apis.Package, to string) bool {
	if pkg.Path == "" || pkg.Module == to {
		return true
	}
	parent, internal := internalParent(pkg.Path)
	if !internal {
		return true
	}
	return parent != "" && hasPathPrefix(to, parent)
}

// IsOpen reports whether pkg is open to module to.
func (g *graph) IsOpen(pkg apis.Package, to string) bool {
	if pkg.Path == "" || pkg.Module == to {
		return true
	}
	if v, ok := g.m.Load(apis.Opening{Package: pkg, To: to}); ok {
		return v.(outcome).err == nil
	}
	return false
}

// Open negotiates opening pkg to module to. The decision for a pair is made
// once; concurrent callers racing on the same pair observe the same outcome.
func (g *graph) Open(pkg apis.Package, to string) error {
	if pkg.Path == "" || pkg.Module == to {
		return nil
	}
	key := apis.Opening{Package: pkg, To: to}

	// Fast read path: already negotiated.
	if v, ok := g.m.Load(key); ok {
		return v.(outcome).err
	}

	v, loaded := g.m.LoadOrStore(key, outcome{err: g.decide(pkg, to)})
	res := v.(outcome)
	if !loaded && res.err == nil {
		g.mu.Lock()
		g.count++
		g.mu.Unlock()
	}
	return res.err
}

// decide applies the sealed and opens patterns.
func (g *graph) decide(pkg apis.Package, to string) error {
	if module.MatchPrefixPatterns(g.sealed, pkg.Path) {
		return fmt.Errorf("%w: %s (module %s) cannot be opened to %s", ErrSealed, pkg.Path, pkg.Module, to)
	}
	if !module.MatchPrefixPatterns(g.opens, pkg.Path) {
		return fmt.Errorf("%w: %s (module %s) is not open to %s; add it to ACCESSOR_OPENS",
			ErrNotOpenable, pkg.Path, pkg.Module, to)
	}
	return nil
}

// Entries returns a snapshot of opened pairs (order is unspecified).
func (g *graph) Entries() []apis.Opening {
	entries := make([]apis.Opening, 0, g.Count())
	g.m.Range(func(key, value any) bool {
		if value.(outcome).err == nil {
			entries = append(entries, key.(apis.Opening))
		}
		return true
	})
	return entries
}

// Count returns the number of opened pairs.
func (g *graph) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count
}
