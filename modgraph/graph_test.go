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

package modgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/accessor/apis"
	"dirpx.dev/accessor/config"
	"dirpx.dev/accessor/modgraph"
)

const caller = "example.com/caller"

func newGraph(opts ...config.Option) apis.ModuleGraph {
	return modgraph.New(config.NewConfig(opts...),
		modgraph.WithModules(caller, "example.com/lib", "example.com/lib/v2", "example.com/lib"))
}

func TestLocate(t *testing.T) {
	g := newGraph()

	cases := []struct {
		path string
		want apis.Package
	}{
		{"example.com/lib/pkg", apis.Package{Module: "example.com/lib", Path: "example.com/lib/pkg"}},
		{"example.com/lib/v2/pkg", apis.Package{Module: "example.com/lib/v2", Path: "example.com/lib/v2/pkg"}},
		{"example.com/library", apis.Package{Module: "example.com/library", Path: "example.com/library"}},
		{"example.com/caller", apis.Package{Module: caller, Path: caller}},
		{"net/http", apis.Package{Module: modgraph.StdModule, Path: "net/http"}},
		{"", apis.Package{}},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Locate(tc.path))
		})
	}
}

func TestExports_InternalRule(t *testing.T) {
	g := newGraph()

	cases := []struct {
		path string
		to   string
		want bool
	}{
		{"example.com/lib/pkg", caller, true},
		{"example.com/lib/internal/x", caller, false},
		{"example.com/lib/internal", caller, false},
		{"example.com/lib/internal/x", "example.com/lib/tools", true},
		{"example.com/caller/internal/x", caller, true},
		{"internal/abi", caller, false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Exports(g.Locate(tc.path), tc.to))
		})
	}
}

func TestOpen_DefaultPolicy(t *testing.T) {
	g := newGraph()
	pkg := g.Locate("example.com/lib/pkg")

	assert.False(t, g.IsOpen(pkg, caller))
	require.NoError(t, g.Open(pkg, caller))
	assert.True(t, g.IsOpen(pkg, caller))

	// Opening again is a no-op.
	require.NoError(t, g.Open(pkg, caller))
	assert.Equal(t, 1, g.Count())
	assert.Equal(t, []apis.Opening{{Package: pkg, To: caller}}, g.Entries())
}

func TestOpen_SameModuleAlwaysOpen(t *testing.T) {
	g := newGraph(config.WithOpens(""))
	pkg := g.Locate("example.com/caller/sub")

	assert.True(t, g.IsOpen(pkg, caller))
	require.NoError(t, g.Open(pkg, caller))
	assert.Zero(t, g.Count())
}

func TestOpen_Sealed(t *testing.T) {
	g := newGraph()

	err := g.Open(g.Locate("internal/abi"), caller)
	require.ErrorIs(t, err, modgraph.ErrSealed)

	err = g.Open(g.Locate("runtime/debug"), caller)
	require.ErrorIs(t, err, modgraph.ErrSealed)
	assert.False(t, g.IsOpen(g.Locate("runtime/debug"), caller))
	assert.Zero(t, g.Count())
}

func TestOpen_SealedWinsOverOpens(t *testing.T) {
	g := newGraph(config.WithOpens("*"), config.WithSealed("example.com/lib/secret"))

	require.ErrorIs(t, g.Open(g.Locate("example.com/lib/secret/x"), caller), modgraph.ErrSealed)
	require.NoError(t, g.Open(g.Locate("example.com/lib/public"), caller))
}

func TestOpen_NotOpenable(t *testing.T) {
	g := newGraph(config.WithOpens("example.com/lib/v2"))

	err := g.Open(g.Locate("example.com/lib/pkg"), caller)
	require.ErrorIs(t, err, modgraph.ErrNotOpenable)
	assert.Contains(t, err.Error(), "ACCESSOR_OPENS")

	// The refusal is memoized.
	require.ErrorIs(t, g.Open(g.Locate("example.com/lib/pkg"), caller), modgraph.ErrNotOpenable)

	require.NoError(t, g.Open(g.Locate("example.com/lib/v2/pkg"), caller))
	assert.Equal(t, 1, g.Count())
}

func TestOpen_PerTargetModule(t *testing.T) {
	g := newGraph()
	pkg := g.Locate("example.com/lib/pkg")

	require.NoError(t, g.Open(pkg, caller))
	assert.False(t, g.IsOpen(pkg, "example.com/other"))
	require.NoError(t, g.Open(pkg, "example.com/other"))
	assert.Equal(t, 2, g.Count())
}

func TestNew_BuildInfoModules(t *testing.T) {
	// Without WithModules the graph still locates standard library packages.
	g := modgraph.New(config.DefaultConfig())
	assert.Equal(t, modgraph.StdModule, g.Locate("strings").Module)
}
