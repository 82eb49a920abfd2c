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
	"cmp"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
)

// StdModule is the module that owns standard library packages.
const StdModule = "std"

// buildModules lists the main module and its dependencies from build info.
var buildModules = sync.OnceValue(func() []string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	mods := make([]string, 0, len(bi.Deps)+1)
	if bi.Main.Path != "" {
		mods = append(mods, bi.Main.Path)
	}
	for _, d := range bi.Deps {
		mods = append(mods, d.Path)
	}
	return mods
})

// MainModule returns the main module path from build info, or "" if unknown.
func MainModule() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return bi.Main.Path
}

// sortModules orders module paths longest first so nested modules win.
func sortModules(mods []string) []string {
	out := slices.Clone(mods)
	slices.SortFunc(out, func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), cmp.Compare(a, b))
	})
	return slices.Compact(out)
}

// moduleOf returns the module owning pkgPath. mods must be sorted longest first.
// Paths of unknown modules form their own unnamed module.
func moduleOf(pkgPath string, mods []string) string {
	for _, m := range mods {
		if hasPathPrefix(pkgPath, m) {
			return m
		}
	}
	if isStd(pkgPath) {
		return StdModule
	}
	return pkgPath
}

// isStd reports whether pkgPath is a standard library path: its first
// element contains no dot.
func isStd(pkgPath string) bool {
	first, _, _ := strings.Cut(pkgPath, "/")
	return first != "" && !strings.Contains(first, ".")
}

// hasPathPrefix reports whether p equals prefix or lies beneath it.
func hasPathPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// internalParent returns the directory whose subtree may import pkgPath under
// the internal/ rule, or ok=false if pkgPath is not an internal package.
func internalParent(pkgPath string) (parent string, ok bool) {
	switch {
	case pkgPath == "internal" || strings.HasPrefix(pkgPath, "internal/"):
		return "", true
	case strings.HasSuffix(pkgPath, "/internal"):
		return strings.TrimSuffix(pkgPath, "/internal"), true
	}
	if i := strings.LastIndex(pkgPath, "/internal/"); i >= 0 {
		return pkgPath[:i], true
	}
	return "", false
}
