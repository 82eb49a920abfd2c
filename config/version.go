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

package config

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Semver converts a Go toolchain version ("go1.22.3", "go1.21rc2", "1.21")
// into a semantic version ("v1.22.3", "v1.21.0-rc2", "v1.21").
// Development toolchains ("devel ...") report ok=false.
func Semver(goVersion string) (v string, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(goVersion), "go")
	// Drop build metadata such as "go1.22.1 X:nocoverageredesign".
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	pre := ""
	if i >= 0 {
		s, pre = s[:i], s[i:]
		pre = strings.TrimPrefix(pre, "-")
	}
	if pre != "" && strings.Count(s, ".") == 1 {
		s += ".0"
	}
	v = "v" + s
	if pre != "" {
		v += "-" + pre
	}
	if !semver.IsValid(v) {
		return "", false
	}
	return v, true
}
