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
	"runtime"
	"strings"

	"golang.org/x/mod/semver"

	"dirpx.dev/accessor/apis"
	"dirpx.dev/accessor/config"
)

// Detector reports whether the host enforces module encapsulation for cfg.
type Detector func(cfg apis.Config) bool

// HostEnforcesModules is the default Detector. The host version is
// cfg.HostVersion, or runtime.Version() when empty; it enforces modules when it
// is at least cfg.ModuleVersion. Development toolchains count as newest. An
// unparsable host version is treated as not enforcing.
func HostEnforcesModules(cfg apis.Config) bool {
	host := cfg.HostVersion
	if host == "" {
		host = runtime.Version()
	}
	if strings.HasPrefix(host, "devel") {
		return true
	}
	hv, ok := config.Semver(host)
	if !ok {
		return false
	}
	mv, ok := config.Semver(cfg.ModuleVersion)
	if !ok {
		mv, _ = config.Semver(config.DefaultModuleVersion)
	}
	return semver.Compare(hv, mv) >= 0
}
