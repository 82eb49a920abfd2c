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

package apis

// Mode selects how the process-wide accessor strategy is chosen.
type Mode string

const (
	// ModeAuto selects by host capability detection.
	ModeAuto Mode = "auto"
	// ModeReflect forces the reflection strategy.
	ModeReflect Mode = "reflect"
	// ModeModule forces the module-aware strategy.
	ModeModule Mode = "module"
)

// Config carries read-only selection and encapsulation knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Mode controls strategy selection.
	Mode Mode

	// ModuleVersion is the lowest host Go version (e.g. "go1.21") treated as
	// enforcing module encapsulation when Mode is ModeAuto.
	ModuleVersion string

	// HostVersion overrides the detected host Go version. Empty means runtime.Version().
	HostVersion string

	// CallerModule is the module path on whose behalf members are accessed.
	// Empty means the main module from build info.
	CallerModule string

	// Opens is a comma-separated list of package path prefix patterns that may be
	// opened to the caller (same syntax as GOPRIVATE).
	Opens string

	// Sealed is a comma-separated list of package path prefix patterns that are
	// never opened, even when they match Opens.
	Sealed string
}
