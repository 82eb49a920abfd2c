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

	"github.com/spf13/viper"

	"dirpx.dev/accessor/apis"
)

// EnvPrefix is the prefix of the environment variables read by FromEnv.
const EnvPrefix = "ACCESSOR"

// Configuration keys; the environment variable is EnvPrefix + "_" + upper(key).
const (
	KeyMode          = "mode"
	KeyModuleVersion = "module_version"
	KeyHostVersion   = "host_version"
	KeyCallerModule  = "caller_module"
	KeyOpens         = "opens"
	KeySealed        = "sealed"
)

// FromEnv builds a configuration from ACCESSOR_* environment variables layered
// over the defaults, and validates it. On a validation error the returned
// configuration is still populated so callers may choose to fall back.
func FromEnv() (apis.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	def := DefaultConfig()
	v.SetDefault(KeyMode, string(def.Mode))
	v.SetDefault(KeyModuleVersion, def.ModuleVersion)
	v.SetDefault(KeyHostVersion, def.HostVersion)
	v.SetDefault(KeyCallerModule, def.CallerModule)
	v.SetDefault(KeyOpens, def.Opens)
	v.SetDefault(KeySealed, def.Sealed)
	// An empty ACCESSOR_OPENS means nothing is openable.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := NewConfig(
		WithMode(apis.Mode(strings.ToLower(strings.TrimSpace(v.GetString(KeyMode))))),
		WithModuleVersion(v.GetString(KeyModuleVersion)),
		WithHostVersion(v.GetString(KeyHostVersion)),
		WithCallerModule(v.GetString(KeyCallerModule)),
		WithOpens(v.GetString(KeyOpens)),
		WithSealed(v.GetString(KeySealed)),
	)
	return cfg, Validate(cfg)
}
