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
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/mod/module"

	"dirpx.dev/accessor/apis"
)

var (
	// ErrInvalidMode is returned for an unknown selection mode.
	ErrInvalidMode = errors.New("accessor(config): invalid mode")
	// ErrInvalidVersion is returned for a version that is not a Go toolchain version.
	ErrInvalidVersion = errors.New("accessor(config): invalid version")
	// ErrInvalidPattern is returned for a malformed Opens or Sealed pattern.
	ErrInvalidPattern = errors.New("accessor(config): invalid pattern")
	// ErrInvalidModule is returned for a malformed caller module path.
	ErrInvalidModule = errors.New("accessor(config): invalid caller module")
)

// Validate reports every problem in cfg as a single aggregated error, or nil.
func Validate(cfg apis.Config) error {
	var result *multierror.Error

	switch cfg.Mode {
	case apis.ModeAuto, apis.ModeReflect, apis.ModeModule:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode))
	}

	if _, ok := Semver(cfg.ModuleVersion); !ok {
		result = multierror.Append(result, fmt.Errorf("%w: module version %q", ErrInvalidVersion, cfg.ModuleVersion))
	}
	// Development toolchains are accepted as host versions.
	if h := cfg.HostVersion; h != "" && !strings.HasPrefix(h, "devel") {
		if _, ok := Semver(h); !ok {
			result = multierror.Append(result, fmt.Errorf("%w: host version %q", ErrInvalidVersion, h))
		}
	}

	if cfg.CallerModule != "" {
		if err := module.CheckImportPath(cfg.CallerModule); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: %w", ErrInvalidModule, err))
		}
	}

	for _, list := range []struct{ name, patterns string }{
		{"opens", cfg.Opens},
		{"sealed", cfg.Sealed},
	} {
		for _, p := range strings.Split(list.patterns, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, err := path.Match(p, ""); err != nil {
				result = multierror.Append(result, fmt.Errorf("%w: %s %q", ErrInvalidPattern, list.name, p))
			}
		}
	}

	return result.ErrorOrNil()
}
