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
	"dirpx.dev/accessor/apis"
)

const (
	// DefaultMode represents the default for Mode.
	// Strategy selection is driven by host capability detection.
	DefaultMode = apis.ModeAuto
	// DefaultModuleVersion represents the default for ModuleVersion.
	DefaultModuleVersion = "go1.21"
	// DefaultOpens represents the default for Opens.
	// Every package may be opened unless sealed.
	DefaultOpens = "*"
	// DefaultSealed represents the default for Sealed.
	DefaultSealed = "internal,runtime,unsafe"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure Mode is valid.
	if cfg.Mode == "" {
		cfg.Mode = DefaultMode
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Mode:          DefaultMode,
		ModuleVersion: DefaultModuleVersion,
		Opens:         DefaultOpens,
		Sealed:        DefaultSealed,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMode sets the Mode option.
// An empty mode resets to the default.
func WithMode(mode apis.Mode) Option {
	return func(c *apis.Config) {
		if mode == "" {
			c.Mode = DefaultMode
			return
		}
		c.Mode = mode
	}
}

// WithModuleVersion sets the lowest host version considered module-enforcing.
func WithModuleVersion(v string) Option {
	return func(c *apis.Config) {
		c.ModuleVersion = v
	}
}

// WithHostVersion overrides the detected host version.
func WithHostVersion(v string) Option {
	return func(c *apis.Config) {
		c.HostVersion = v
	}
}

// WithCallerModule sets the module members are accessed on behalf of.
func WithCallerModule(mod string) Option {
	return func(c *apis.Config) {
		c.CallerModule = mod
	}
}

// WithOpens sets the comma-separated patterns of packages that may be opened.
func WithOpens(patterns string) Option {
	return func(c *apis.Config) {
		c.Opens = patterns
	}
}

// WithSealed sets the comma-separated patterns of packages that are never opened.
func WithSealed(patterns string) Option {
	return func(c *apis.Config) {
		c.Sealed = patterns
	}
}
