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

// Package is a Go package located in its owning module.
type Package struct {
	// Module is the owning module path ("std" for the standard library).
	Module string
	// Path is the package import path.
	Path string
}

// Opening is a single (package, target module) pair in a ModuleGraph snapshot.
type Opening struct {
	// Package is the opened package.
	Package Package
	// To is the module the package was opened to.
	To string
}

// ModuleGraph is the host's module-graph query/negotiation primitive.
// Openings are monotonic: once a package is open to a module it stays open.
// Implementations must be safe for concurrent use.
type ModuleGraph interface {
	// Locate returns the package at pkgPath with its owning module.
	Locate(pkgPath string) Package
	// Exports reports whether exported members of pkg are reachable from module to
	// without negotiation.
	Exports(pkg Package, to string) bool
	// IsOpen reports whether all members of pkg are reachable from module to.
	IsOpen(pkg Package, to string) bool
	// Open requests that pkg be opened to module to. Opening an already open
	// package is a no-op. A refusal is returned as an error.
	Open(pkg Package, to string) error
	// Entries returns a snapshot of opened pairs (order is unspecified).
	Entries() []Opening
	// Count returns the number of opened pairs.
	Count() int
}
