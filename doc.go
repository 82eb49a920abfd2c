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

// Package accessor provides a process-wide member accessor: uniform,
// reflective access to struct fields, methods, funcs and constructors
// regardless of whether they are exported.
//
// accessor is the layer a test double or instrumentation library sits on
// when it has to read a private field, call an unexported method, or build a
// value through an unexported constructor. It answers four questions:
//
//	accessor.Get(field, receiver)          // read a field
//	accessor.Set(field, receiver, value)   // write a field
//	accessor.Invoke(method, receiver, ...) // call a method or func
//	accessor.NewInstance(ctor, ...)        // construct a value
//
// Members are named by descriptors from package descriptor, resolved once
// and reused:
//
//	label := descriptor.Must(descriptor.FieldFor[widget]("label"))
//	rename := descriptor.Must(descriptor.MethodOf((*widget).rename))
//	ctor := descriptor.Must(descriptor.ConstructorOf(newWidget))
//
// # Strategies
//
// Two interchangeable strategies implement apis.MemberAccessor:
//
//   - reflect: forces accessibility of the target for the duration of a
//     single call and performs the operation. It assumes no module
//     encapsulation and is always a valid fallback.
//
//   - module: before forcing accessibility, it asks an apis.ModuleGraph to
//     open the package declaring the member to the caller module. The
//     decision follows the Opens and Sealed patterns of the configuration
//     (GOPRIVATE syntax) and is memoized per package and caller. A refusal
//     is reported as an encapsulation failure and the operation is not
//     attempted.
//
// For members the caller is already allowed to reach, both strategies
// return identical values and identical failures.
//
// # Selection
//
// Exactly one strategy is chosen when the package is initialized and it is
// never re-evaluated. The choice is made by selector.Select from the
// ACCESSOR_* environment (see config.FromEnv):
//
//	ACCESSOR_MODE=auto|reflect|module
//	ACCESSOR_MODULE_VERSION=go1.21
//	ACCESSOR_HOST_VERSION=
//	ACCESSOR_CALLER_MODULE=
//	ACCESSOR_OPENS=*
//	ACCESSOR_SEALED=internal,runtime,unsafe
//
// In auto mode the module strategy is used when the host toolchain is at
// least ACCESSOR_MODULE_VERSION. An invalid environment falls back to the
// defaults; the problem is reported by ConfigError.
//
// Programs that need a differently configured accessor build their own with
// selector.Select and use it directly instead of the package-level helpers.
//
// # Failures
//
// Every operation reports one of four failure kinds from package failure:
//
//   - invocation: the member's code ran and raised, either by panicking or
//     by returning a non-nil trailing error. The original error is the
//     cause and is preserved by identity.
//   - access: the member exists but could not be reached: a wrong receiver,
//     a wrong number of arguments, or a read-only receiver for Set.
//   - encapsulation: the module graph refused to open the declaring package.
//   - type mismatch: a value is not assignable to the field or parameter
//     type. It is a refinement of access and matches failure.ErrAccess.
//
// Use errors.Is with the failure sentinels, or failure.KindOf, to tell them
// apart.
//
// # Concurrency model
//
// The selected strategy is published once through an atomic pointer and
// read lock-free on every call. Strategies hold no per-call state; the
// module graph memoizes its decisions in a sync.Map, so racing negotiations
// for the same package are idempotent.
package accessor
