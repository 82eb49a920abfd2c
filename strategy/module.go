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

package strategy

import (
	"dirpx.dev/accessor/apis"
	"dirpx.dev/accessor/descriptor"
	"dirpx.dev/accessor/failure"
)

// NewModuleStrategy creates an apis.MemberAccessor that negotiates module
// encapsulation with graph on behalf of the caller module before forcing
// accessibility. After a successful negotiation it behaves exactly like the
// reflection strategy.
func NewModuleStrategy(graph apis.ModuleGraph, caller string) apis.MemberAccessor {
	return &moduleStrategy{graph: graph, caller: caller}
}

// moduleStrategy holds no per-call state; opened packages live in the graph.
type moduleStrategy struct {
	graph  apis.ModuleGraph
	caller string
	raw    reflectStrategy
}

// Ensure moduleStrategy implements apis.MemberAccessor.
var _ apis.MemberAccessor = (*moduleStrategy)(nil)

// Name implements apis.MemberAccessor.
func (*moduleStrategy) Name() string { return "module" }

// Get implements apis.MemberAccessor.
func (s *moduleStrategy) Get(f *descriptor.Field, receiver any) (any, error) {
	if f != nil {
		if err := s.negotiate(failure.OpGet, f); err != nil {
			return nil, err
		}
	}
	return s.raw.Get(f, receiver)
}

// Set implements apis.MemberAccessor.
func (s *moduleStrategy) Set(f *descriptor.Field, receiver any, value any) error {
	if f != nil {
		if err := s.negotiate(failure.OpSet, f); err != nil {
			return err
		}
	}
	return s.raw.Set(f, receiver, value)
}

// Invoke implements apis.MemberAccessor.
func (s *moduleStrategy) Invoke(m *descriptor.Method, receiver any, args ...any) (any, error) {
	if m != nil {
		if err := s.negotiate(failure.OpInvoke, m); err != nil {
			return nil, err
		}
	}
	return s.raw.Invoke(m, receiver, args...)
}

// NewInstance implements apis.MemberAccessor.
func (s *moduleStrategy) NewInstance(c *descriptor.Constructor, args ...any) (any, error) {
	if c != nil {
		if err := s.negotiate(failure.OpNewInstance, c); err != nil {
			return nil, err
		}
	}
	return s.raw.NewInstance(c, args...)
}

// negotiate makes the package declaring m reachable from the caller module.
// A refusal is final: the raw operation is not attempted.
func (s *moduleStrategy) negotiate(op failure.Op, m descriptor.Member) error {
	pkg := s.graph.Locate(m.PkgPath())
	if m.Exported() && s.graph.Exports(pkg, s.caller) {
		return nil
	}
	if s.graph.IsOpen(pkg, s.caller) {
		return nil
	}
	if err := s.graph.Open(pkg, s.caller); err != nil {
		return failure.Encapsulation(op, m.String(), err)
	}
	return nil
}
