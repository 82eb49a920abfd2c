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

import "dirpx.dev/accessor/descriptor"

// MemberAccessor reads and writes fields, invokes methods and constructs
// instances, bypassing declared visibility. Implementations must be stateless
// between calls and safe for concurrent use.
//
// Every failure is a *failure.Error; the caller never pre-authorizes access.
type MemberAccessor interface {
	// Get reads the field on receiver.
	Get(f *descriptor.Field, receiver any) (any, error)
	// Set writes value into the field on receiver. receiver must be a pointer.
	Set(f *descriptor.Field, receiver any, value any) error
	// Invoke calls the method on receiver with args. For receiver-less funcs
	// receiver is ignored.
	Invoke(m *descriptor.Method, receiver any, args ...any) (any, error)
	// NewInstance calls the constructor with args and returns the new instance.
	NewInstance(c *descriptor.Constructor, args ...any) (any, error)
	// Name identifies the strategy.
	Name() string
}
