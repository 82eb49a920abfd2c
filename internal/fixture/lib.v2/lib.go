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

// Package lib holds unexported members behind an import path whose last
// element contains a dot, which the linker escapes in symbol names.
package lib

// Thing is constructed only through newThing.
type Thing struct {
	name string
}

func newThing(name string) *Thing { return &Thing{name: name} }

func (t *Thing) label() string { return "lib:" + t.name }

func size(t *Thing) int { return len(t.name) }

// Exported handles to the unexported members.
var (
	Ctor  = newThing
	Label = (*Thing).label
	Size  = size
)
