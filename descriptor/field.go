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

package descriptor

import (
	"fmt"
	"path"
	"reflect"
	"slices"

	uref "dirpx.dev/accessor/utils/reflect"
)

// Field identifies a struct field, including fields promoted from embedded structs.
type Field struct {
	declaring reflect.Type
	field     reflect.StructField
}

var _ Member = (*Field)(nil)

// FieldOf resolves the field called name on the struct type t.
// Pointer types are unwrapped to the struct they point to.
func FieldOf(t reflect.Type, name string) (*Field, error) {
	if t == nil {
		return nil, ErrNilType
	}
	st := uref.Deref(t)
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}
	sf, ok := st.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoSuchField, st, name)
	}
	return &Field{declaring: st, field: sf}, nil
}

// FieldFor resolves the field called name on T.
func FieldFor[T any](name string) (*Field, error) {
	return FieldOf(reflect.TypeFor[T](), name)
}

// Kind implements Member.
func (*Field) Kind() Kind { return KindField }

// Name implements Member.
func (f *Field) Name() string { return f.field.Name }

// Declaring implements Member. It is the struct type the field was resolved on.
func (f *Field) Declaring() reflect.Type { return f.declaring }

// PkgPath implements Member.
func (f *Field) PkgPath() string {
	if p := f.declaring.PkgPath(); p != "" {
		return p
	}
	// Unnamed struct types carry the package on their unexported fields only.
	return f.field.PkgPath
}

// Exported implements Member.
func (f *Field) Exported() bool { return f.field.IsExported() }

// Type is the declared type of the field.
func (f *Field) Type() reflect.Type { return f.field.Type }

// Index is the index path of the field within Declaring.
// The returned slice is a copy.
func (f *Field) Index() []int { return slices.Clone(f.field.Index) }

// String implements Member.
func (f *Field) String() string {
	if p := f.declaring.PkgPath(); p != "" {
		return path.Base(p) + "." + f.declaring.Name() + "." + f.field.Name
	}
	return f.declaring.String() + "." + f.field.Name
}
