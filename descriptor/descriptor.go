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
	"errors"
	"reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("accessor(descriptor): nil reflect.Type provided")
	// ErrNotStruct is returned when a field is looked up on a non-struct type.
	ErrNotStruct = errors.New("accessor(descriptor): type is not a struct")
	// ErrNoSuchField is returned when a struct has no field of the given name.
	ErrNoSuchField = errors.New("accessor(descriptor): no such field")
	// ErrNotFunc is returned when a method or constructor is not a func value.
	ErrNotFunc = errors.New("accessor(descriptor): not a func value")
	// ErrNoReceiver is returned when a method expression takes no receiver.
	ErrNoReceiver = errors.New("accessor(descriptor): method has no receiver parameter")
	// ErrBadConstructor is returned when a func does not have a constructor shape.
	ErrBadConstructor = errors.New("accessor(descriptor): func is not a constructor")
)

// Kind identifies the member a descriptor refers to.
type Kind uint8

const (
	KindField Kind = iota + 1
	KindMethod
	KindFunc
	KindConstructor
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	case KindFunc:
		return "func"
	case KindConstructor:
		return "constructor"
	default:
		return "member"
	}
}

// Member is the common, read-only view of a resolved descriptor.
// Descriptors are immutable once constructed and safe to share.
type Member interface {
	// Kind reports what the descriptor refers to.
	Kind() Kind
	// Name is the bare Go identifier of the member.
	Name() string
	// Declaring is the named type that declares the member, or nil for package funcs.
	Declaring() reflect.Type
	// PkgPath is the import path of the package that declares the member.
	PkgPath() string
	// Exported reports whether the member is visible outside its package.
	Exported() bool
	// String returns a printable "pkg.Type.member" form.
	String() string
}

// Must panics if err is non-nil and returns d otherwise.
func Must[D Member](d D, err error) D {
	if err != nil {
		panic(err)
	}
	return d
}

// funcValue accepts a func or a reflect.Value holding one.
func funcValue(fn any) reflect.Value {
	if rv, ok := fn.(reflect.Value); ok {
		return rv
	}
	return reflect.ValueOf(fn)
}
