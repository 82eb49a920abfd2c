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

package reflect

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"reflect"
	"runtime"
	"strings"
)

// MaxUnwrap bounds pointer unwrapping in Normalize.
const MaxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
	// ErrReflectNotAssignable is returned when a value cannot be assigned to a target type.
	ErrReflectNotAssignable = errors.New("reflect: value is not assignable")
	// ErrReflectNotFunc is returned when a func value is required.
	ErrReflectNotFunc = errors.New("reflect: value is not a func")
)

// ErrorType is the reflect.Type of the error interface.
var ErrorType = reflect.TypeFor[error]()

// Deref unwraps pointer types (at most MaxUnwrap levels) and returns the element type.
func Deref(t reflect.Type) reflect.Type {
	for i := 0; t != nil && t.Kind() == reflect.Pointer && i < MaxUnwrap; i++ {
		t = t.Elem()
	}
	return t
}

// Normalize unwraps pointers and returns the nearest named type,
// or an error if none is found.
func Normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	t = Deref(t)
	if t.Kind() == reflect.Pointer || t.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	return t, nil
}

// Nillable reports whether nil is a valid value of t.
func Nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// ValueFor converts v into a reflect.Value assignable to target.
// An untyped nil becomes the zero value of a nillable target.
func ValueFor(v any, target reflect.Type) (reflect.Value, error) {
	if v == nil {
		if Nillable(target) {
			return reflect.Zero(target), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil to %s", ErrReflectNotAssignable, target)
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(target) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrReflectNotAssignable, rv.Type(), target)
	}
	return rv, nil
}

// FuncName describes a func value by its runtime symbol.
type FuncName struct {
	// PkgPath is the import path of the declaring package.
	PkgPath string
	// Qualified is the symbol relative to the package, e.g. "(*T).m".
	Qualified string
	// Name is the bare identifier, e.g. "m".
	Name string
	// Bound reports a method value (x.m) rather than a method expression or func.
	Bound bool
}

// String returns "pkg.Qualified" using the last element of PkgPath.
func (n FuncName) String() string {
	if n.PkgPath == "" {
		return n.Qualified
	}
	return path.Base(n.PkgPath) + "." + n.Qualified
}

// NameOf resolves the runtime symbol of fn.
// Method value wrappers ("-fm") are reported as Bound and generic
// instantiation brackets are stripped.
func NameOf(fn reflect.Value) (FuncName, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return FuncName{}, ErrReflectNotFunc
	}
	if fn.IsNil() {
		return FuncName{}, fmt.Errorf("%w: nil func", ErrReflectNotFunc)
	}
	rf := runtime.FuncForPC(fn.Pointer())
	if rf == nil {
		return FuncName{}, fmt.Errorf("%w: unknown symbol", ErrReflectNotFunc)
	}
	return parseSymbol(rf.Name()), nil
}

// parseSymbol splits "dirpx.dev/pkg.(*T).m" into its parts. The linker escapes
// dots and other special bytes in the last element of the import path
// ("gopkg.in/yaml%2ev3"); PkgPath is returned unescaped.
func parseSymbol(sym string) FuncName {
	trimmed := strings.TrimSuffix(sym, "-fm")
	bound := trimmed != sym
	sym = StripTypeParams(trimmed)
	start := strings.LastIndexByte(sym, '/') + 1
	dot := strings.IndexByte(sym[start:], '.')
	if dot < 0 {
		return FuncName{Qualified: sym, Name: sym, Bound: bound}
	}
	pkg, rest := sym[:start+dot], sym[start+dot+1:]
	if p, err := url.PathUnescape(pkg); err == nil {
		pkg = p
	}
	return FuncName{
		PkgPath:   pkg,
		Qualified: rest,
		Name:      rest[strings.LastIndexByte(rest, '.')+1:],
		Bound:     bound,
	}
}

// StripTypeParams removes generic instantiation brackets: "T[int,string].m" -> "T.m".
func StripTypeParams(s string) string {
	if strings.IndexByte(s, '[') < 0 {
		return s
	}
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
