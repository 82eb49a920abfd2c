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
	"go/token"
	"reflect"

	uref "dirpx.dev/accessor/utils/reflect"
)

// Constructor identifies a way to create an instance of a named type.
//
// Go has no constructors; a constructor descriptor wraps a func of shape
// func(...) T or func(...) (T, error), where T is a named type or a pointer
// to one. ZeroConstructor describes allocation of a zero value instead.
type Constructor struct {
	fn        reflect.Value
	sym       uref.FuncName
	declaring reflect.Type
	zero      bool
}

var _ Member = (*Constructor)(nil)

// ConstructorOf resolves a constructor func. fn may be a func or a reflect.Value holding one.
func ConstructorOf(fn any) (*Constructor, error) {
	rv := funcValue(fn)
	sym, err := uref.NameOf(rv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFunc, err)
	}
	ft := rv.Type()
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == uref.ErrorType:
	default:
		return nil, fmt.Errorf("%w: %s must return T or (T, error)", ErrBadConstructor, sym)
	}
	declaring, err := uref.Normalize(ft.Out(0))
	if err != nil || declaring.Kind() == reflect.Interface {
		return nil, fmt.Errorf("%w: %s returns %s, not a concrete named type", ErrBadConstructor, sym, ft.Out(0))
	}
	return &Constructor{fn: rv, sym: sym, declaring: declaring}, nil
}

// ZeroConstructor describes allocating a new zero value of t; the
// instance produced is a pointer to it. t may be a pointer type.
func ZeroConstructor(t reflect.Type) (*Constructor, error) {
	declaring, err := uref.Normalize(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConstructor, err)
	}
	return &Constructor{
		sym: uref.FuncName{
			PkgPath:   declaring.PkgPath(),
			Qualified: "new(" + declaring.Name() + ")",
			Name:      declaring.Name(),
		},
		declaring: declaring,
		zero:      true,
	}, nil
}

// Kind implements Member.
func (*Constructor) Kind() Kind { return KindConstructor }

// Name implements Member.
func (c *Constructor) Name() string { return c.sym.Name }

// Declaring implements Member. It is the type being constructed.
func (c *Constructor) Declaring() reflect.Type { return c.declaring }

// PkgPath implements Member.
func (c *Constructor) PkgPath() string { return c.sym.PkgPath }

// Exported implements Member.
func (c *Constructor) Exported() bool { return token.IsExported(c.sym.Name) }

// IsZero reports whether the descriptor allocates a zero value rather than calling a func.
func (c *Constructor) IsZero() bool { return c.zero }

// Type is the constructor func type; for a zero constructor it is func() *T.
func (c *Constructor) Type() reflect.Type {
	if c.zero {
		return reflect.FuncOf(nil, []reflect.Type{reflect.PointerTo(c.declaring)}, false)
	}
	return c.fn.Type()
}

// Func is the underlying func value; invalid for a zero constructor.
func (c *Constructor) Func() reflect.Value { return c.fn }

// String implements Member.
func (c *Constructor) String() string {
	return c.sym.String()
}
