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

// Method identifies a callable member.
//
// A method descriptor (KindMethod) is built from a method expression such as
// (*T).m, whose first parameter is the receiver. A func descriptor (KindFunc)
// is built from a package-level func and takes no receiver.
type Method struct {
	kind      Kind
	fn        reflect.Value
	sym       uref.FuncName
	declaring reflect.Type
}

var _ Member = (*Method)(nil)

// MethodOf resolves a method expression. fn may be a func or a reflect.Value
// holding one; the first parameter of its type is the receiver. Method values
// such as x.m are rejected with ErrNoReceiver; resolve them with FuncOf.
func MethodOf(fn any) (*Method, error) {
	m, err := newMethod(KindMethod, fn)
	if err != nil {
		return nil, err
	}
	if m.sym.Bound {
		// x.m already carries its receiver; its first parameter is an argument.
		return nil, fmt.Errorf("%w: %s is a method value; use a method expression or FuncOf", ErrNoReceiver, m.sym)
	}
	if m.fn.Type().NumIn() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoReceiver, m.sym)
	}
	m.declaring = uref.Deref(m.fn.Type().In(0))
	if p := m.declaring.PkgPath(); p != "" {
		m.sym.PkgPath = p
	}
	return m, nil
}

// FuncOf resolves a receiver-less func. fn may be a func or a reflect.Value holding one.
func FuncOf(fn any) (*Method, error) {
	return newMethod(KindFunc, fn)
}

func newMethod(kind Kind, fn any) (*Method, error) {
	rv := funcValue(fn)
	sym, err := uref.NameOf(rv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFunc, err)
	}
	return &Method{kind: kind, fn: rv, sym: sym}, nil
}

// Kind implements Member.
func (m *Method) Kind() Kind { return m.kind }

// Name implements Member.
func (m *Method) Name() string { return m.sym.Name }

// Declaring implements Member. It is nil for KindFunc.
func (m *Method) Declaring() reflect.Type { return m.declaring }

// PkgPath implements Member.
func (m *Method) PkgPath() string { return m.sym.PkgPath }

// Exported implements Member.
func (m *Method) Exported() bool { return token.IsExported(m.sym.Name) }

// HasReceiver reports whether the first parameter of Type is a receiver.
func (m *Method) HasReceiver() bool { return m.kind == KindMethod }

// Type is the func type, including the receiver for KindMethod.
func (m *Method) Type() reflect.Type { return m.fn.Type() }

// Func is the underlying func value. It may be read-only when the
// descriptor was built from a value read out of an unexported field.
func (m *Method) Func() reflect.Value { return m.fn }

// String implements Member.
func (m *Method) String() string { return m.sym.String() }
