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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	lib "dirpx.dev/accessor/internal/fixture/lib.v2"
	uref "dirpx.dev/accessor/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}

func (*A) hidden() {}

func (A) Visible() {}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
		err  error
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{}), nil},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{}), nil},
		{"ptr ptr", reflect.TypeOf((**A)(nil)), reflect.TypeOf(A{}), nil},
		{"generic", reflect.TypeOf(G[int]{}), reflect.TypeOf(G[int]{}), nil},
		{"anonymous", reflect.TypeOf(struct{}{}), nil, uref.ErrReflectTypeNotNamed},
		{"slice", reflect.TypeOf([]A{}), nil, uref.ErrReflectTypeNotNamed},
		{"nil", nil, nil, uref.ErrReflectNilType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("Normalize(%v) error = %v, want %v", tc.typ, err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestValueFor(t *testing.T) {
	strType := reflect.TypeOf("")
	anyType := reflect.TypeFor[any]()
	ptrType := reflect.TypeOf(&A{})

	if v, err := uref.ValueFor("foo", strType); err != nil || v.String() != "foo" {
		t.Fatalf("ValueFor(foo, string) = (%v, %v)", v, err)
	}
	if v, err := uref.ValueFor(42, anyType); err != nil || v.Interface() != 42 {
		t.Fatalf("ValueFor(42, any) = (%v, %v)", v, err)
	}
	if v, err := uref.ValueFor(nil, ptrType); err != nil || !v.IsNil() {
		t.Fatalf("ValueFor(nil, *A) = (%v, %v)", v, err)
	}
	if _, err := uref.ValueFor(nil, strType); !errors.Is(err, uref.ErrReflectNotAssignable) {
		t.Fatalf("ValueFor(nil, string) error = %v, want ErrReflectNotAssignable", err)
	}
	if _, err := uref.ValueFor(42, strType); !errors.Is(err, uref.ErrReflectNotAssignable) {
		t.Fatalf("ValueFor(42, string) error = %v, want ErrReflectNotAssignable", err)
	}
}

func TestNameOf(t *testing.T) {
	const pkg = "dirpx.dev/accessor/utils/reflect_test"

	cases := []struct {
		name      string
		fn        any
		qualified string
		ident     string
	}{
		{"pointer method expression", (*A).hidden, "(*A).hidden", "hidden"},
		{"value method expression", A.Visible, "A.Visible", "Visible"},
		{"package func", uref.Deref, "Deref", "Deref"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.NameOf(reflect.ValueOf(tc.fn))
			if err != nil {
				t.Fatalf("NameOf: %v", err)
			}
			if got.Qualified != tc.qualified || got.Name != tc.ident {
				t.Fatalf("NameOf = %+v, want qualified %q name %q", got, tc.qualified, tc.ident)
			}
			if tc.name != "package func" && got.PkgPath != pkg {
				t.Fatalf("PkgPath = %q, want %q", got.PkgPath, pkg)
			}
		})
	}

	if _, err := uref.NameOf(reflect.ValueOf(42)); !errors.Is(err, uref.ErrReflectNotFunc) {
		t.Fatalf("NameOf(42) error = %v, want ErrReflectNotFunc", err)
	}
	var nilFn func()
	if _, err := uref.NameOf(reflect.ValueOf(nilFn)); !errors.Is(err, uref.ErrReflectNotFunc) {
		t.Fatalf("NameOf(nil func) error = %v, want ErrReflectNotFunc", err)
	}
}

func TestNameOf_DottedPackagePath(t *testing.T) {
	const pkg = "dirpx.dev/accessor/internal/fixture/lib.v2"

	cases := []struct {
		fn        any
		qualified string
		str       string
	}{
		{lib.Ctor, "newThing", "lib.v2.newThing"},
		{lib.Label, "(*Thing).label", "lib.v2.(*Thing).label"},
	}
	for _, tc := range cases {
		got, err := uref.NameOf(reflect.ValueOf(tc.fn))
		if err != nil {
			t.Fatalf("NameOf: %v", err)
		}
		if got.PkgPath != pkg {
			t.Fatalf("PkgPath = %q, want %q", got.PkgPath, pkg)
		}
		if got.Qualified != tc.qualified {
			t.Fatalf("Qualified = %q, want %q", got.Qualified, tc.qualified)
		}
		if got.String() != tc.str {
			t.Fatalf("String() = %q, want %q", got.String(), tc.str)
		}
	}
}

func TestNameOf_MethodValue(t *testing.T) {
	var a A
	got, err := uref.NameOf(reflect.ValueOf(a.Visible))
	if err != nil {
		t.Fatalf("NameOf: %v", err)
	}
	if !got.Bound || got.Name != "Visible" {
		t.Fatalf("NameOf(a.Visible) = %+v, want bound Visible", got)
	}

	got, err = uref.NameOf(reflect.ValueOf(A.Visible))
	if err != nil {
		t.Fatalf("NameOf: %v", err)
	}
	if got.Bound {
		t.Fatalf("NameOf(A.Visible) reported a method value")
	}
}

func TestStripTypeParams(t *testing.T) {
	cases := map[string]string{
		"T":                        "T",
		"T[int]":                   "T",
		"T[go.shape.int].m":        "T.m",
		"(*T[pkg.K,[]pkg.V]).get":  "(*T).get",
		"Outer[int].func1[string]": "Outer.func1",
	}
	for in, want := range cases {
		if got := uref.StripTypeParams(in); got != want {
			t.Errorf("StripTypeParams(%q) = %q, want %q", in, got, want)
		}
	}
}
