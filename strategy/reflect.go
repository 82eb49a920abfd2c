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
	"reflect"

	"dirpx.dev/accessor/apis"
	"dirpx.dev/accessor/descriptor"
	"dirpx.dev/accessor/failure"
	uref "dirpx.dev/accessor/utils/reflect"
)

// NewReflectStrategy creates an apis.MemberAccessor that forces accessibility
// with reflect and unsafe and assumes no module encapsulation is enforced.
// It is always a valid fallback.
func NewReflectStrategy() apis.MemberAccessor {
	return reflectStrategy{}
}

// reflectStrategy is stateless; every accessibility override is scoped to the
// reflect.Value produced for a single call.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.MemberAccessor.
var _ apis.MemberAccessor = (*reflectStrategy)(nil)

// Name implements apis.MemberAccessor.
func (reflectStrategy) Name() string { return "reflect" }

// Get reads f on receiver. receiver may be a struct value or a pointer to one.
func (reflectStrategy) Get(f *descriptor.Field, receiver any) (any, error) {
	if f == nil {
		return nil, failure.Access(failure.OpGet, "", "nil field descriptor")
	}
	fv, err := fieldValue(failure.OpGet, f, receiver, false)
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

// Set writes value into f on receiver. receiver must be a non-nil pointer.
func (reflectStrategy) Set(f *descriptor.Field, receiver any, value any) error {
	if f == nil {
		return failure.Access(failure.OpSet, "", "nil field descriptor")
	}
	fv, err := fieldValue(failure.OpSet, f, receiver, true)
	if err != nil {
		return err
	}
	v, err := uref.ValueFor(value, f.Type())
	if err != nil {
		return failure.TypeMismatch(failure.OpSet, f.String(), "%v", err)
	}
	fv.Set(v)
	return nil
}

// Invoke calls m on receiver with args.
func (reflectStrategy) Invoke(m *descriptor.Method, receiver any, args ...any) (any, error) {
	if m == nil {
		return nil, failure.Access(failure.OpInvoke, "", "nil method descriptor")
	}
	member := m.String()
	fn, ok := forceAccessible(m.Func())
	if !ok {
		return nil, failure.Access(failure.OpInvoke, member, "func value is read-only and not addressable")
	}
	ft := m.Type()

	offset := 0
	var recv reflect.Value
	if m.HasReceiver() {
		offset = 1
		var err error
		if recv, err = receiverValue(member, ft.In(0), receiver); err != nil {
			return nil, err
		}
	}

	in, err := callArgs(failure.OpInvoke, member, ft, offset, args)
	if err != nil {
		return nil, err
	}
	if offset == 1 {
		in = append([]reflect.Value{recv}, in...)
	}

	out, err := call(failure.OpInvoke, member, fn, in)
	if err != nil {
		return nil, err
	}
	return results(failure.OpInvoke, member, ft, out)
}

// NewInstance calls c with args and returns the constructed instance.
func (reflectStrategy) NewInstance(c *descriptor.Constructor, args ...any) (any, error) {
	if c == nil {
		return nil, failure.Access(failure.OpNewInstance, "", "nil constructor descriptor")
	}
	member := c.String()
	if c.IsZero() {
		if len(args) != 0 {
			return nil, failure.Access(failure.OpNewInstance, member, "expected 0 argument(s), got %d", len(args))
		}
		return reflect.New(c.Declaring()).Interface(), nil
	}

	fn, ok := forceAccessible(c.Func())
	if !ok {
		return nil, failure.Access(failure.OpNewInstance, member, "func value is read-only and not addressable")
	}
	ft := c.Type()

	in, err := callArgs(failure.OpNewInstance, member, ft, 0, args)
	if err != nil {
		return nil, err
	}
	out, err := call(failure.OpNewInstance, member, fn, in)
	if err != nil {
		return nil, err
	}
	return results(failure.OpNewInstance, member, ft, out)
}

// fieldValue locates f on receiver and returns an accessible view of it.
// When settable is true the view is writable and receiver must be addressable.
func fieldValue(op failure.Op, f *descriptor.Field, receiver any, settable bool) (reflect.Value, error) {
	member := f.String()
	rv := reflect.ValueOf(receiver)
	if !rv.IsValid() {
		return reflect.Value{}, failure.Access(op, member, "nil receiver")
	}

	switch {
	case rv.Kind() == reflect.Pointer:
		if rv.IsNil() {
			return reflect.Value{}, failure.Access(op, member, "nil receiver of type %s", rv.Type())
		}
		rv = rv.Elem()
	case settable:
		return reflect.Value{}, failure.Access(op, member, "receiver of type %s is not addressable; pass a pointer", rv.Type())
	}
	if rv.Type() != f.Declaring() {
		return reflect.Value{}, failure.Access(op, member, "receiver of type %s is not %s", reflect.TypeOf(receiver), f.Declaring())
	}
	if !rv.CanAddr() {
		// Read from an addressable copy so unexported fields can be forced.
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}

	fv, err := rv.FieldByIndexErr(f.Index())
	if err != nil {
		return reflect.Value{}, failure.Access(op, member, "%v", err)
	}
	fv, ok := forceAccessible(fv)
	if !ok {
		return reflect.Value{}, failure.Access(op, member, "field is not addressable")
	}
	return fv, nil
}

// receiverValue adapts receiver to the receiver parameter type recvType.
// Pointers are dereferenced for value receivers; an untyped nil is accepted
// for nillable receiver types.
func receiverValue(member string, recvType reflect.Type, receiver any) (reflect.Value, error) {
	if receiver == nil {
		if uref.Nillable(recvType) {
			return reflect.Zero(recvType), nil
		}
		return reflect.Value{}, failure.Access(failure.OpInvoke, member, "nil receiver for %s", recvType)
	}
	rv := reflect.ValueOf(receiver)
	if rv.Type().AssignableTo(recvType) {
		return rv, nil
	}
	if rv.Kind() == reflect.Pointer && rv.Type().Elem().AssignableTo(recvType) {
		if rv.IsNil() {
			return reflect.Value{}, failure.Access(failure.OpInvoke, member, "nil receiver of type %s", rv.Type())
		}
		return rv.Elem(), nil
	}
	return reflect.Value{}, failure.Access(failure.OpInvoke, member, "receiver of type %s is not %s", rv.Type(), recvType)
}
