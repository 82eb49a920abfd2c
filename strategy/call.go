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

	"dirpx.dev/accessor/failure"
	uref "dirpx.dev/accessor/utils/reflect"
)

// callArgs converts args into call values for fnType, starting at parameter
// offset (1 when the first parameter is a receiver). Arity problems are access
// failures; non-assignable values are type mismatches.
func callArgs(op failure.Op, member string, fnType reflect.Type, offset int, args []any) ([]reflect.Value, error) {
	numIn := fnType.NumIn() - offset
	variadic := fnType.IsVariadic()
	switch {
	case variadic && len(args) < numIn-1:
		return nil, failure.Access(op, member, "expected at least %d argument(s), got %d", numIn-1, len(args))
	case !variadic && len(args) != numIn:
		return nil, failure.Access(op, member, "expected %d argument(s), got %d", numIn, len(args))
	}

	in := make([]reflect.Value, 0, offset+len(args))
	for i, arg := range args {
		var target reflect.Type
		if variadic && i >= numIn-1 {
			target = fnType.In(fnType.NumIn() - 1).Elem()
		} else {
			target = fnType.In(offset + i)
		}
		v, err := uref.ValueFor(arg, target)
		if err != nil {
			return nil, failure.TypeMismatch(op, member, "argument %d: %v", i+1, err)
		}
		in = append(in, v)
	}
	return in, nil
}

// call invokes fn with in. A panic raised by the body is recovered and
// reported as an invocation failure carrying the panic as its cause.
func call(op failure.Op, member string, fn reflect.Value, in []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = failure.Invocation(op, member, failure.FromPanic(r))
		}
	}()
	return fn.Call(in), nil
}

// results folds call results into a single value. A non-nil trailing error is
// reported as an invocation failure; the remaining results become nil, the
// single value, or a []any.
func results(op failure.Op, member string, fnType reflect.Type, out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && fnType.Out(n-1) == uref.ErrorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, failure.Invocation(op, member, e.Interface().(error))
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return vals, nil
}
