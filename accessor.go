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

package accessor

import (
	"reflect"
	"sync/atomic"

	"dirpx.dev/accessor/apis"
	"dirpx.dev/accessor/config"
	"dirpx.dev/accessor/descriptor"
	"dirpx.dev/accessor/failure"
	"dirpx.dev/accessor/selector"
)

// init selects the process-wide strategy once.
func init() {
	cfg, err := config.FromEnv()
	if err != nil {
		// Fall back to defaults; the problem stays visible via ConfigError.
		cfg = config.DefaultConfig()
	}
	st.Store(&state{cfg: cfg, acc: selector.Select(cfg), err: err})
}

// Get reads field f on receiver using the process-wide accessor.
func Get(f *descriptor.Field, receiver any) (any, error) {
	return st.Load().acc.Get(f, receiver)
}

// Set writes value into field f on receiver using the process-wide accessor.
func Set(f *descriptor.Field, receiver any, value any) error {
	return st.Load().acc.Set(f, receiver, value)
}

// Invoke calls m on receiver with args using the process-wide accessor.
func Invoke(m *descriptor.Method, receiver any, args ...any) (any, error) {
	return st.Load().acc.Invoke(m, receiver, args...)
}

// NewInstance calls constructor c with args using the process-wide accessor.
func NewInstance(c *descriptor.Constructor, args ...any) (any, error) {
	return st.Load().acc.NewInstance(c, args...)
}

// GetAs is Get with the result asserted to T.
func GetAs[T any](f *descriptor.Field, receiver any) (T, error) {
	v, err := Get(f, receiver)
	return as[T](failure.OpGet, f, v, err)
}

// InvokeAs is Invoke with the result asserted to T.
func InvokeAs[T any](m *descriptor.Method, receiver any, args ...any) (T, error) {
	v, err := Invoke(m, receiver, args...)
	return as[T](failure.OpInvoke, m, v, err)
}

// NewInstanceAs is NewInstance with the instance asserted to T.
func NewInstanceAs[T any](c *descriptor.Constructor, args ...any) (T, error) {
	v, err := NewInstance(c, args...)
	return as[T](failure.OpNewInstance, c, v, err)
}

// as asserts v to T. A nil result yields the zero T; any other mismatch is a
// type mismatch failure.
func as[T any](op failure.Op, m descriptor.Member, v any, err error) (T, error) {
	var zero T
	if err != nil || v == nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, failure.TypeMismatch(op, m.String(), "result of type %T is not %s", v, reflect.TypeFor[T]())
	}
	return t, nil
}

// Default returns the process-wide accessor.
func Default() apis.MemberAccessor {
	return st.Load().acc
}

// Strategy returns the name of the selected strategy ("reflect" or "module").
func Strategy() string {
	return st.Load().acc.Name()
}

// Config returns the configuration the accessor was selected with.
func Config() apis.Config {
	return st.Load().cfg
}

// ConfigError returns the error that made selection fall back to the default
// configuration, or nil.
func ConfigError() error {
	return st.Load().err
}

// st is the global accessor state.
var st atomic.Pointer[state]

// state is the global accessor snapshot. It is published once and never mutated.
type state struct {
	// cfg is the configuration used for selection.
	cfg apis.Config
	// acc is the selected strategy.
	acc apis.MemberAccessor
	// err is the configuration error, if any.
	err error
}
