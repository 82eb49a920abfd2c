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

package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the category of a member access failure.
type Kind uint8

const (
	// KindNone is reported by KindOf for errors that are not failures.
	KindNone Kind = iota
	// KindInvocation means the invoked method or constructor body itself failed.
	KindInvocation
	// KindAccess means the receiver, arity or accessibility of the member was wrong.
	KindAccess
	// KindEncapsulation means the host refused to open the declaring package.
	KindEncapsulation
	// KindTypeMismatch means a value was not assignable to the declared type.
	KindTypeMismatch
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvocation:
		return "invocation failure"
	case KindAccess:
		return "access failure"
	case KindEncapsulation:
		return "encapsulation failure"
	case KindTypeMismatch:
		return "type mismatch failure"
	default:
		return "failure"
	}
}

// Op names the accessor operation that produced a failure.
type Op string

const (
	OpGet         Op = "get"
	OpSet         Op = "set"
	OpInvoke      Op = "invoke"
	OpNewInstance Op = "newInstance"
)

var (
	// ErrInvocation matches failures of kind KindInvocation.
	ErrInvocation = errors.New("accessor: invocation failure")
	// ErrAccess matches failures of kind KindAccess and KindTypeMismatch.
	ErrAccess = errors.New("accessor: access failure")
	// ErrEncapsulation matches failures of kind KindEncapsulation.
	ErrEncapsulation = errors.New("accessor: encapsulation failure")
	// ErrTypeMismatch matches failures of kind KindTypeMismatch.
	ErrTypeMismatch = errors.New("accessor: type mismatch failure")
)

// Error is the single error contract of every accessor operation.
//
// For KindInvocation the Cause is the error raised by the member body,
// kept by identity so errors.Is and errors.As see through the wrapper.
type Error struct {
	// Kind is the failure category.
	Kind Kind
	// Op is the operation that failed.
	Op Op
	// Member is a printable form of the member descriptor.
	Member string
	// Reason is an optional human-readable detail.
	Reason string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("accessor: ")
	b.WriteString(string(e.Op))
	if e.Member != "" {
		b.WriteByte(' ')
		b.WriteString(e.Member)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause of the failure.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel of this failure's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvocation:
		return e.Kind == KindInvocation
	case ErrAccess:
		return e.Kind == KindAccess || e.Kind == KindTypeMismatch
	case ErrEncapsulation:
		return e.Kind == KindEncapsulation
	case ErrTypeMismatch:
		return e.Kind == KindTypeMismatch
	}
	return false
}

// Invocation wraps an error raised by a member body.
func Invocation(op Op, member string, cause error) *Error {
	return &Error{Kind: KindInvocation, Op: op, Member: member, Cause: cause}
}

// Access reports a receiver, arity or accessibility problem.
func Access(op Op, member string, format string, args ...any) *Error {
	return &Error{Kind: KindAccess, Op: op, Member: member, Reason: fmt.Sprintf(format, args...)}
}

// Encapsulation reports a refused module negotiation. cause is the refusal.
func Encapsulation(op Op, member string, cause error) *Error {
	return &Error{Kind: KindEncapsulation, Op: op, Member: member, Cause: cause}
}

// TypeMismatch reports a value that is not assignable to the declared type.
func TypeMismatch(op Op, member string, format string, args ...any) *Error {
	return &Error{Kind: KindTypeMismatch, Op: op, Member: member, Reason: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the outermost failure in err's chain,
// or KindNone if err carries no failure.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindNone
}

// Cause returns the cause of the outermost failure in err's chain, or nil.
func Cause(err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Cause
	}
	return nil
}
