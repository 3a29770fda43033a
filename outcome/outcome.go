// Package outcome provides success/failure values that carry structured errors
// instead of relying on panics or bare error returns for expected failures.
//
// Example:
//
//	res := outcome.SuccessOf(user)
//	name := outcome.Map(res, func(u User) string { return u.Name })
//	name.OnFailure(func(errs []outcome.Error) {
//		log.Println(errs[0].Code())
//	})
//
// Outcome reports completion without a value, Of carries a value on success.
// Both are immutable once built and are created only through the Success and
// Failure constructors. Combinators uphold the Functor/Monad laws (see
// laws_outcome_test.go).
package outcome

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zeebo/errs"

	"github.com/Kotrecon/result-pattern/internal/diag"
)

// ErrPrecondition classifies the panic raised when a failure is built without
// errors. It signals a bug in the caller, never a domain failure.
//
// Example:
//
//	defer func() {
//		if err, ok := recover().(error); ok && outcome.ErrPrecondition.Has(err) {
//			// caller bug
//		}
//	}()
var ErrPrecondition = errs.Class("outcome")

// Error is the capability every failure reason exposes. Code and StatusCode
// are stable per error kind; Message is specific to the instance. StatusCode is
// an opaque category number and is not interpreted by this package.
type Error interface {
	error
	Message() string
	Code() string
	StatusCode() int
}

// Detailed is implemented by errors that carry a list of specific violations,
// such as validation failures.
type Detailed interface {
	Error
	Details() []string
}

// DetailsOf returns the violation list when err exposes one.
//
// Example:
//
//	if details, ok := outcome.DetailsOf(res.FirstError()); ok {
//		fmt.Println(details)
//	}
func DetailsOf(err Error) ([]string, bool) {
	d, ok := err.(Detailed)
	if !ok {
		return nil, false
	}
	return d.Details(), true
}

// Outcome represents the completion of an operation that returns no value.
// The zero value is a success.
//
// Example:
//
//	res := outcome.Failure(fault.NewForbidden())
//	fmt.Println(res.Succeeded()) // false
type Outcome struct {
	errs []Error
}

// Success constructs a successful Outcome.
func Success() Outcome {
	return Outcome{}
}

// Failure constructs a failed Outcome holding err followed by more, in order.
// It panics when any of the errors is nil.
//
// Example:
//
//	res := outcome.Failure(fault.NewConflict("email already registered"))
func Failure(err Error, more ...Error) Outcome {
	return Outcome{errs: collect(err, more)}
}

// Failures constructs a failed Outcome from an ordered error list. The list
// must not be empty; violating that is a programming error and panics. The
// slice is copied, later changes by the caller are not observed.
//
// Example:
//
//	res := outcome.Failures([]outcome.Error{first, second})
func Failures(errs []Error) Outcome {
	validate(errs)
	return Outcome{errs: clone(errs)}
}

// Succeeded reports whether the Outcome represents success.
func (o Outcome) Succeeded() bool {
	return len(o.errs) == 0
}

// Failed reports whether the Outcome represents failure.
func (o Outcome) Failed() bool {
	return len(o.errs) > 0
}

// Errors returns a copy of the errors in insertion order. It is empty on
// success.
func (o Outcome) Errors() []Error {
	return clone(o.errs)
}

// FirstError returns the first error, or nil on success.
//
// Example:
//
//	if err := res.FirstError(); err != nil {
//		return err.StatusCode()
//	}
func (o Outcome) FirstError() Error {
	if len(o.errs) == 0 {
		return nil
	}
	return o.errs[0]
}

// OnSuccess invokes fn when the Outcome succeeded.
//
// Example:
//
//	res.OnSuccess(func() { log.Println("saved") })
func (o Outcome) OnSuccess(fn func()) {
	if len(o.errs) == 0 {
		fn()
	}
}

// OnFailure invokes fn with the errors when the Outcome failed.
//
// Example:
//
//	res.OnFailure(func(errs []outcome.Error) {
//		log.Println(errs[0].Message())
//	})
func (o Outcome) OnFailure(fn func([]Error)) {
	if len(o.errs) > 0 {
		fn(clone(o.errs))
	}
}

// String implements fmt.Stringer for debugging.
func (o Outcome) String() string {
	if len(o.errs) == 0 {
		return "Success"
	}
	return "Failure(" + describe(o.errs) + ")"
}

// WithValue re-enters the value-carrying form after a value-less step. A
// failed Outcome keeps its error list and value is dropped.
//
// Example:
//
//	saved := outcome.WithValue(repo.Save(user), user)
func WithValue[T any](o Outcome, value T) Of[T] {
	if len(o.errs) == 0 {
		return SuccessOf(value)
	}
	return Of[T]{errs: o.errs}
}

func collect(err Error, more []Error) []Error {
	out := make([]Error, 0, len(more)+1)
	out = append(out, err)
	out = append(out, more...)
	validate(out)
	return out
}

func validate(in []Error) {
	if len(in) == 0 {
		panic(ErrPrecondition.New(diag.EmptyFailure))
	}
	for i, err := range in {
		if isNil(err) {
			panic(ErrPrecondition.New(diag.NilError, i))
		}
	}
}

// isNil also catches an interface holding a nil pointer, map, slice, func or chan.
func isNil(err Error) bool {
	if err == nil {
		return true
	}
	rv := reflect.ValueOf(err)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func clone(in []Error) []Error {
	if len(in) == 0 {
		return []Error{}
	}
	out := make([]Error, len(in))
	copy(out, in)
	return out
}

func describe(in []Error) string {
	parts := make([]string, 0, len(in))
	for _, err := range in {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Code(), err.Message()))
	}
	return strings.Join(parts, "; ")
}
