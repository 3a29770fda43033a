package outcome

import "fmt"

// Of represents the completion of an operation that produces a value of type T
// on success. When failed, the value is the zero value of T and must not be
// relied upon. The zero value is a success holding the zero value of T.
//
// Example:
//
//	res := outcome.SuccessOf(42)
//	value, ok := res.Get()
//	fmt.Println(value, ok) // 42 true
type Of[T any] struct {
	value T
	errs  []Error
}

// SuccessOf constructs a successful Of carrying value.
//
// Example:
//
//	res := outcome.SuccessOf(User{ID: 1})
//	fmt.Println(res.Succeeded()) // true
func SuccessOf[T any](value T) Of[T] {
	return Of[T]{value: value}
}

// FailureOf constructs a failed Of holding err followed by more, in order. It
// panics when any of the errors is nil.
//
// Example:
//
//	res := outcome.FailureOf[User](fault.NewNotFound("User", 999))
func FailureOf[T any](err Error, more ...Error) Of[T] {
	return Of[T]{errs: collect(err, more)}
}

// FailuresOf constructs a failed Of from an ordered error list. An empty list
// is a programming error and panics.
//
// Example:
//
//	res := outcome.FailuresOf[User](errs)
func FailuresOf[T any](errs []Error) Of[T] {
	validate(errs)
	return Of[T]{errs: clone(errs)}
}

// Succeeded reports whether the Of represents success.
func (o Of[T]) Succeeded() bool {
	return len(o.errs) == 0
}

// Failed reports whether the Of represents failure.
func (o Of[T]) Failed() bool {
	return len(o.errs) > 0
}

// Value returns the stored value on success and the zero value of T otherwise.
func (o Of[T]) Value() T {
	if len(o.errs) > 0 {
		var zero T
		return zero
	}
	return o.value
}

// Get returns the value along with whether the Of succeeded, mirroring Go's
// comma-ok idiom.
//
// Example:
//
//	if user, ok := res.Get(); ok {
//		fmt.Println(user.Name)
//	}
func (o Of[T]) Get() (T, bool) {
	return o.Value(), len(o.errs) == 0
}

// Errors returns a copy of the errors in insertion order.
func (o Of[T]) Errors() []Error {
	return clone(o.errs)
}

// FirstError returns the first error, or nil on success.
func (o Of[T]) FirstError() Error {
	if len(o.errs) == 0 {
		return nil
	}
	return o.errs[0]
}

// OnSuccess invokes fn with the value when the Of succeeded.
//
// Example:
//
//	res.OnSuccess(func(u User) { cache.Put(u) })
func (o Of[T]) OnSuccess(fn func(T)) {
	if len(o.errs) == 0 {
		fn(o.value)
	}
}

// OnFailure invokes fn with the errors when the Of failed.
//
// Example:
//
//	res.OnFailure(func(errs []outcome.Error) {
//		log.Println(errs[0].Code())
//	})
func (o Of[T]) OnFailure(fn func([]Error)) {
	if len(o.errs) > 0 {
		fn(clone(o.errs))
	}
}

// ToOutcome discards the value, keeping only success or the error list.
//
// Example:
//
//	done := created.ToOutcome()
func (o Of[T]) ToOutcome() Outcome {
	return Outcome{errs: o.errs}
}

// String implements fmt.Stringer for debugging.
func (o Of[T]) String() string {
	if len(o.errs) == 0 {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return "Failure(" + describe(o.errs) + ")"
}

// Map transforms the value on success. A failed input is propagated with the
// same error list and fn is not called.
//
// Example:
//
//	names := outcome.Map(res, func(u User) string { return u.Name })
func Map[T any, U any](o Of[T], fn func(T) U) Of[U] {
	if len(o.errs) > 0 {
		return Of[U]{errs: o.errs}
	}
	return SuccessOf(fn(o.value))
}

// Bind chains a step that may itself fail. On success the result of fn is
// returned as is; a failed input is propagated with the same error list and
// fn is not called.
//
// Example:
//
//	active := outcome.Bind(svc.Get(id), svc.RequireActive)
func Bind[T any, U any](o Of[T], fn func(T) Of[U]) Of[U] {
	if len(o.errs) > 0 {
		return Of[U]{errs: o.errs}
	}
	return fn(o.value)
}
