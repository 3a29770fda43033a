// Package validated accumulates violations for a candidate value and turns
// them into a single validation failure.
//
// Use it for input checks and request decoding where every problem should be
// reported at once instead of stopping at the first one.
package validated

import (
	"github.com/Kotrecon/result-pattern/fault"
	"github.com/Kotrecon/result-pattern/outcome"
)

// Validated wraps a value together with the violations found so far. Values
// are immutable; every check returns a new Validated.
type Validated[T any] struct {
	value   T
	details []string
}

// Of starts validating value with no violations.
func Of[T any](value T) Validated[T] {
	return Validated[T]{value: value}
}

// Invalid constructs a Validated already carrying at least one detail.
func Invalid[T any](detail string, more ...string) Validated[T] {
	return Validated[T]{details: appendDetails([]string{detail}, more)}
}

// Ensure records detail when predicate rejects the value.
func (v Validated[T]) Ensure(predicate func(T) bool, detail string) Validated[T] {
	return v.Require(predicate(v.value), detail)
}

// Require records detail when ok is false.
func (v Validated[T]) Require(ok bool, detail string) Validated[T] {
	if ok {
		return v
	}
	return Validated[T]{value: v.value, details: appendDetails(v.details, []string{detail})}
}

// IsValid reports whether no violation was recorded.
func (v Validated[T]) IsValid() bool {
	return len(v.details) == 0
}

// Details returns the recorded violations in order. The returned slice is a copy.
func (v Validated[T]) Details() []string {
	return appendDetails(nil, v.details)
}

// Value returns the candidate value, even when invalid.
func (v Validated[T]) Value() T {
	return v.value
}

// Outcome converts the Validated into an outcome. When invalid, the failure
// holds exactly one fault.Validation with message and the ordered details.
func (v Validated[T]) Outcome(message string) outcome.Of[T] {
	if v.IsValid() {
		return outcome.SuccessOf(v.value)
	}
	return outcome.FailureOf[T](fault.NewValidation(message, v.details...))
}

// Pair holds two values validated together.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Map transforms the stored value when valid.
func Map[A any, B any](v Validated[A], fn func(A) B) Validated[B] {
	if !v.IsValid() {
		return Validated[B]{details: v.details}
	}
	return Of(fn(v.value))
}

// Zip combines two Validated values, accumulating violations from both sides.
func Zip[A any, B any](a Validated[A], b Validated[B]) Validated[Pair[A, B]] {
	if a.IsValid() && b.IsValid() {
		return Of(Pair[A, B]{First: a.value, Second: b.value})
	}
	return Validated[Pair[A, B]]{details: appendDetails(appendDetails(nil, a.details), b.details)}
}

// Traverse validates every item with fn, collecting all violations in input order.
func Traverse[A any, B any](items []A, fn func(A) Validated[B]) Validated[[]B] {
	values := make([]B, 0, len(items))
	var details []string
	for _, item := range items {
		res := fn(item)
		if res.IsValid() {
			values = append(values, res.value)
			continue
		}
		details = appendDetails(details, res.details)
	}
	if len(details) > 0 {
		return Validated[[]B]{details: details}
	}
	return Of(values)
}

func appendDetails(dst []string, src []string) []string {
	out := make([]string, 0, len(dst)+len(src))
	out = append(out, dst...)
	return append(out, src...)
}
