package outcome_test

import (
	"reflect"
	"testing"
	"testing/quick"

	"github.com/Kotrecon/result-pattern/fault"
	"github.com/Kotrecon/result-pattern/outcome"
)

func TestOutcomeFunctorLaws(t *testing.T) {
	id := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	check := func(value int, ok bool) bool {
		res := build(value, ok)
		left := outcome.Map(outcome.Map(res, inc), dbl)
		right := outcome.Map(res, func(v int) int { return dbl(inc(v)) })
		return equalOutcome(res, outcome.Map(res, id)) && equalOutcome(left, right)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor laws failed: %v", err)
	}
}

func TestOutcomeMonadLaws(t *testing.T) {
	f := func(x int) outcome.Of[int] {
		if x%2 == 0 {
			return outcome.SuccessOf(x / 2)
		}
		return outcome.FailureOf[int](fault.NewBusinessRule("odd"))
	}
	g := func(x int) outcome.Of[int] {
		if x%3 == 0 {
			return outcome.FailureOf[int](fault.NewConflict("multiple of three"))
		}
		return outcome.SuccessOf(x + 3)
	}

	leftIdentity := func(x int) bool {
		return equalOutcome(outcome.Bind(outcome.SuccessOf(x), f), f(x))
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}

	rightIdentity := func(value int, ok bool) bool {
		res := build(value, ok)
		return equalOutcome(outcome.Bind(res, outcome.SuccessOf[int]), res)
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}

	associativity := func(value int, ok bool) bool {
		res := build(value, ok)
		left := outcome.Bind(outcome.Bind(res, f), g)
		right := outcome.Bind(res, func(v int) outcome.Of[int] {
			return outcome.Bind(f(v), g)
		})
		return equalOutcome(left, right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestFailurePropagationLaw(t *testing.T) {
	check := func(codes []uint8) bool {
		errs := make([]outcome.Error, 0, len(codes)+1)
		errs = append(errs, fault.NewForbidden())
		for _, c := range codes {
			errs = append(errs, fault.NewConflict(string(rune('a'+c%26))))
		}
		failed := outcome.FailuresOf[int](errs)

		called := false
		mapped := outcome.Map(failed, func(v int) int {
			called = true
			return v
		})
		bound := outcome.Bind(failed, func(v int) outcome.Of[int] {
			called = true
			return outcome.SuccessOf(v)
		})

		return !called &&
			reflect.DeepEqual(errs, mapped.Errors()) &&
			reflect.DeepEqual(errs, bound.Errors()) &&
			reflect.DeepEqual(errs, failed.ToOutcome().Errors())
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("failure propagation failed: %v", err)
	}
}

func build(value int, ok bool) outcome.Of[int] {
	if ok {
		return outcome.SuccessOf(value)
	}
	return outcome.FailureOf[int](fault.NewNotFound("Item", value))
}

func equalOutcome[T comparable](a, b outcome.Of[T]) bool {
	if a.Succeeded() != b.Succeeded() {
		return false
	}
	if !a.Succeeded() {
		return reflect.DeepEqual(a.Errors(), b.Errors())
	}
	return a.Value() == b.Value()
}
