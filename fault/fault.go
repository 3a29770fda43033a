// Package fault defines the error kinds carried inside failed outcomes.
//
// Each kind has a fixed code and status; only the message varies per instance.
//
// Example:
//
//	res := outcome.FailureOf[User](fault.NewNotFound("User", 999))
//	fmt.Println(res.FirstError().StatusCode()) // 404
package fault

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Kotrecon/result-pattern/outcome"
)

// Stable machine-readable codes.
const (
	CodeValidation   = "Validation"
	CodeNotFound     = "NotFound"
	CodeForbidden    = "Forbidden"
	CodeBusinessRule = "BusinessRule"
	CodeConflict     = "Conflict"
)

// Status categories for each kind.
const (
	StatusValidation   = http.StatusUnprocessableEntity
	StatusNotFound     = http.StatusNotFound
	StatusForbidden    = http.StatusForbidden
	StatusBusinessRule = http.StatusBadRequest
	StatusConflict     = http.StatusConflict
)

const forbiddenMessage = "You do not have permission to perform this action."

var (
	_ outcome.Detailed = (*Validation)(nil)
	_ outcome.Error    = (*NotFound)(nil)
	_ outcome.Error    = (*Forbidden)(nil)
	_ outcome.Error    = (*BusinessRule)(nil)
	_ outcome.Error    = (*Conflict)(nil)
)

type base struct {
	message string
}

func (b base) Message() string {
	return b.message
}

func (b base) Error() string {
	return b.message
}

// Validation reports input that violates one or more shape or content rules.
type Validation struct {
	base
	details []string
}

// NewValidation builds a Validation error. Details are kept in order.
func NewValidation(message string, details ...string) *Validation {
	return &Validation{base: base{message: message}, details: cloneDetails(details)}
}

// Details returns a copy of the individual violations.
func (e *Validation) Details() []string {
	return cloneDetails(e.details)
}

func (e *Validation) Code() string { return CodeValidation }
func (e *Validation) StatusCode() int { return StatusValidation }

func (e *Validation) Error() string {
	if len(e.details) == 0 {
		return e.message
	}
	return e.message + ": " + strings.Join(e.details, "; ")
}

// NotFound reports a lookup by identifier that found nothing.
type NotFound struct {
	base
	entity string
	id     any
}

// NewNotFound builds a NotFound error for entity identified by id.
func NewNotFound(entity string, id any) *NotFound {
	return &NotFound{
		base:   base{message: fmt.Sprintf("%s with id %v was not found", entity, id)},
		entity: entity,
		id:     id,
	}
}

// Entity returns the name of the missing entity.
func (e *NotFound) Entity() string { return e.entity }

// ID returns the identifier used in the lookup.
func (e *NotFound) ID() any { return e.id }

func (e *NotFound) Code() string { return CodeNotFound }
func (e *NotFound) StatusCode() int { return StatusNotFound }

// Forbidden reports a caller lacking authorization for an action.
type Forbidden struct {
	base
}

// NewForbidden builds a Forbidden error with the fixed message.
func NewForbidden() *Forbidden {
	return &Forbidden{base: base{message: forbiddenMessage}}
}

func (e *Forbidden) Code() string { return CodeForbidden }
func (e *Forbidden) StatusCode() int { return StatusForbidden }

// BusinessRule reports a violated domain invariant.
type BusinessRule struct {
	base
}

// NewBusinessRule builds a BusinessRule error.
func NewBusinessRule(message string) *BusinessRule {
	return &BusinessRule{base: base{message: message}}
}

func (e *BusinessRule) Code() string { return CodeBusinessRule }
func (e *BusinessRule) StatusCode() int { return StatusBusinessRule }

// Conflict reports a requested state colliding with existing state.
type Conflict struct {
	base
}

// NewConflict builds a Conflict error.
func NewConflict(message string) *Conflict {
	return &Conflict{base: base{message: message}}
}

func (e *Conflict) Code() string { return CodeConflict }
func (e *Conflict) StatusCode() int { return StatusConflict }

func cloneDetails(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
