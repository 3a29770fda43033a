//go:build outcomedebug

package diag

const verbose = true

// EmptyFailure is reported when a failure is built without any errors.
const EmptyFailure = "failure requires at least one error: the caller passed a nil or empty " +
	"error list to Failures/FailuresOf; build a success instead, or add the error " +
	"that explains why the operation failed"

// NilError is reported when a failure is built with a nil error element.
const NilError = "failure contains a nil error at index %d: every element must be a " +
	"non-nil outcome.Error"
