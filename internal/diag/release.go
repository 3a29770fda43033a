//go:build !outcomedebug

package diag

const verbose = false

// EmptyFailure is reported when a failure is built without any errors.
const EmptyFailure = "failure requires at least one error"

// NilError is reported when a failure is built with a nil error element.
const NilError = "failure contains a nil error at index %d"
