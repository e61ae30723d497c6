// Package failkind defines the two error kinds every public operation in
// this module returns: InvalidArgument for preconditions the library can
// cheaply detect (null handle, out-of-range id, buffer too small), and
// OperationFailed for legitimate capacity/precondition denials (push to a
// full container, pop from an empty one, no such edge to remove).
//
// Every sentinel error exported by tagged, pool, heap, graph, traversal, and
// topo wraps exactly one of these two markers, so a caller that only cares
// about the kind can branch with errors.Is(err, failkind.OperationFailed)
// without enumerating every package's sentinels, while errors.Is against a
// specific sentinel still resolves for callers that want precision.
package failkind

import "errors"

var (
	// InvalidArgument marks a caller precondition violation.
	InvalidArgument = errors.New("invalid argument")

	// OperationFailed marks a resource or state precondition denial.
	OperationFailed = errors.New("operation failed")
)
