//go:build vectordebug

package vector

// debugChecks enables precondition assertions: indexed access, removal from
// an empty vector, and storage offsets panic with a descriptive message
// instead of relying on the runtime's slice bounds.
const debugChecks = true
