//go:build !vectordebug

package vector

const debugChecks = false
