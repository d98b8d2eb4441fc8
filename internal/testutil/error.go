// Package testutil provides small require-style helpers shared by this
// module's test files.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testT *testing.T

// SetT registers the active *testing.T so NoErr/NoErr2 can report failures
// against it.
func SetT(t *testing.T) {
	testT = t
}

// NoErr asserts err is nil and returns v, for chaining inside test setup.
func NoErr[T any](v T, err error) T {
	require.NoError(testT, err)
	return v
}

// NoErr2 asserts err is nil and returns (a, b), for setup calls that
// return two values alongside an error.
func NoErr2[A, B any](a A, b B, err error) (A, B) {
	require.NoError(testT, err)
	return a, b
}
