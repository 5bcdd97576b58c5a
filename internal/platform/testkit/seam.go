package testkit

import "testing"

// Swap swaps a package-level function variable for the duration of the test and restores it after
// Tests that swap a seam must not run in parallel with tests that read it
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}
