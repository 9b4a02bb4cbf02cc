// Package util holds small helpers shared by the kzr packages.
package util

// IsTempErr reports whether err describes a transient condition,
// such as a failed accept(2) that may succeed when retried.
func IsTempErr(err error) bool {
	t, ok := err.(interface{ Temporary() bool })
	return ok && t.Temporary()
}
