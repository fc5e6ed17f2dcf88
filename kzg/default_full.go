//go:build !verifyonly

package kzg

// defaultKind is the backend Default() returns.
const defaultKind = KindFull
