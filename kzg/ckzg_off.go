//go:build !ckzg

package kzg

// useCKZG selects go-ethereum's pure-Go kzg4844 engine for the verify-only
// backend. Build with -tags ckzg to use the C-KZG engine instead.
const useCKZG = false
