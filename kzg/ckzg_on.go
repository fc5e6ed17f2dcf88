//go:build ckzg

package kzg

// useCKZG selects go-ethereum's C-KZG engine (requires cgo).
const useCKZG = true
