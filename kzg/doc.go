// Package kzg computes and verifies EIP-4844 KZG blob commitments, opening
// proofs and versioned hashes.
//
// Two interchangeable backends implement Backend: FullBackend (go-eth-kzg)
// and VerifyOnlyBackend, which verifies through a single point evaluation
// and delegates commitment and proof computation to FullBackend. Both load
// their trusted setup from resources compiled into the binary, once per
// process, so no operation performs I/O.
//
// The package-level functions use Default(), chosen at build time.
package kzg
