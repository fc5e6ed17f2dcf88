// Error model for the blob KZG engine.
//
// Every public operation reports failures through a single *Error value that
// carries the failing operation, a closed ErrorKind and the underlying library
// cause. Kinds are themselves errors, so callers branch with errors.Is:
//
//	if errors.Is(err, kzg.ErrProofInvalid) { reject(blob) }
//
// ErrProofInvalid is the normal "reject this blob" outcome. Only
// ErrSettingsInitFailed should be treated as fatal for the process, since a
// failed trusted setup load is never retried.
package kzg

import (
	"errors"
	"strings"
)

// ErrorKind classifies a KZG failure.
type ErrorKind int

const (
	// ErrSettingsInitFailed: the embedded trusted setup could not be loaded.
	ErrSettingsInitFailed ErrorKind = iota + 1
	// ErrInvalidBlobData: wrong blob length or a non-canonical field element.
	ErrInvalidBlobData
	// ErrInvalidCommitment: the commitment is not a valid G1 encoding.
	ErrInvalidCommitment
	// ErrInvalidProof: the proof is not a valid G1 encoding.
	ErrInvalidProof
	// ErrProofInvalid: all inputs are well formed but the pairing check failed.
	ErrProofInvalid
	// ErrBackendComputationFailed: the backend library reported an internal error.
	ErrBackendComputationFailed
)

var kindNames = map[ErrorKind]string{
	ErrSettingsInitFailed:       "settings init failed",
	ErrInvalidBlobData:          "invalid blob data",
	ErrInvalidCommitment:        "invalid commitment",
	ErrInvalidProof:             "invalid proof",
	ErrProofInvalid:             "proof invalid",
	ErrBackendComputationFailed: "backend computation failed",
}

// String returns the kind's name.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Error implements error so kinds can be matched with errors.Is.
func (k ErrorKind) Error() string { return "kzg: " + k.String() }

// Messages that distinguish a rejected proof from malformed input.
const (
	msgVerificationFailed = "proof verification failed"
	msgBadBlobLength      = "blob must be 131072 bytes"
	msgBadFieldElement    = "field element >= BLS modulus"
)

// Error is the error type returned by every operation in this package.
type Error struct {
	Op   string    // operation, e.g. "blob_to_commitment"
	Kind ErrorKind // failure class
	Msg  string    // human-readable cause
	Err  error     // underlying library error, may be nil
}

func newError(op string, kind ErrorKind, msg string, cause error) *Error {
	return &Error{Op: op, Kind: kind, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("kzg: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the library cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not a
// KZG error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

// withOp re-labels a KZG error with the public operation that surfaced it.
// Errors from other sources are wrapped as backend failures.
func withOp(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Op == op {
			return e
		}
		return &Error{Op: op, Kind: e.Kind, Msg: e.Msg, Err: e.Err}
	}
	return newError(op, ErrBackendComputationFailed, "", err)
}
