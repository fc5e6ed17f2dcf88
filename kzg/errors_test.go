package kzg

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKind_Is(t *testing.T) {
	cause := errors.New("pairing mismatch")
	err := newError(opVerify, ErrProofInvalid, msgVerificationFailed, cause)

	if !errors.Is(err, ErrProofInvalid) {
		t.Fatal("errors.Is(err, ErrProofInvalid) = false")
	}
	if errors.Is(err, ErrInvalidProof) {
		t.Fatal("ErrProofInvalid matched ErrInvalidProof")
	}
	if !errors.Is(err, cause) {
		t.Fatal("underlying cause not reachable through errors.Is")
	}
	wrapped := fmt.Errorf("guest: %w", err)
	if KindOf(wrapped) != ErrProofInvalid {
		t.Fatalf("KindOf(wrapped) = %v, want %v", KindOf(wrapped), ErrProofInvalid)
	}
}

func TestError_Message(t *testing.T) {
	err := newError(opVerify, ErrProofInvalid, msgVerificationFailed, nil)
	want := "kzg: verify_blob_kzg_proof: proof invalid: proof verification failed"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	bad := newError(opVerify, ErrInvalidBlobData, msgBadBlobLength, errors.New("got 0 bytes"))
	if strings.Contains(bad.Error(), msgVerificationFailed) {
		t.Fatalf("malformed-input message mentions verification failure: %q", bad.Error())
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(nil) != 0 {
		t.Fatal("KindOf(nil) != 0")
	}
	if KindOf(errors.New("other")) != 0 {
		t.Fatal("KindOf(foreign error) != 0")
	}
	if KindOf(ErrInvalidCommitment) != ErrInvalidCommitment {
		t.Fatal("KindOf(bare kind) mismatch")
	}
}

func TestErrorKind_String(t *testing.T) {
	kinds := []ErrorKind{
		ErrSettingsInitFailed, ErrInvalidBlobData, ErrInvalidCommitment,
		ErrInvalidProof, ErrProofInvalid, ErrBackendComputationFailed,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "unknown" || seen[s] {
			t.Fatalf("kind %d has bad or duplicate name %q", int(k), s)
		}
		seen[s] = true
	}
	if ErrorKind(99).String() != "unknown" {
		t.Fatal("out-of-range kind should be unknown")
	}
}

func TestWithOp(t *testing.T) {
	if withOp(opCommit, nil) != nil {
		t.Fatal("withOp(nil) != nil")
	}
	base := newError("load_settings", ErrSettingsInitFailed, "go-eth-kzg", errors.New("bad"))
	err := withOp(opCommit, base)
	var e *Error
	if !errors.As(err, &e) || e.Op != opCommit || e.Kind != ErrSettingsInitFailed {
		t.Fatalf("withOp = %#v", err)
	}
	foreign := withOp(opProve, errors.New("boom"))
	if KindOf(foreign) != ErrBackendComputationFailed {
		t.Fatalf("foreign error kind = %v", KindOf(foreign))
	}
}
