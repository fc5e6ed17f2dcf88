package kzg

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Commitment is a compressed BLS12-381 G1 point committing to a blob.
type Commitment [BytesPerCommitment]byte

// Proof is a compressed BLS12-381 G1 point opening a blob commitment.
type Proof [BytesPerProof]byte

// String returns the 0x-prefixed hex encoding.
func (c Commitment) String() string { return hexutil.Encode(c[:]) }

// String returns the 0x-prefixed hex encoding.
func (p Proof) String() string { return hexutil.Encode(p[:]) }

// CommitmentFromBytes copies b into a Commitment. Only the length is checked;
// the point encoding is checked by the operation that consumes it.
func CommitmentFromBytes(b []byte) (Commitment, error) {
	var c Commitment
	if len(b) != BytesPerCommitment {
		return c, newError("commitment_from_bytes", ErrInvalidCommitment,
			"commitment must be 48 bytes", fmt.Errorf("got %d bytes", len(b)))
	}
	copy(c[:], b)
	return c, nil
}

// ProofFromBytes copies b into a Proof. Only the length is checked.
func ProofFromBytes(b []byte) (Proof, error) {
	var p Proof
	if len(b) != BytesPerProof {
		return p, newError("proof_from_bytes", ErrInvalidProof,
			"proof must be 48 bytes", fmt.Errorf("got %d bytes", len(b)))
	}
	copy(p[:], b)
	return p, nil
}

// Backend computes and checks EIP-4844 blob commitments and proofs. All
// implementations must agree bit for bit on the commitments and proofs they
// produce and must accept each other's artifacts.
//
// Implementations are safe for concurrent use.
type Backend interface {
	// Name identifies the backend in logs and CLI output.
	Name() string

	// BlobToCommitment commits to blob.
	BlobToCommitment(blob []byte) (Commitment, error)

	// BlobToProof opens commitment for blob. The commitment is trusted to
	// belong to blob; a mismatched pair is not detected here and produces a
	// proof that VerifyBlobKZGProof rejects with ErrProofInvalid.
	BlobToProof(blob []byte, commitment Commitment) (Proof, error)

	// VerifyBlobKZGProof returns nil if proof opens commitment for blob.
	// A well-formed triple that does not verify yields ErrProofInvalid.
	VerifyBlobKZGProof(blob []byte, commitment Commitment, proof Proof) error
}

// Operation names carried in *Error.Op.
const (
	opCommit = "blob_to_commitment"
	opProve  = "blob_to_proof"
	opVerify = "verify_blob_kzg_proof"
)
