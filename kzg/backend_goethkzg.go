// Full backend built on github.com/crate-crypto/go-eth-kzg.
//
// FullBackend commits, proves and verifies natively against the Ethereum
// ceremony setup embedded in go-eth-kzg. Loading that setup takes a few
// seconds and happens once per process through fullSettings.
package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	goethkzg "github.com/crate-crypto/go-eth-kzg"
)

// FullBackendName is the Name() of FullBackend.
const FullBackendName = "go-eth-kzg"

// fullSettings is the process-wide go-eth-kzg context.
var fullSettings = NewSettingsCache(FullBackendName, goethkzg.NewContext4096Secure)

// FullBackend implements Backend with go-eth-kzg.
type FullBackend struct {
	settings *SettingsCache[*goethkzg.Context]
	workers  int
}

// Compile-time interface check.
var _ Backend = (*FullBackend)(nil)

// NewFullBackend returns a FullBackend over the shared ceremony setup.
// workers bounds go-eth-kzg's internal parallelism; 0 lets the library pick.
func NewFullBackend(workers int) *FullBackend {
	return &FullBackend{settings: fullSettings, workers: workers}
}

// Name returns FullBackendName.
func (b *FullBackend) Name() string { return FullBackendName }

// BlobToCommitment commits to blob.
func (b *FullBackend) BlobToCommitment(blob []byte) (Commitment, error) {
	if err := validateBlob(opCommit, blob); err != nil {
		return Commitment{}, err
	}
	ctx, err := b.settings.Get()
	if err != nil {
		return Commitment{}, withOp(opCommit, err)
	}
	comm, err := ctx.BlobToKZGCommitment((*goethkzg.Blob)(blob), b.workers)
	if err != nil {
		return Commitment{}, newError(opCommit, ErrBackendComputationFailed, "BlobToKZGCommitment", err)
	}
	return Commitment(comm), nil
}

// BlobToProof opens commitment for blob. The commitment is not recomputed:
// passing a commitment to a different blob returns a proof that fails
// verification.
func (b *FullBackend) BlobToProof(blob []byte, commitment Commitment) (Proof, error) {
	if err := validateBlob(opProve, blob); err != nil {
		return Proof{}, err
	}
	if err := decodeG1(opProve, commitment[:], ErrInvalidCommitment); err != nil {
		return Proof{}, err
	}
	ctx, err := b.settings.Get()
	if err != nil {
		return Proof{}, withOp(opProve, err)
	}
	proof, err := ctx.ComputeBlobKZGProof((*goethkzg.Blob)(blob), goethkzg.KZGCommitment(commitment), b.workers)
	if err != nil {
		return Proof{}, newError(opProve, ErrBackendComputationFailed, "ComputeBlobKZGProof", err)
	}
	return Proof(proof), nil
}

// VerifyBlobKZGProof checks proof against blob and commitment. Inputs are
// validated up front, so an error from the library can only mean the
// pairing check failed.
func (b *FullBackend) VerifyBlobKZGProof(blob []byte, commitment Commitment, proof Proof) error {
	if err := validateBlob(opVerify, blob); err != nil {
		return err
	}
	if err := decodeG1(opVerify, commitment[:], ErrInvalidCommitment); err != nil {
		return err
	}
	if err := decodeG1(opVerify, proof[:], ErrInvalidProof); err != nil {
		return err
	}
	ctx, err := b.settings.Get()
	if err != nil {
		return withOp(opVerify, err)
	}
	if err := ctx.VerifyBlobKZGProof((*goethkzg.Blob)(blob), goethkzg.KZGCommitment(commitment), goethkzg.KZGProof(proof)); err != nil {
		return newError(opVerify, ErrProofInvalid, msgVerificationFailed, err)
	}
	return nil
}

// decodeG1 checks that b is a compressed G1 point in the prime-order
// subgroup. The point at infinity is accepted.
func decodeG1(op string, b []byte, kind ErrorKind) error {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return newError(op, kind, "not a valid G1 point", err)
	}
	return nil
}
