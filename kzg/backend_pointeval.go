// Verify-only backend.
//
// VerifyOnlyBackend checks blob proofs without go-eth-kzg's blob machinery:
// it computes the challenge and the blob polynomial's value at it natively
// and hands a single point-evaluation opening to go-ethereum's kzg4844
// package, whose trusted setup is embedded in go-ethereum. Points are decoded
// with blst. Commitments and proofs are computed by an embedded FullBackend,
// so both backends always produce the same bytes.
package kzg

import (
	"errors"

	"github.com/ethereum/go-ethereum/crypto/kzg4844"
	blst "github.com/supranational/blst/bindings/go"
)

// VerifyOnlyBackendName is the Name() of VerifyOnlyBackend.
const VerifyOnlyBackendName = "pointeval"

// pointEvalSettings is the verify-only trusted setup: the warmed kzg4844
// engine plus the evaluation domain.
type pointEvalSettings struct {
	domain *evalDomain
}

var errSelfCheck = errors.New("kzg: kzg4844 rejected the zero polynomial opening")

// pointEvalSettingsCache is the process-wide verify-only setup.
var pointEvalSettingsCache = NewSettingsCache(VerifyOnlyBackendName, loadPointEvalSettings)

// loadPointEvalSettings selects the kzg4844 engine (which loads its embedded
// setup), checks it against the trivial opening of the zero polynomial and
// builds the evaluation domain.
func loadPointEvalSettings() (*pointEvalSettings, error) {
	if err := kzg4844.UseCKZG(useCKZG); err != nil {
		return nil, err
	}
	var (
		infinity kzg4844.Commitment
		proof    kzg4844.Proof
	)
	infinity[0], proof[0] = 0xc0, 0xc0
	if err := kzg4844.VerifyProof(infinity, kzg4844.Point{}, kzg4844.Claim{}, proof); err != nil {
		return nil, errors.Join(errSelfCheck, err)
	}
	domain, err := newEvalDomain()
	if err != nil {
		return nil, err
	}
	return &pointEvalSettings{domain: domain}, nil
}

// VerifyOnlyBackend implements Backend, verifying natively and delegating
// commitment and proof computation to a FullBackend.
type VerifyOnlyBackend struct {
	settings *SettingsCache[*pointEvalSettings]
	full     *FullBackend
}

// Compile-time interface check.
var _ Backend = (*VerifyOnlyBackend)(nil)

// NewVerifyOnlyBackend returns a VerifyOnlyBackend whose delegate runs with
// the given worker bound.
func NewVerifyOnlyBackend(workers int) *VerifyOnlyBackend {
	return &VerifyOnlyBackend{settings: pointEvalSettingsCache, full: NewFullBackend(workers)}
}

// Name returns VerifyOnlyBackendName.
func (b *VerifyOnlyBackend) Name() string { return VerifyOnlyBackendName }

// BlobToCommitment delegates to the full backend.
func (b *VerifyOnlyBackend) BlobToCommitment(blob []byte) (Commitment, error) {
	return b.full.BlobToCommitment(blob)
}

// BlobToProof delegates to the full backend. The commitment is trusted, as
// in FullBackend.BlobToProof.
func (b *VerifyOnlyBackend) BlobToProof(blob []byte, commitment Commitment) (Proof, error) {
	return b.full.BlobToProof(blob, commitment)
}

// VerifyBlobKZGProof checks proof against blob and commitment.
func (b *VerifyOnlyBackend) VerifyBlobKZGProof(blob []byte, commitment Commitment, proof Proof) error {
	if err := validateBlob(opVerify, blob); err != nil {
		return err
	}
	if err := uncompressG1(opVerify, commitment[:], ErrInvalidCommitment); err != nil {
		return err
	}
	if err := uncompressG1(opVerify, proof[:], ErrInvalidProof); err != nil {
		return err
	}
	s, err := b.settings.Get()
	if err != nil {
		return withOp(opVerify, err)
	}

	z := computeChallenge(blob, commitment)
	y, err := s.domain.evaluate(blob, z)
	if err != nil {
		return newError(opVerify, ErrBackendComputationFailed, "evaluate blob polynomial", err)
	}
	point, claim := kzg4844.Point(z.Bytes()), kzg4844.Claim(y.Bytes())
	if err := kzg4844.VerifyProof(kzg4844.Commitment(commitment), point, claim, kzg4844.Proof(proof)); err != nil {
		return newError(opVerify, ErrProofInvalid, msgVerificationFailed, err)
	}
	return nil
}

// uncompressG1 checks that b is a compressed G1 point in the prime-order
// subgroup using blst. The point at infinity is accepted.
func uncompressG1(op string, b []byte, kind ErrorKind) error {
	p := new(blst.P1Affine).Uncompress(b)
	if p == nil {
		return newError(op, kind, "not a valid G1 point", nil)
	}
	if !isInfinity(b) && !p.InG1() {
		return newError(op, kind, "point not in G1 subgroup", nil)
	}
	return nil
}

// isInfinity reports whether b is the compressed encoding of the point at
// infinity.
func isInfinity(b []byte) bool {
	if len(b) == 0 || b[0] != 0xc0 {
		return false
	}
	for _, v := range b[1:] {
		if v != 0 {
			return false
		}
	}
	return true
}
