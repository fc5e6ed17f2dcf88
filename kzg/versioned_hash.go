package kzg

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto/kzg4844"
)

// VersionedHashVersionKZG is the version byte of a KZG versioned hash.
const VersionedHashVersionKZG byte = 0x01

// VersionedHash references a blob commitment: sha256(commitment) with the
// first byte replaced by VersionedHashVersionKZG.
type VersionedHash [32]byte

// String returns the 0x-prefixed hex encoding.
func (h VersionedHash) String() string { return hexutil.Encode(h[:]) }

// CommitmentToVersionedHash derives the versioned hash of c. It needs no
// trusted setup and never fails.
func CommitmentToVersionedHash(c Commitment) VersionedHash {
	kc := kzg4844.Commitment(c)
	return VersionedHash(kzg4844.CalcBlobHashV1(sha256.New(), &kc))
}

// IsValidVersionedHash reports whether h has the length and version byte of
// a KZG versioned hash.
func IsValidVersionedHash(h []byte) bool {
	return len(h) == len(VersionedHash{}) && h[0] == VersionedHashVersionKZG
}
