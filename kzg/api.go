package kzg

// BlobToCommitment commits to blob with the default backend.
//
// Errors: ErrInvalidBlobData, ErrSettingsInitFailed,
// ErrBackendComputationFailed.
func BlobToCommitment(blob []byte) (Commitment, error) {
	return Default().BlobToCommitment(blob)
}

// BlobToProof opens commitment for blob with the default backend.
//
// The commitment is trusted to be BlobToCommitment(blob). It is decoded but
// not recomputed, so a commitment to some other blob is not rejected here:
// the returned proof simply fails VerifyBlobKZGProof with ErrProofInvalid.
//
// Errors: ErrInvalidBlobData, ErrInvalidCommitment, ErrSettingsInitFailed,
// ErrBackendComputationFailed.
func BlobToProof(blob []byte, commitment Commitment) (Proof, error) {
	return Default().BlobToProof(blob, commitment)
}

// VerifyBlobKZGProof returns nil if proof opens commitment for blob under the
// default backend.
//
// A well-formed triple that fails the check returns ErrProofInvalid with the
// message "proof verification failed". Malformed inputs return
// ErrInvalidBlobData, ErrInvalidCommitment or ErrInvalidProof, which callers
// may treat the same way (reject the blob) while logging them apart.
func VerifyBlobKZGProof(blob []byte, commitment Commitment, proof Proof) error {
	return Default().VerifyBlobKZGProof(blob, commitment, proof)
}
