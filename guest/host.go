package guest

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/eth2030/blobkzg/kzg"
)

var errNilProver = errors.New("guest: nil prover")

// Prover computes blob commitments and proofs on the host. kzg.Backend
// satisfies it.
type Prover interface {
	BlobToCommitment(blob []byte) (kzg.Commitment, error)
	BlobToProof(blob []byte, commitment kzg.Commitment) (kzg.Proof, error)
}

// Channel is the host's end of the guest input channel.
type Channel interface {
	Push(frame []byte) error
}

// PrepareInput builds the guest input for blob and its commitment, computing
// the proof locally. The commitment is trusted, as in kzg.BlobToProof.
func PrepareInput(p Prover, blob []byte, commitment kzg.Commitment) (*Input, error) {
	if p == nil {
		return nil, errNilProver
	}
	proof, err := p.BlobToProof(blob, commitment)
	if err != nil {
		return nil, fmt.Errorf("guest: compute proof: %w", err)
	}
	return &Input{
		Blob:       blob,
		Commitment: commitment[:],
		Proof:      proof[:],
	}, nil
}

// PrepareBlob commits to blob and then calls PrepareInput.
func PrepareBlob(p Prover, blob []byte) (*Input, error) {
	if p == nil {
		return nil, errNilProver
	}
	c, err := p.BlobToCommitment(blob)
	if err != nil {
		return nil, fmt.Errorf("guest: compute commitment: %w", err)
	}
	return PrepareInput(p, blob, c)
}

// WriteInput frames in and pushes it onto ch.
func WriteInput(ch Channel, in *Input) error {
	enc, err := rlp.EncodeToBytes(in)
	if err != nil {
		return fmt.Errorf("guest: encode input: %w", err)
	}
	return ch.Push(enc)
}
