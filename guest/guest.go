// Package guest is the sandboxed side of blob verification: it reads one
// (blob, commitment, proof) triple from the host channel, verifies it and
// commits the verdict to the public journal.
//
// Frames on the channel and the journal are RLP. The guest never trusts the
// host: a frame that does not decode is an error, while a triple that
// decodes but does not verify (wrong sizes included) commits a false verdict.
package guest

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/sha3"

	"github.com/eth2030/blobkzg/kzg"
	"github.com/eth2030/blobkzg/log"
	"github.com/eth2030/blobkzg/metrics"
)

// Guest execution errors.
var (
	ErrNilEnv      = errors.New("guest: nil environment")
	ErrNilVerifier = errors.New("guest: nil verifier")
	ErrNoInput     = errors.New("guest: no input frame")
	ErrBadInput    = errors.New("guest: malformed input frame")
	ErrBadJournal  = errors.New("guest: malformed journal")
)

// Input is the frame the host sends to the guest.
type Input struct {
	Blob       []byte
	Commitment []byte
	Proof      []byte
}

// Digest returns keccak256(blob || commitment || proof). The journal carries
// it so a verdict can be tied to the exact bytes that were checked.
func (in *Input) Digest() common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(in.Blob)
	h.Write(in.Commitment)
	h.Write(in.Proof)
	var out common.Hash
	h.Sum(out[:0])
	return out
}

// Journal is the guest's public output.
type Journal struct {
	Verdict     bool
	InputDigest common.Hash
}

// DecodeJournal parses a committed journal.
func DecodeJournal(b []byte) (*Journal, error) {
	j := new(Journal)
	if err := rlp.DecodeBytes(b, j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadJournal, err)
	}
	return j, nil
}

// Env is the guest's view of its host: one input channel and the journal.
type Env interface {
	// Read returns the next input frame, or ErrNoInput.
	Read() ([]byte, error)
	// Commit appends data to the public journal.
	Commit(data []byte) error
}

// Verifier checks blob proofs. kzg.Backend satisfies it.
type Verifier interface {
	VerifyBlobKZGProof(blob []byte, commitment kzg.Commitment, proof kzg.Proof) error
}

// Run executes the guest program once: read an Input, verify it and commit
// the Journal. The committed journal is also returned.
func Run(env Env, v Verifier) (*Journal, error) {
	if env == nil {
		return nil, ErrNilEnv
	}
	if v == nil {
		return nil, ErrNilVerifier
	}
	span := metrics.Track("guest.run")

	frame, err := env.Read()
	if err != nil {
		span.End(err)
		return nil, fmt.Errorf("guest: read input: %w", err)
	}
	var in Input
	if err := rlp.DecodeBytes(frame, &in); err != nil {
		err = fmt.Errorf("%w: %v", ErrBadInput, err)
		span.End(err)
		return nil, err
	}

	j := &Journal{Verdict: Verify(&in, v), InputDigest: in.Digest()}
	enc, err := rlp.EncodeToBytes(j)
	if err != nil {
		span.End(err)
		return nil, fmt.Errorf("guest: encode journal: %w", err)
	}
	if err := env.Commit(enc); err != nil {
		span.End(err)
		return nil, fmt.Errorf("guest: commit journal: %w", err)
	}
	metrics.GuestVerdicts.Inc()
	span.End(nil)
	return j, nil
}

// Verify reports whether in holds a valid triple. Any failure, including
// wrongly sized points, is a false verdict.
func Verify(in *Input, v Verifier) bool {
	logger := log.Default().Module("guest")

	verify := metrics.Track("guest.verify_blob_kzg_proof")
	err := verifyInput(in, v)
	verify.End(err)

	if err != nil {
		logger.Debug("blob proof rejected", "kind", kzg.KindOf(err).String(), "err", err)
		return false
	}
	return true
}

func verifyInput(in *Input, v Verifier) error {
	c, err := kzg.CommitmentFromBytes(in.Commitment)
	if err != nil {
		return err
	}
	p, err := kzg.ProofFromBytes(in.Proof)
	if err != nil {
		return err
	}
	return v.VerifyBlobKZGProof(in.Blob, c, p)
}
