// Backend registry.
//
// The backend is fixed for the life of the process: Default() builds the
// build-selected backend once (FullBackend unless the binary is compiled
// with -tags verifyonly). Tools that choose at configuration time, such as
// the CLI's --backend flag, use New with an explicit Kind instead.
package kzg

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/eth2030/blobkzg/log"
	"github.com/eth2030/blobkzg/metrics"
)

// Kind names a backend implementation.
type Kind uint8

const (
	// KindFull is FullBackend.
	KindFull Kind = iota + 1
	// KindVerifyOnly is VerifyOnlyBackend.
	KindVerifyOnly
)

// String returns the name ParseKind accepts.
func (k Kind) String() string {
	switch k {
	case KindFull:
		return "full"
	case KindVerifyOnly:
		return "verifyonly"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind parses a backend name. Library names are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", FullBackendName:
		return KindFull, nil
	case "verifyonly", "verify-only", VerifyOnlyBackendName:
		return KindVerifyOnly, nil
	default:
		return 0, fmt.Errorf("kzg: unknown backend %q", s)
	}
}

// New builds the backend described by cfg. The result shares the process-wide
// trusted setups with every other backend of the same kind.
func New(cfg Config) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kind := cfg.Backend
	if kind == 0 {
		kind = defaultKind
	}
	var b Backend
	switch kind {
	case KindFull:
		b = NewFullBackend(cfg.Workers)
	case KindVerifyOnly:
		b = NewVerifyOnlyBackend(cfg.Workers)
	}
	return &tracedBackend{inner: b, logger: log.Default().Module("kzg").With("backend", b.Name())}, nil
}

var defaultBackend = sync.OnceValue(func() Backend {
	b, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return b
})

// Default returns the process-wide build-selected backend.
func Default() Backend {
	return defaultBackend()
}

// tracedBackend records metrics for every call and logs rejections.
type tracedBackend struct {
	inner  Backend
	logger *log.Logger
}

func (t *tracedBackend) Name() string { return t.inner.Name() }

func (t *tracedBackend) BlobToCommitment(blob []byte) (Commitment, error) {
	span := metrics.Track("kzg.commit")
	c, err := t.inner.BlobToCommitment(blob)
	t.observe(span, opCommit, err)
	return c, err
}

func (t *tracedBackend) BlobToProof(blob []byte, commitment Commitment) (Proof, error) {
	span := metrics.Track("kzg.prove")
	p, err := t.inner.BlobToProof(blob, commitment)
	t.observe(span, opProve, err)
	return p, err
}

func (t *tracedBackend) VerifyBlobKZGProof(blob []byte, commitment Commitment, proof Proof) error {
	span := metrics.Track("kzg.verify")
	err := t.inner.VerifyBlobKZGProof(blob, commitment, proof)
	t.observe(span, opVerify, err)
	switch {
	case err == nil:
		metrics.ProofsAccepted.Inc()
	case errors.Is(err, ErrProofInvalid):
		metrics.ProofsRejected.Inc()
	}
	return err
}

func (t *tracedBackend) observe(span *metrics.Span, op string, err error) {
	elapsed := span.End(err)
	if err == nil {
		return
	}
	switch KindOf(err) {
	case ErrInvalidBlobData, ErrInvalidCommitment, ErrInvalidProof:
		metrics.InputsMalformed.Inc()
	}
	t.logger.Debug("kzg operation rejected", "op", op, "kind", KindOf(err).String(), "elapsed", elapsed, "err", err)
}
