package guest

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/eth2030/blobkzg/kzg"
)

// stubVerifier accepts exactly one triple.
type stubVerifier struct {
	commitment kzg.Commitment
	proof      kzg.Proof
	calls      int
}

func (s *stubVerifier) VerifyBlobKZGProof(blob []byte, c kzg.Commitment, p kzg.Proof) error {
	s.calls++
	if c != s.commitment || p != s.proof {
		return &kzg.Error{Op: "verify_blob_kzg_proof", Kind: kzg.ErrProofInvalid, Msg: "proof verification failed"}
	}
	return nil
}

func stubInput() (*Input, *stubVerifier) {
	v := &stubVerifier{}
	v.commitment[0], v.proof[0] = 0xc0, 0xc0
	return &Input{
		Blob:       []byte("blob"),
		Commitment: v.commitment[:],
		Proof:      v.proof[:],
	}, v
}

func runWith(t *testing.T, in *Input, v Verifier) (*Journal, *MemoryEnv) {
	t.Helper()
	env := NewMemoryEnv()
	if err := WriteInput(env, in); err != nil {
		t.Fatalf("WriteInput: %v", err)
	}
	j, err := Run(env, v)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return j, env
}

func TestRun_ValidTriple(t *testing.T) {
	in, v := stubInput()
	j, env := runWith(t, in, v)
	if !j.Verdict {
		t.Fatal("verdict = false for a valid triple")
	}
	if j.InputDigest != in.Digest() {
		t.Fatal("journal digest does not match input")
	}
	entries := env.Journal()
	if len(entries) != 1 {
		t.Fatalf("journal has %d entries, want 1", len(entries))
	}
	dec, err := DecodeJournal(entries[0])
	if err != nil {
		t.Fatalf("DecodeJournal: %v", err)
	}
	if *dec != *j {
		t.Fatalf("decoded journal = %+v, want %+v", dec, j)
	}
}

func TestRun_CorruptedProof(t *testing.T) {
	in, v := stubInput()
	in.Proof = append([]byte(nil), in.Proof...)
	in.Proof[47] ^= 1
	j, _ := runWith(t, in, v)
	if j.Verdict {
		t.Fatal("verdict = true for a corrupted proof")
	}
}

func TestRun_WrongSizedPoints(t *testing.T) {
	in, v := stubInput()
	in.Commitment = in.Commitment[:47]
	j, _ := runWith(t, in, v)
	if j.Verdict {
		t.Fatal("verdict = true for a 47-byte commitment")
	}
	if v.calls != 0 {
		t.Fatal("verifier called with a wrongly sized commitment")
	}

	in, v = stubInput()
	in.Proof = append(in.Proof, 0)
	if j, _ := runWith(t, in, v); j.Verdict {
		t.Fatal("verdict = true for a 49-byte proof")
	}
}

func TestRun_Errors(t *testing.T) {
	_, v := stubInput()
	if _, err := Run(nil, v); !errors.Is(err, ErrNilEnv) {
		t.Fatalf("nil env: err = %v", err)
	}
	if _, err := Run(NewMemoryEnv(), nil); !errors.Is(err, ErrNilVerifier) {
		t.Fatalf("nil verifier: err = %v", err)
	}
	if _, err := Run(NewMemoryEnv(), v); !errors.Is(err, ErrNoInput) {
		t.Fatalf("empty channel: err = %v", err)
	}

	env := NewMemoryEnv()
	env.Push([]byte{0xff, 0x00})
	if _, err := Run(env, v); !errors.Is(err, ErrBadInput) {
		t.Fatalf("garbage frame: err = %v", err)
	}
	if len(env.Journal()) != 0 {
		t.Fatal("journal written for a malformed frame")
	}
	if _, err := DecodeJournal([]byte{0x01}); !errors.Is(err, ErrBadJournal) {
		t.Fatalf("bad journal: err = %v", err)
	}
}

func TestInput_Digest(t *testing.T) {
	in, _ := stubInput()
	d1 := in.Digest()
	if d1 != in.Digest() {
		t.Fatal("digest not stable")
	}
	moved := &Input{Blob: append(in.Blob, in.Commitment[0]), Commitment: in.Commitment[1:], Proof: in.Proof}
	if moved.Digest() != d1 {
		t.Fatal("digest should cover the concatenation only")
	}
	other := &Input{Blob: []byte("other"), Commitment: in.Commitment, Proof: in.Proof}
	if other.Digest() == d1 {
		t.Fatal("digest ignores the blob")
	}
}

func TestInput_RLPRoundTrip(t *testing.T) {
	in, _ := stubInput()
	enc, err := rlp.EncodeToBytes(in)
	if err != nil {
		t.Fatal(err)
	}
	var dec Input
	if err := rlp.DecodeBytes(enc, &dec); err != nil {
		t.Fatal(err)
	}
	if dec.Digest() != in.Digest() {
		t.Fatal("input changed across RLP round trip")
	}
}

func TestMemoryEnv_Order(t *testing.T) {
	env := NewMemoryEnv()
	env.Push([]byte{1})
	env.Push([]byte{2})
	for _, want := range []byte{1, 2} {
		f, err := env.Read()
		if err != nil || len(f) != 1 || f[0] != want {
			t.Fatalf("Read = %v, %v; want [%d]", f, err, want)
		}
	}
	if _, err := env.Read(); !errors.Is(err, ErrNoInput) {
		t.Fatalf("drained Read err = %v", err)
	}
}

func TestHost_RealBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the trusted setup")
	}
	backend, err := kzg.New(kzg.Config{Backend: kzg.KindVerifyOnly})
	if err != nil {
		t.Fatal(err)
	}
	blob, err := kzg.EncodeData([]byte("host to guest"))
	if err != nil {
		t.Fatal(err)
	}
	in, err := PrepareBlob(backend, blob)
	if err != nil {
		t.Fatalf("PrepareBlob: %v", err)
	}
	if j, _ := runWith(t, in, backend); !j.Verdict {
		t.Fatal("guest rejected host-prepared input")
	}

	// A proof for a different blob is rejected.
	other, _ := kzg.EncodeData([]byte("something else"))
	bad, err := PrepareBlob(backend, other)
	if err != nil {
		t.Fatal(err)
	}
	in.Proof = bad.Proof
	if j, _ := runWith(t, in, backend); j.Verdict {
		t.Fatal("guest accepted a foreign proof")
	}

	if _, err := PrepareBlob(backend, blob[:10]); !errors.Is(err, kzg.ErrInvalidBlobData) {
		t.Fatalf("short blob: err = %v", err)
	}
	if _, err := PrepareInput(nil, blob, kzg.Commitment{}); err == nil {
		t.Fatal("nil prover accepted")
	}
}
