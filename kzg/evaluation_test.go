package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func mustDomain(t *testing.T) *evalDomain {
	t.Helper()
	d, err := newEvalDomain()
	if err != nil {
		t.Fatalf("newEvalDomain: %v", err)
	}
	return d
}

// blobFromElements serializes field elements into a blob.
func blobFromElements(elems []fr.Element) []byte {
	blob := make([]byte, BytesPerBlob)
	for i := range elems {
		b := elems[i].Bytes()
		copy(blob[i*32:], b[:])
	}
	return blob
}

func TestEvalDomain_Roots(t *testing.T) {
	d := mustDomain(t)
	var one, minusOne fr.Element
	one.SetOne()
	minusOne.Neg(&one)

	// Bit-reversed order puts omega^0 first and omega^(n/2) = -1 second.
	if !d.roots[0].Equal(&one) {
		t.Fatal("roots[0] != 1")
	}
	if !d.roots[1].Equal(&minusOne) {
		t.Fatal("roots[1] != -1")
	}
	var n fr.Element
	n.SetUint64(FieldElementsPerBlob)
	n.Mul(&n, &d.invWidth)
	if !n.Equal(&one) {
		t.Fatal("invWidth is not 1/n")
	}
}

func TestEvaluate_Constant(t *testing.T) {
	d := mustDomain(t)
	var c fr.Element
	c.SetUint64(12345)
	elems := make([]fr.Element, FieldElementsPerBlob)
	for i := range elems {
		elems[i] = c
	}
	z := computeChallenge(blobFromElements(elems), Commitment{})
	y, err := d.evaluate(blobFromElements(elems), z)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !y.Equal(&c) {
		t.Fatalf("p(z) = %s, want 12345", y.String())
	}
}

func TestEvaluate_Identity(t *testing.T) {
	// p(x) = x evaluates to the domain itself.
	d := mustDomain(t)
	blob := blobFromElements(d.roots)

	var z fr.Element
	z.SetUint64(987654321)
	y, err := d.evaluate(blob, z)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !y.Equal(&z) {
		t.Fatalf("p(z) = %s, want z", y.String())
	}
}

func TestEvaluate_AtRoot(t *testing.T) {
	d := mustDomain(t)
	blob := randomBlob(7)
	y, err := d.evaluate(blob, d.roots[5])
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	var want fr.Element
	if err := want.SetBytesCanonical(blob[5*32 : 6*32]); err != nil {
		t.Fatal(err)
	}
	if !y.Equal(&want) {
		t.Fatal("evaluation at a root does not return the stored value")
	}
}

func TestComputeChallenge(t *testing.T) {
	blob := randomBlob(3)
	c1 := Commitment{0xc0}
	z1 := computeChallenge(blob, c1)
	z2 := computeChallenge(blob, c1)
	if !z1.Equal(&z2) {
		t.Fatal("challenge is not deterministic")
	}
	c2 := c1
	c2[47] = 1
	z3 := computeChallenge(blob, c2)
	if z1.Equal(&z3) {
		t.Fatal("challenge ignores the commitment")
	}
	blob[0] = 0
	blob[1] ^= 1
	z4 := computeChallenge(blob, c1)
	if z1.Equal(&z4) {
		t.Fatal("challenge ignores the blob")
	}
}
