// Polynomial evaluation for the verify-only backend.
//
// A blob is the evaluation form of a degree < 4096 polynomial p over the
// 4096th roots of unity of r, taken in bit-reversed order. Verifying a blob
// proof reduces to a single point evaluation: derive the Fiat-Shamir
// challenge z from the blob and commitment, evaluate p(z) with the
// barycentric formula, and check the opening of the commitment at z.
package kzg

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// challengeDomain separates blob-proof challenges from other transcripts.
const challengeDomain = "FSBLOBVERIFY_V1_"

// primitiveRoot generates the multiplicative group of the scalar field.
const primitiveRoot = 7

var errNotPrimitiveRoot = errors.New("kzg: generator does not yield a primitive root of unity")

// evalDomain holds the roots of unity in bit-reversed order together with the
// constants of the barycentric formula.
type evalDomain struct {
	roots    []fr.Element
	invWidth fr.Element // 1/n
}

// newEvalDomain computes the bit-reversed 4096th roots of unity of r.
func newEvalDomain() (*evalDomain, error) {
	// omega = 7^((r-1)/n) is a primitive n-th root of unity.
	exp := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	exp.Div(exp, big.NewInt(FieldElementsPerBlob))

	var g, omega fr.Element
	g.SetUint64(primitiveRoot)
	omega.Exp(g, exp)

	roots := make([]fr.Element, FieldElementsPerBlob)
	roots[0].SetOne()
	for i := 1; i < len(roots); i++ {
		roots[i].Mul(&roots[i-1], &omega)
	}
	// omega^(n/2) must be -1, otherwise omega is not primitive.
	var minusOne fr.Element
	minusOne.SetOne().Neg(&minusOne)
	if !roots[FieldElementsPerBlob/2].Equal(&minusOne) {
		return nil, errNotPrimitiveRoot
	}
	fft.BitReverse(roots)

	d := &evalDomain{roots: roots}
	d.invWidth.SetUint64(FieldElementsPerBlob)
	d.invWidth.Inverse(&d.invWidth)
	return d, nil
}

// computeChallenge derives the evaluation point for a blob proof:
// sha256(domain || n as 16-byte big-endian || blob || commitment) mod r.
func computeChallenge(blob []byte, commitment Commitment) fr.Element {
	var degree [16]byte
	binary.BigEndian.PutUint64(degree[8:], FieldElementsPerBlob)

	h := sha256.New()
	h.Write([]byte(challengeDomain))
	h.Write(degree[:])
	h.Write(blob)
	h.Write(commitment[:])

	var z fr.Element
	z.SetBytes(h.Sum(nil))
	return z
}

// evaluate returns p(z) for the polynomial whose evaluations over the domain
// are stored in blob. blob must already be validated.
//
//	p(z) = (z^n - 1)/n * sum_i p_i * w_i / (z - w_i)
//
// If z is itself a root the stored evaluation is returned directly.
func (d *evalDomain) evaluate(blob []byte, z fr.Element) (fr.Element, error) {
	n := len(d.roots)
	poly := make([]fr.Element, n)
	for i := range poly {
		if err := poly[i].SetBytesCanonical(blob[i*BytesPerFieldElement : (i+1)*BytesPerFieldElement]); err != nil {
			return fr.Element{}, err
		}
	}

	denoms := make([]fr.Element, n)
	for i := range d.roots {
		if z.Equal(&d.roots[i]) {
			return poly[i], nil
		}
		denoms[i].Sub(&z, &d.roots[i])
	}
	inv := fr.BatchInvert(denoms)

	var sum, term fr.Element
	for i := range poly {
		term.Mul(&poly[i], &d.roots[i])
		term.Mul(&term, &inv[i])
		sum.Add(&sum, &term)
	}

	var zn, one fr.Element
	zn.Exp(z, big.NewInt(int64(n)))
	one.SetOne()
	zn.Sub(&zn, &one)

	sum.Mul(&sum, &zn)
	sum.Mul(&sum, &d.invWidth)
	return sum, nil
}
