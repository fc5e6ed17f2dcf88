// Blob codec: validates raw EIP-4844 blobs and splits them into canonical
// BLS12-381 scalars.
//
// A blob is FieldElementsPerBlob big-endian 32-byte chunks. Every chunk must
// be strictly below the scalar field modulus r; anything else is rejected
// with ErrInvalidBlobData before any curve arithmetic runs.
package kzg

import (
	"fmt"

	"github.com/holiman/uint256"
)

// EIP-4844 sizes.
const (
	FieldElementsPerBlob = 4096
	BytesPerFieldElement = 32
	BytesPerBlob         = FieldElementsPerBlob * BytesPerFieldElement // 131072
	BytesPerCommitment   = 48
	BytesPerProof        = 48

	// usableBytesPerElement is the payload carried by one field element when
	// packing arbitrary data: the leading byte stays zero so the chunk is
	// always below r.
	usableBytesPerElement = BytesPerFieldElement - 1

	// MaxDataPerBlob is the largest payload EncodeData accepts.
	MaxDataPerBlob = FieldElementsPerBlob * usableBytesPerElement
)

// blsModulus is r, the BLS12-381 scalar field order.
var blsModulus = uint256.MustFromHex("0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

// FieldElement is a canonical big-endian BLS12-381 scalar.
type FieldElement [BytesPerFieldElement]byte

// DecodeBlob checks the blob's length and the range of every chunk and
// returns the blob as field elements.
func DecodeBlob(blob []byte) ([]FieldElement, error) {
	if err := validateBlob("decode_blob", blob); err != nil {
		return nil, err
	}
	out := make([]FieldElement, FieldElementsPerBlob)
	for i := range out {
		copy(out[i][:], blob[i*BytesPerFieldElement:])
	}
	return out, nil
}

// validateBlob is DecodeBlob without the copy; the backends use it ahead of
// handing the raw bytes to their libraries.
func validateBlob(op string, blob []byte) error {
	if len(blob) != BytesPerBlob {
		return newError(op, ErrInvalidBlobData, msgBadBlobLength,
			fmt.Errorf("got %d bytes", len(blob)))
	}
	var v uint256.Int
	for i := 0; i < FieldElementsPerBlob; i++ {
		chunk := blob[i*BytesPerFieldElement : (i+1)*BytesPerFieldElement]
		v.SetBytes32(chunk)
		if !v.Lt(blsModulus) {
			return newError(op, ErrInvalidBlobData, msgBadFieldElement,
				fmt.Errorf("element %d", i))
		}
	}
	return nil
}

// EncodeData packs an arbitrary payload into a valid blob, 31 bytes per field
// element behind a zero leading byte. The tail of the blob is zero-filled.
func EncodeData(data []byte) ([]byte, error) {
	if len(data) > MaxDataPerBlob {
		return nil, newError("encode_data", ErrInvalidBlobData,
			fmt.Sprintf("payload exceeds %d bytes", MaxDataPerBlob),
			fmt.Errorf("got %d bytes", len(data)))
	}
	blob := make([]byte, BytesPerBlob)
	for i := 0; len(data) > 0; i++ {
		n := copy(blob[i*BytesPerFieldElement+1:(i+1)*BytesPerFieldElement], data)
		data = data[n:]
	}
	return blob, nil
}

// DecodeData is the inverse of EncodeData. The blob carries no length, so
// the full MaxDataPerBlob payload is returned including trailing zeros.
func DecodeData(blob []byte) ([]byte, error) {
	if err := validateBlob("decode_data", blob); err != nil {
		return nil, err
	}
	out := make([]byte, 0, MaxDataPerBlob)
	for i := 0; i < FieldElementsPerBlob; i++ {
		out = append(out, blob[i*BytesPerFieldElement+1:(i+1)*BytesPerFieldElement]...)
	}
	return out, nil
}
