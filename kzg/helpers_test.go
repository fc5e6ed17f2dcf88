package kzg

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// randomBlob returns a deterministic valid blob. Each element's top byte is
// cleared so it is always below r.
func randomBlob(seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	blob := make([]byte, BytesPerBlob)
	rng.Read(blob)
	for i := 0; i < FieldElementsPerBlob; i++ {
		blob[i*BytesPerFieldElement] = 0
	}
	return blob
}

// modulusBytes returns r as a 32-byte big-endian chunk.
func modulusBytes() [32]byte {
	return blsModulus.Bytes32()
}

// loadFixture reads a blob from testdata, skipping the test when absent.
func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Skipf("fixture %s not available: %v", name, err)
	}
	return data
}

// testBackends returns one instance of every backend kind.
func testBackends(t *testing.T) []Backend {
	t.Helper()
	var out []Backend
	for _, k := range []Kind{KindFull, KindVerifyOnly} {
		b, err := New(Config{Backend: k})
		if err != nil {
			t.Fatalf("New(%v): %v", k, err)
		}
		out = append(out, b)
	}
	return out
}
