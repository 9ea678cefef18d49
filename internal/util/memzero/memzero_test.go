package memzero

import (
	"bytes"
	"testing"
)

func TestZero_WipesEveryBuffer(t *testing.T) {
	a := []byte("session-token")
	b := []byte{1, 2, 3}
	Zero(a, nil, b)

	if !bytes.Equal(a, make([]byte, len(a))) || !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("buffers not wiped: %v %v", a, b)
	}
}
