package secure

import "testing"

func TestCtEqualTrue(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03, 0x04}
	b := []byte{0x01, 0x02, 0x03, 0x04}

	if !CtEqual(a, b) {
		t.Fatal("CtEqual reported equal slices as different")
	}
}

func TestCtEqualFalseSameLength(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03, 0x04}
	b := []byte{0x01, 0x02, 0x03, 0x05}

	if CtEqual(a, b) {
		t.Fatal("CtEqual reported differing slices as equal")
	}
}

func TestCtEqualFalseDifferentLength(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03}
	b := []byte{0x01, 0x02, 0x03, 0x04}

	if CtEqual(a, b) {
		t.Fatal("CtEqual reported mismatched-length slices as equal")
	}
}

func TestCtEqualDetectsEveryPosition(t *testing.T) {
	base := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80}

	for i := range base {
		flipped := make([]byte, len(base))
		copy(flipped, base)
		flipped[i] ^= 0x01

		if CtEqual(base, flipped) {
			t.Fatalf("CtEqual missed a flipped byte at index %d", i)
		}
	}
}

func TestZeroize(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	Zeroize(buf)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("Zeroize left byte %d = %#x, want 0", i, b)
		}
	}
}
