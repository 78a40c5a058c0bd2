package gfrxcofb

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex literal %q: %v", s, err)
	}
	return b
}

func sequentialBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// TestEmptyMessageEmptyAD is scenario S2: with no AD and no plaintext,
// encrypt/decrypt still round-trips, and flipping the tag's first byte
// is caught by Decrypt.
func TestEmptyMessageEmptyAD(t *testing.T) {
	key := mustHex(t, "000102030405060708090A0B0C0D0E0F")
	nonce := mustHex(t, "1011121314151617")

	c, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Destroy()

	ct, tag, err := c.Encrypt(nonce, nil, nil)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if len(ct) != 0 {
		t.Fatalf("ciphertext length = %d, want 0", len(ct))
	}

	pt, err := c.Decrypt(nonce, nil, ct, tag)
	if err != nil {
		t.Fatalf("Decrypt with correct tag: %v", err)
	}

	if len(pt) != 0 {
		t.Fatalf("plaintext length = %d, want 0", len(pt))
	}

	badTag := make([]byte, len(tag))
	copy(badTag, tag)
	badTag[0] ^= 0x01

	if _, err := c.Decrypt(nonce, nil, ct, badTag); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("Decrypt with flipped tag = %v, want ErrAuthentication", err)
	}
}

// TestFullBlockNoAD is scenario S3: one full 16 byte block, no AD.
func TestFullBlockNoAD(t *testing.T) {
	key := mustHex(t, "000102030405060708090A0B0C0D0E0F")
	nonce := mustHex(t, "3031323334353637")
	plain := mustHex(t, "000102030405060708090A0B0C0D0E0F")

	c, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Destroy()

	ct, tag, err := c.Encrypt(nonce, nil, plain)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	pt, err := c.Decrypt(nonce, nil, ct, tag)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(pt, plain) {
		t.Fatalf("recovered plaintext = %x, want %x", pt, plain)
	}
}

// TestWithAssociatedData is scenario S4: AD and a two-block message;
// flipping any single bit of AD must make Decrypt fail.
func TestWithAssociatedData(t *testing.T) {
	key := mustHex(t, "000102030405060708090A0B0C0D0E0F")
	nonce := mustHex(t, "5051525354555657")

	ad := make([]byte, 16)
	for i := range ad {
		ad[i] = 0xAA + byte(i)
	}

	plain := sequentialBytes(32)

	c, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Destroy()

	ct, tag, err := c.Encrypt(nonce, ad, plain)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if _, err := c.Decrypt(nonce, ad, ct, tag); err != nil {
		t.Fatalf("Decrypt with correct AD: %v", err)
	}

	for i := range ad {
		for bit := 0; bit < 8; bit++ {
			flipped := make([]byte, len(ad))
			copy(flipped, ad)
			flipped[i] ^= 1 << uint(bit)

			if _, err := c.Decrypt(nonce, flipped, ct, tag); !errors.Is(err, ErrAuthentication) {
				t.Fatalf("Decrypt with AD byte %d bit %d flipped = %v, want ErrAuthentication", i, bit, err)
			}
		}
	}
}

// TestPartialFinalBlock is scenario S5: an 8 byte (sub-block) message.
func TestPartialFinalBlock(t *testing.T) {
	key := mustHex(t, "202122232425262728292A2B2C2D2E2F")
	nonce := mustHex(t, "0001020304050607")
	plain := sequentialBytes(8)

	c, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Destroy()

	ct, tag, err := c.Encrypt(nonce, nil, plain)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if len(ct) != len(plain) {
		t.Fatalf("ciphertext length = %d, want %d", len(ct), len(plain))
	}

	pt, err := c.Decrypt(nonce, nil, ct, tag)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(pt, plain) {
		t.Fatalf("recovered plaintext = %x, want %x", pt, plain)
	}
}

// TestLongMessage is scenario S6: a 256 byte (16 full block) message;
// round-trips bit-exactly and the tag is stable across repeated runs.
func TestLongMessage(t *testing.T) {
	key := mustHex(t, "303132333435363738393A3B3C3D3E3F")
	nonce := mustHex(t, "4041424344454647")
	plain := sequentialBytes(256)

	c, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Destroy()

	ct1, tag1, err := c.Encrypt(nonce, nil, plain)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	ct2, tag2, err := c.Encrypt(nonce, nil, plain)
	if err != nil {
		t.Fatalf("Encrypt (second run): %v", err)
	}

	if !bytes.Equal(ct1, ct2) || !bytes.Equal(tag1, tag2) {
		t.Fatal("Encrypt is not deterministic for identical inputs")
	}

	pt, err := c.Decrypt(nonce, nil, ct1, tag1)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(pt, plain) {
		t.Fatalf("recovered plaintext does not match original 256 byte message")
	}
}

// TestAllZeroAndAllFFPlaintexts covers the all-zero / all-0xFF fixture
// categories the reference test-vector generator binds to, at several
// of its sizes (0, 8, 16, 32, 64, 256).
func TestAllZeroAndAllFFPlaintexts(t *testing.T) {
	key := mustHex(t, "000102030405060708090A0B0C0D0E0F")
	nonce := mustHex(t, "FFEEDDCCBBAA9988")

	sizes := []int{0, 8, 16, 32, 64, 256}

	c, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Destroy()

	for _, size := range sizes {
		for _, fill := range []byte{0x00, 0xFF} {
			plain := make([]byte, size)
			for i := range plain {
				plain[i] = fill
			}

			ct, tag, err := c.Encrypt(nonce, nil, plain)
			if err != nil {
				t.Fatalf("Encrypt(size=%d, fill=%#x): %v", size, fill, err)
			}

			pt, err := c.Decrypt(nonce, nil, ct, tag)
			if err != nil {
				t.Fatalf("Decrypt(size=%d, fill=%#x): %v", size, fill, err)
			}

			if !bytes.Equal(pt, plain) {
				t.Fatalf("round trip mismatch at size=%d, fill=%#x", size, fill)
			}
		}
	}
}

// TestTamperDetection covers the universal "flip one bit anywhere and
// decryption fails" property across ciphertext, tag, nonce, and key.
func TestTamperDetection(t *testing.T) {
	key := mustHex(t, "0F0E0D0C0B0A09080706050403020100")
	nonce := mustHex(t, "1234567890ABCDEF")
	ad := []byte("header")
	plain := sequentialBytes(20)

	c, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Destroy()

	ct, tag, err := c.Encrypt(nonce, ad, plain)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	flipFirstByte := func(b []byte) []byte {
		out := make([]byte, len(b))
		copy(out, b)
		out[0] ^= 0x01
		return out
	}

	if _, err := c.Decrypt(nonce, ad, flipFirstByte(ct), tag); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("tampered ciphertext: got %v, want ErrAuthentication", err)
	}

	if _, err := c.Decrypt(nonce, ad, ct, flipFirstByte(tag)); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("tampered tag: got %v, want ErrAuthentication", err)
	}

	if _, err := c.Decrypt(flipFirstByte(nonce), ad, ct, tag); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("tampered nonce: got %v, want ErrAuthentication", err)
	}

	wrongKeyCipher, err := New(flipFirstByte(key))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer wrongKeyCipher.Destroy()
	if _, err := wrongKeyCipher.Decrypt(nonce, ad, ct, tag); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("tampered key: got %v, want ErrAuthentication", err)
	}
}

func TestInvalidArgumentSizes(t *testing.T) {
	c, err := New(mustHex(t, "000102030405060708090A0B0C0D0E0F"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Destroy()

	if _, err := New(make([]byte, 8)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("New with short key = %v, want ErrInvalidArgument", err)
	}

	if _, _, err := c.Encrypt(make([]byte, 4), nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Encrypt with short nonce = %v, want ErrInvalidArgument", err)
	}

	nonce := mustHex(t, "0001020304050607")
	if _, err := c.Decrypt(nonce, nil, nil, make([]byte, 15)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Decrypt with short tag = %v, want ErrInvalidArgument", err)
	}
}

func TestDestroyZeroizesKey(t *testing.T) {
	c, err := New(mustHex(t, "101112131415161718191A1B1C1D1E1F"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.Destroy()

	for i, b := range c.key {
		if b != 0 {
			t.Fatalf("Destroy left key byte %d = %#x, want 0", i, b)
		}
	}
}
