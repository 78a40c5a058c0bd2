// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package gfrxcofb implements the GFRX-128 block cipher combined with
// the COFB (COmbined FeedBack) mode, giving a nonce-based AEAD: a single
// block-cipher call per 16 byte chunk of associated data or message,
// chained through a linear feedback register and a GF(2^64) mask
// schedule derived from the nonce.
package gfrxcofb

import (
	"github.com/wedkarz02/gfrxcofb-go/src/codec"
	"github.com/wedkarz02/gfrxcofb-go/src/consts"
	"github.com/wedkarz02/gfrxcofb-go/src/gfrx"
	"github.com/wedkarz02/gfrxcofb-go/src/mask"
	"github.com/wedkarz02/gfrxcofb-go/src/secure"
)

// Cipher holds the 16 byte key for repeated Encrypt/Decrypt calls. Each
// call expands its own throwaway GFRX round-key schedule and zeroizes it
// before returning; the Cipher itself retains only the raw key.
type Cipher struct {
	key []byte
}

// New builds a Cipher from a 16 byte key. The key bytes are copied; the
// caller's slice is never retained or modified.
func New(key []byte) (*Cipher, error) {
	if len(key) != consts.KEY_SIZE {
		return nil, ErrInvalidArgument
	}

	k := make([]byte, consts.KEY_SIZE)
	copy(k, key)

	return &Cipher{key: k}, nil
}

// Destroy zeroizes the copy of the key held by c. c must not be used
// afterwards.
func (c *Cipher) Destroy() {
	secure.Zeroize(c.key)
}

// Encrypt runs the COFB schedule forward: nonce-derived init, AD
// absorption, message encryption, tag finalization. len(ciphertext) ==
// len(plainText); the tag is returned separately and must travel
// alongside the ciphertext out of band.
//
// The feedback register Y lives in a single fixed-size array for the
// whole call: every block-cipher call writes its output back into that
// same array (see gfrx.Context.EncryptBlockInto), so no intermediate
// value of Y is ever left behind as unreferenced, unzeroized heap
// memory. One deferred zeroization covers every state Y ever takes,
// including the final one used as the tag.
func (c *Cipher) Encrypt(nonce, ad, plainText []byte) (cipherText []byte, tag []byte, err error) {
	if len(nonce) != consts.NONCE_SIZE {
		return nil, nil, ErrInvalidArgument
	}

	ctx, err := gfrx.NewContext(c.key)
	if err != nil {
		return nil, nil, err
	}
	defer ctx.Zeroize()

	var yBuf [consts.BLOCK_SIZE]byte
	y := yBuf[:]
	defer secure.Zeroize(y)

	delta, err := initFromNonce(ctx, nonce, y)
	if err != nil {
		return nil, nil, err
	}

	adBlocks, err := absorbAD(ctx, y, delta, ad)
	if err != nil {
		return nil, nil, err
	}

	cipherText = make([]byte, len(plainText))

	if len(plainText) == 0 {
		err = finalizeEmpty(ctx, y, delta, adBlocks)
	} else {
		err = encryptMessage(ctx, y, delta, adBlocks, plainText, cipherText)
	}

	if err != nil {
		return nil, nil, err
	}

	tag = make([]byte, consts.TAG_SIZE)
	copy(tag, y)

	return cipherText, tag, nil
}

// Decrypt runs the COFB schedule with rho^-1 and checks the recomputed
// tag against tag in constant time. On mismatch the output buffer is
// zeroized and ErrAuthentication is returned; no partial plaintext is
// ever handed back to the caller. Y is threaded through a single
// fixed-size array exactly as in Encrypt.
func (c *Cipher) Decrypt(nonce, ad, cipherText, tag []byte) (plainText []byte, err error) {
	if len(nonce) != consts.NONCE_SIZE || len(tag) != consts.TAG_SIZE {
		return nil, ErrInvalidArgument
	}

	ctx, err := gfrx.NewContext(c.key)
	if err != nil {
		return nil, err
	}
	defer ctx.Zeroize()

	var yBuf [consts.BLOCK_SIZE]byte
	y := yBuf[:]
	defer secure.Zeroize(y)

	delta, err := initFromNonce(ctx, nonce, y)
	if err != nil {
		return nil, err
	}

	adBlocks, err := absorbAD(ctx, y, delta, ad)
	if err != nil {
		return nil, err
	}

	plainText = make([]byte, len(cipherText))

	if len(cipherText) == 0 {
		err = finalizeEmpty(ctx, y, delta, adBlocks)
	} else {
		err = decryptMessage(ctx, y, delta, adBlocks, cipherText, plainText)
	}

	if err != nil {
		return nil, err
	}

	if !secure.CtEqual(y, tag) {
		secure.Zeroize(plainText)
		return nil, ErrAuthentication
	}

	return plainText, nil
}

// initFromNonce derives the initial feedback register Y and mask seed
// Delta from a fresh nonce block (nonce padded to 16 bytes with zeros),
// writing Y into the caller-owned y.
func initFromNonce(ctx *gfrx.Context, nonce []byte, y []byte) (delta uint64, err error) {
	nonceBlock := make([]byte, consts.BLOCK_SIZE)
	copy(nonceBlock, nonce)

	if err := ctx.EncryptBlockInto(y, nonceBlock); err != nil {
		return 0, err
	}

	return codec.PackU64(y[:8]), nil
}

// absorbAD feeds ad through rho (ciphertext output discarded), updating
// y in place after every block, and returns the number of AD blocks
// consumed (needed to continue the mask/position schedule into the
// message phase).
func absorbAD(ctx *gfrx.Context, y []byte, delta uint64, ad []byte) (int, error) {
	adLen := len(ad)
	if adLen == 0 {
		return 0, nil
	}

	adBlocks := (adLen + consts.BLOCK_SIZE - 1) / consts.BLOCK_SIZE

	for i := 0; i < adBlocks; i++ {
		block, blockLen, partial := blockAt(ad, i, adBlocks)

		x, _ := rho(y, block, blockLen)
		applyMask(x, mask.ComputeMask(delta, i, domainBit(partial)))

		if err := ctx.EncryptBlockInto(y, x); err != nil {
			return 0, err
		}
	}

	return adBlocks, nil
}

// encryptMessage feeds plainText through rho, writing ciphertext bytes
// into out as it goes and updating y in place after every block.
func encryptMessage(ctx *gfrx.Context, y []byte, delta uint64, adBlocks int, plainText, out []byte) error {
	msgLen := len(plainText)
	msgBlocks := (msgLen + consts.BLOCK_SIZE - 1) / consts.BLOCK_SIZE

	for j := 0; j < msgBlocks; j++ {
		block, blockLen, partial := blockAt(plainText, j, msgBlocks)

		x, c := rho(y, block, blockLen)
		copy(out[j*consts.BLOCK_SIZE:j*consts.BLOCK_SIZE+blockLen], c[:blockLen])

		applyMask(x, mask.ComputeMask(delta, adBlocks+j, domainBit(partial)))

		if err := ctx.EncryptBlockInto(y, x); err != nil {
			return err
		}
	}

	return nil
}

// decryptMessage is encryptMessage's mirror: it runs rho^-1 over
// cipherText, writing recovered plaintext bytes into out and updating y
// in place after every block.
func decryptMessage(ctx *gfrx.Context, y []byte, delta uint64, adBlocks int, cipherText, out []byte) error {
	ctLen := len(cipherText)
	msgBlocks := (ctLen + consts.BLOCK_SIZE - 1) / consts.BLOCK_SIZE

	for j := 0; j < msgBlocks; j++ {
		block, blockLen, partial := blockAt(cipherText, j, msgBlocks)

		x, m := rhoInverse(y, block, blockLen)
		copy(out[j*consts.BLOCK_SIZE:j*consts.BLOCK_SIZE+blockLen], m[:blockLen])

		applyMask(x, mask.ComputeMask(delta, adBlocks+j, domainBit(partial)))

		if err := ctx.EncryptBlockInto(y, x); err != nil {
			return err
		}
	}

	return nil
}

// finalizeEmpty handles the msg_len == 0 branch: one extra
// masking+cipher call over G(Y) stands in for the (skipped) message
// phase, and its output (written back into y) is the tag.
func finalizeEmpty(ctx *gfrx.Context, y []byte, delta uint64, adBlocks int) error {
	x := gFunction(y)
	applyMask(x, mask.ComputeMask(delta, adBlocks, 1))
	return ctx.EncryptBlockInto(y, x)
}

// blockAt slices out block index i of total (a 16 byte chunk of data),
// zero-padding the final block when it is shorter than 16 bytes. partial
// reports whether this is that padded, sub-16-byte tail block.
func blockAt(data []byte, i, total int) (block []byte, blockLen int, partial bool) {
	start := i * consts.BLOCK_SIZE

	if i == total-1 && len(data)%consts.BLOCK_SIZE != 0 {
		blockLen = len(data) % consts.BLOCK_SIZE
		partial = true
		block = make([]byte, consts.BLOCK_SIZE)
		copy(block, data[start:start+blockLen])
		return block, blockLen, true
	}

	return data[start : start+consts.BLOCK_SIZE], consts.BLOCK_SIZE, false
}

func domainBit(partial bool) int {
	if partial {
		return 1
	}
	return 0
}

// applyMask XORs the low 8 bytes of a 16 byte pre-cipher input with m;
// the high 8 bytes are never masked.
func applyMask(x []byte, m uint64) {
	var mb [8]byte
	codec.UnpackU64(m, mb[:])

	for i := 0; i < 8; i++ {
		x[i] ^= mb[i]
	}
}

// gFunction is COFB's linear feedback-mixing function: viewing Y as four
// little-endian 32 bit words (Y1, Y2, Y3, Y4), it produces
// (Y2, Y3, Y4, Y4^Y1) packed back little-endian.
func gFunction(y []byte) []byte {
	w := codec.BlockToWords(y)
	g := [4]uint32{w[1], w[2], w[3], w[3] ^ w[0]}

	packed := codec.WordsToBlock(g)
	out := make([]byte, consts.BLOCK_SIZE)
	copy(out, packed[:])

	return out
}

// rho mixes message block m (length blockLen, zero-padded) into Y,
// producing the pre-cipher input x and, when the caller wants it, the
// ciphertext bytes c := Y[:blockLen] ^ m[:blockLen].
func rho(y, m []byte, blockLen int) (x, c []byte) {
	gy := gFunction(y)

	x = make([]byte, consts.BLOCK_SIZE)
	copy(x, gy)
	for i := 0; i < blockLen; i++ {
		x[i] = gy[i] ^ m[i]
	}

	c = make([]byte, blockLen)
	for i := 0; i < blockLen; i++ {
		c[i] = y[i] ^ m[i]
	}

	return x, c
}

// rhoInverse is rho's mirror for decryption: it recovers plaintext m
// from ciphertext block c, then produces x the same way rho would have
// from the recovered (zero-padded) plaintext.
func rhoInverse(y, c []byte, blockLen int) (x, m []byte) {
	gy := gFunction(y)

	mPadded := make([]byte, consts.BLOCK_SIZE)
	for i := 0; i < blockLen; i++ {
		mPadded[i] = y[i] ^ c[i]
	}

	x = make([]byte, consts.BLOCK_SIZE)
	for i := 0; i < consts.BLOCK_SIZE; i++ {
		x[i] = gy[i] ^ mPadded[i]
	}

	return x, mPadded[:blockLen]
}
