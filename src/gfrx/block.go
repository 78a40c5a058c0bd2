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

package gfrx

import (
	"errors"

	"github.com/wedkarz02/gfrxcofb-go/src/codec"
	"github.com/wedkarz02/gfrxcofb-go/src/consts"
)

// Context holds the expanded round-key schedule for one key. It is
// read-only once created and must be zeroized when the caller is done
// with it.
type Context struct {
	roundKeys *ExpandedKey
}

// NewContext runs the key schedule and returns a read-only block-cipher
// context for k.
func NewContext(k []byte) (*Context, error) {
	xKey, err := ExpandKey(k)
	if err != nil {
		return nil, err
	}

	return &Context{roundKeys: xKey}, nil
}

// Zeroize overwrites the expanded round-key schedule with zeros.
func (c *Context) Zeroize() {
	if c.roundKeys == nil {
		return
	}

	for r := range c.roundKeys {
		for i := range c.roundKeys[r] {
			c.roundKeys[r][i] = 0
		}
	}
}

// EncryptBlock performs the forward 128 bit GFRX transform on one block,
// allocating a fresh output block.
func (c *Context) EncryptBlock(plainText []byte) ([]byte, error) {
	out := make([]byte, consts.BLOCK_SIZE)
	if err := c.EncryptBlockInto(out, plainText); err != nil {
		return nil, err
	}
	return out, nil
}

// EncryptBlockInto performs the same forward transform as EncryptBlock
// but writes the result into the caller-supplied dst instead of
// allocating a new block. Callers that thread a single buffer across
// many calls (the COFB feedback register, in particular) never leave a
// previous call's output as unreferenced, unzeroized heap memory this
// way.
func (c *Context) EncryptBlockInto(dst, plainText []byte) error {
	if len(plainText) != consts.BLOCK_SIZE {
		return errors.New("state size not matching the block size")
	}
	if len(dst) != consts.BLOCK_SIZE {
		return errors.New("dst size not matching the block size")
	}

	l0, l1, r0, r1 := unpackState(plainText)

	for r := 0; r < consts.ROUNDS; r++ {
		rk := c.roundKeys[r]

		s0 := fan(l0, l1, rk[0])
		s1 := fadl(l1, r0) ^ rk[1]
		s2 := fadr(r0, s1)
		s3 := fan(r1, r0, rk[2])

		l0, l1, r0, r1 = s1, s3, s0, s2
	}

	packStateInto(dst, l0, l1, r0, r1)
	return nil
}

// DecryptBlock performs the inverse 128 bit GFRX transform on one block,
// allocating a fresh output block.
func (c *Context) DecryptBlock(cipherText []byte) ([]byte, error) {
	out := make([]byte, consts.BLOCK_SIZE)
	if err := c.DecryptBlockInto(out, cipherText); err != nil {
		return nil, err
	}
	return out, nil
}

// DecryptBlockInto is DecryptBlock's caller-supplied-buffer counterpart,
// mirroring EncryptBlockInto.
func (c *Context) DecryptBlockInto(dst, cipherText []byte) error {
	if len(cipherText) != consts.BLOCK_SIZE {
		return errors.New("state size not matching the block size")
	}
	if len(dst) != consts.BLOCK_SIZE {
		return errors.New("dst size not matching the block size")
	}

	s1, s3, s0, s2 := unpackState(cipherText)

	for r := consts.ROUNDS - 1; r >= 0; r-- {
		rk := c.roundKeys[r]

		r0 := fadrInv(s2, s1)
		l1 := fadlInv(s1^rk[1], r0)

		t1 := rotl32(l1, 1)
		t8 := rotl32(l1, 8)
		t2 := rotl32(l1, 2)
		l0 := s0 ^ (t1 & t8) ^ t2 ^ rk[0]

		t1 = rotl32(r0, 1)
		t8 = rotl32(r0, 8)
		t2 = rotl32(r0, 2)
		r1 := s3 ^ (t1 & t8) ^ t2 ^ rk[2]

		s1, s3, s0, s2 = l0, l1, r0, r1
	}

	packStateInto(dst, s1, s3, s0, s2)
	return nil
}

func unpackState(block []byte) (uint32, uint32, uint32, uint32) {
	w := codec.BlockToWords(block)
	return w[0], w[1], w[2], w[3]
}

// packStateInto packs (a,b,c,d) into dst in place.
func packStateInto(dst []byte, a, b, c, d uint32) {
	block := codec.WordsToBlock([4]uint32{a, b, c, d})
	copy(dst, block[:])
}
