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

// Package codec implements the little-endian byte/word packing used by
// the GFRX block cipher and the COFB mask schedule. The endian choice is
// a normative part of the wire format: changing it produces
// non-interoperable output.
package codec

// PackU32 reads a little-endian 32 bit word starting at b[0].
func PackU32(b []byte) uint32 {
	return uint32(b[0]) |
		uint32(b[1])<<8 |
		uint32(b[2])<<16 |
		uint32(b[3])<<24
}

// UnpackU32 writes w into b[0:4] little-endian.
func UnpackU32(w uint32, b []byte) {
	b[0] = byte(w)
	b[1] = byte(w >> 8)
	b[2] = byte(w >> 16)
	b[3] = byte(w >> 24)
}

// PackU64 reads a little-endian 64 bit word starting at b[0].
func PackU64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

// UnpackU64 writes w into b[0:8] little-endian.
func UnpackU64(w uint64, b []byte) {
	for i := 0; i < 8; i++ {
		b[i] = byte(w >> (8 * i))
	}
}

// WordsToBlock packs four little-endian 32 bit words into a 16 byte block.
func WordsToBlock(words [4]uint32) [16]byte {
	var block [16]byte
	for i, w := range words {
		UnpackU32(w, block[i*4:i*4+4])
	}
	return block
}

// BlockToWords unpacks a 16 byte block into four little-endian 32 bit words.
func BlockToWords(block []byte) [4]uint32 {
	var words [4]uint32
	for i := range words {
		words[i] = PackU32(block[i*4 : i*4+4])
	}
	return words
}
