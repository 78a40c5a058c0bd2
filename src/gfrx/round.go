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

// Package gfrx implements the GFRX-128 Feistel-ARX block cipher: its
// round primitives, key schedule, and full-block encrypt/decrypt
// transforms. No table lookups are used anywhere in this package; that
// is an intentional ARX design property and must not be "optimized"
// away by introducing S-box style indexing.
package gfrx

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

func rotr32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

// fan is the only non-linear round primitive (it uses AND); the rest of
// the round function is addition, rotation, and XOR.
//
// FAN(x0, x1, k) = (rotl(x1,1) & rotl(x1,8)) ^ x0 ^ rotl(x1,2) ^ k
func fan(x0, x1, k uint32) uint32 {
	t1 := rotl32(x1, 1)
	t8 := rotl32(x1, 8)
	t2 := rotl32(x1, 2)
	return (t1 & t8) ^ x0 ^ t2 ^ k
}

// fadl(x, y) = rotl((x + y) mod 2^32, 8)
func fadl(x, y uint32) uint32 {
	return rotl32(x+y, 8)
}

// fadr(x, y) = rotl(x ^ y, 3)
func fadr(x, y uint32) uint32 {
	return rotl32(x^y, 3)
}

// fadlInv(u, y) = (rotr(u, 8) - y) mod 2^32
func fadlInv(u, y uint32) uint32 {
	return rotr32(u, 8) - y
}

// fadrInv(u, y) = rotr(u, 3) ^ y
func fadrInv(u, y uint32) uint32 {
	return rotr32(u, 3) ^ y
}
