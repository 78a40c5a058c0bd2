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

// Package mask implements the COFB mask schedule: doubling and tripling
// in GF(2^64) under the fixed irreducible polynomial
// x^64 + x^4 + x^3 + x + 1, and the (a, b) position/domain encoding that
// derives a per-block mask from the nonce-derived seed Delta.
package mask

import "github.com/wedkarz02/gfrxcofb-go/src/consts"

// Double returns m multiplied by the field element x (a single left
// shift with conditional reduction on carry-out from bit 63).
func Double(m uint64) uint64 {
	msb := m >> 63
	m <<= 1

	if msb != 0 {
		m ^= consts.MASK_POLY
	}

	return m
}

// Triple returns m multiplied by the field element (x + 1), i.e.
// Double(m) XOR m.
func Triple(m uint64) uint64 {
	return Double(m) ^ m
}

// ComputeMask derives the mask for block index a with domain bit b: it
// doubles delta a times, then triples once more if b == 1. The COFB
// driver passes b == 1 for a sub-16-byte final block and for the
// empty-message finalization call, and b == 0 for every full 16 byte
// block, including a final one.
func ComputeMask(delta uint64, a int, b int) uint64 {
	m := delta

	for i := 0; i < a; i++ {
		m = Double(m)
	}

	if b == 1 {
		m = Triple(m)
	}

	return m
}
