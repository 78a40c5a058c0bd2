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

// Package consts defines constant values used by the GFRX-128/COFB implementation.
package consts

const (
	// Size of the GFRX block.
	BLOCK_SIZE = 16

	// Size of the GFRX/COFB key.
	KEY_SIZE = 16

	// Size of the nonce used to initialize a COFB context.
	NONCE_SIZE = 8

	// Size of the authentication tag produced by COFB.
	TAG_SIZE = 16

	// Size of a 32 bit word in bytes.
	WORD_SIZE = 4

	// Number of 32 bit words making up one block.
	WORDS_PER_BLOCK = BLOCK_SIZE / WORD_SIZE

	// Number of GFRX Feistel-ARX rounds.
	ROUNDS = 32

	// Key schedule constant mixed into the right-half FAN computation
	// every round, reproduced exactly from the reference construction.
	SCHEDULE_CONST = 0x12345678

	// Reduction constant for GF(2^64) with the fixed irreducible
	// polynomial x^64 + x^4 + x^3 + x + 1, applied on carry-out from
	// the top bit during doubling.
	MASK_POLY = 0x1B
)
