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

// This schedule has been heavily inspired by the reference GFRX-COFB
// implementation's gfrx_key_schedule routine.

package gfrx

import (
	"errors"

	"github.com/wedkarz02/gfrxcofb-go/src/codec"
	"github.com/wedkarz02/gfrxcofb-go/src/consts"
)

// RoundKey is one round's (L0, L1, R0, R1) quadruple.
type RoundKey [4]uint32

// ExpandedKey holds the 32 round key quadruples derived from a 128 bit key.
type ExpandedKey [consts.ROUNDS]RoundKey

// ExpandKey runs the GFRX key schedule over a 16 byte key, emitting one
// round key quadruple per round before mixing the state for the next
// round. It is a pure function of k: identical keys produce identical
// expansions.
//
// https://www.samiam.org/key-schedule.html (schedule shape, not the GFRX
// round function itself)
func ExpandKey(k []byte) (*ExpandedKey, error) {
	if len(k) != consts.KEY_SIZE {
		return nil, errors.New("invalid key size")
	}

	l0 := codec.PackU32(k[0:4])
	l1 := codec.PackU32(k[4:8])
	r0 := codec.PackU32(k[8:12])
	r1 := codec.PackU32(k[12:16])

	var xKey ExpandedKey

	for r := 0; r < consts.ROUNDS; r++ {
		xKey[r] = RoundKey{l0, l1, r0, r1}

		s0 := fan(l0, l1, uint32(r))
		s1 := fadl(l1, r0) ^ (uint32(r) << 16)
		s2 := fadr(r0, s1)
		s3 := fan(r1, r0, uint32(r)+consts.SCHEDULE_CONST)

		l0, l1, r0, r1 = s1, s3, s0, s2
	}

	return &xKey, nil
}
