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

// Package secure implements the constant-time comparison and best-effort
// zeroization primitives the COFB tag check and context teardown rely on.
package secure

// CtEqual reports whether a and b are equal, taking time independent of
// the position of the first differing byte. Unequal lengths are reported
// as unequal without comparing any bytes.
func CtEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}

	return diff == 0
}

// Zeroize overwrites buf with zeros. It clears the Cipher's key copy on
// Destroy, and the COFB feedback register (and, on a failed tag check,
// the plaintext buffer) on every Encrypt/Decrypt exit, so sensitive
// state does not linger in memory after a call returns. Round keys are
// cleared separately by gfrx.Context.Zeroize.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
