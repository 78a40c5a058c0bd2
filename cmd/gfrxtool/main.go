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

// gfrxtool is a small file-encryption CLI around the gfrxcofb AEAD. See
// the AEAD container format below; unlike the reference C tool this
// implementation stores ad_len little-endian (the reference tool's
// native-endian field is a known portability wart) and has no weak-PRNG
// fallback for nonce generation.
package main

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/wedkarz02/gfrxcofb-go"
	"github.com/wedkarz02/gfrxcofb-go/src/consts"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s encrypt <input> <key_hex32> [ad]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s decrypt <input> <key_hex32>\n", os.Args[0])
}

func main() {
	if len(os.Args) < 4 || len(os.Args) > 5 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]
	inputFile := os.Args[2]
	keyHex := os.Args[3]

	var ad []byte
	if len(os.Args) == 5 {
		ad = []byte(os.Args[4])
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != consts.KEY_SIZE {
		fmt.Fprintln(os.Stderr, "Error: invalid key format (need 32 hex chars)")
		os.Exit(1)
	}

	cipher, err := gfrxcofb.New(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cipher.Destroy()

	switch command {
	case "encrypt":
		if err := encryptFile(cipher, inputFile, ad); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "decrypt":
		if err := decryptFile(cipher, inputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func randomNonce() ([]byte, error) {
	nonce := make([]byte, consts.NONCE_SIZE)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("nonce generation failed: %w", err)
	}
	return nonce, nil
}

// encryptFile writes inputFile.enc laid out as:
// ad_len(2, little-endian) || ad || nonce(8) || tag(16) || ciphertext.
func encryptFile(cipher *gfrxcofb.Cipher, inputFile string, ad []byte) error {
	plainText, err := os.ReadFile(inputFile)
	if err != nil {
		return err
	}

	nonce, err := randomNonce()
	if err != nil {
		return err
	}

	cipherText, tag, err := cipher.Encrypt(nonce, ad, plainText)
	if err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}

	if len(ad) > 0xFFFF {
		return fmt.Errorf("associated data too large for a 16 bit length field")
	}

	out := make([]byte, 0, 2+len(ad)+consts.NONCE_SIZE+consts.TAG_SIZE+len(cipherText))
	adLenField := make([]byte, 2)
	binary.LittleEndian.PutUint16(adLenField, uint16(len(ad)))

	out = append(out, adLenField...)
	out = append(out, ad...)
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, cipherText...)

	outputFile := inputFile + ".enc"
	if err := os.WriteFile(outputFile, out, 0o600); err != nil {
		return err
	}

	fmt.Printf("Encrypted: %s -> %s\n", inputFile, outputFile)
	if len(ad) > 0 {
		fmt.Printf("AD: %s\n", ad)
	}
	fmt.Printf("Size: %d bytes\n", len(plainText))

	return nil
}

func decryptFile(cipher *gfrxcofb.Cipher, inputFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return err
	}

	const headerMin = 2 + consts.NONCE_SIZE + consts.TAG_SIZE
	if len(data) < headerMin {
		return fmt.Errorf("file too small")
	}

	offset := 0
	adLen := int(binary.LittleEndian.Uint16(data[offset : offset+2]))
	offset += 2

	if len(data) < offset+adLen+consts.NONCE_SIZE+consts.TAG_SIZE {
		return fmt.Errorf("file corrupted (invalid AD length)")
	}

	var ad []byte
	if adLen > 0 {
		ad = data[offset : offset+adLen]
		offset += adLen
	}

	nonce := data[offset : offset+consts.NONCE_SIZE]
	offset += consts.NONCE_SIZE

	tag := data[offset : offset+consts.TAG_SIZE]
	offset += consts.TAG_SIZE

	cipherText := data[offset:]

	plainText, err := cipher.Decrypt(nonce, ad, cipherText, tag)
	if err != nil {
		return fmt.Errorf("decryption failed (wrong key or corrupted file): %w", err)
	}

	outputFile := trimEncSuffix(inputFile)
	if err := os.WriteFile(outputFile, plainText, 0o600); err != nil {
		return err
	}

	fmt.Printf("Decrypted: %s -> %s\n", inputFile, outputFile)
	fmt.Printf("Size: %d bytes\n", len(plainText))

	return nil
}

func trimEncSuffix(name string) string {
	const suffix = ".enc"
	if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
		return name[:len(name)-len(suffix)]
	}
	return name + ".dec"
}
