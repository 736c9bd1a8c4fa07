// Copyright (c) 2017 Takatoshi Nakagawa
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package bech32

import (
	"strings"
)

// charset maps 5-bit values to their bech32 character and back.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const (
	// separator splits the human-readable part from the data part.
	separator = '1'

	// checksumLength is the number of 5-bit checksum groups appended to
	// the data part.
	checksumLength = 6

	// maxStringLength is the longest valid bech32 string, per BIP 173.
	maxStringLength = 90

	// maxHRPLength is the longest valid human-readable part.
	maxHRPLength = 83

	// bech32Const closes the BCH code for the original bech32 checksum
	// variant. bech32m would use 0x2bc830a3 here instead; it is not
	// supported.
	bech32Const = 1
)

var generator = [5]int{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// polymod runs the BCH generator polynomial over the given values and
// returns the 30-bit residue state.
func polymod(values []byte) int {
	chk := 1
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ int(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

// hrpExpand spreads the hrp characters across the checksum computation so
// that hrp corruption is detectable: high bits first, a zero, then low bits.
// The hrp must already be lowercased.
func hrpExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&31)
	}
	return ret
}

func verifyChecksum(hrp string, data []byte) bool {
	return polymod(append(hrpExpand(hrp), data...)) == bech32Const
}

func createChecksum(hrp string, data []byte) []byte {
	values := append(append(hrpExpand(hrp), data...), 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ bech32Const
	ret := make([]byte, checksumLength)
	for p := 0; p < len(ret); p++ {
		ret[p] = byte(mod>>uint(5*(5-p))) & 31
	}
	return ret
}

// checkHRP validates the human-readable part: length 1..83 and every
// character in the printable range 33..126.
func checkHRP(hrp string) error {
	if len(hrp) < 1 || len(hrp) > maxHRPLength {
		return ErrInvalidHRPLength(len(hrp))
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return ErrInvalidCharacter(hrp[i])
		}
	}
	return nil
}

// Encode encodes the hrp (human-readable part) and data (5-bit groups) into
// a checksummed bech32 string. If the hrp is uppercase, the returned string
// is uppercase.
func Encode(hrp string, data []byte) (string, error) {
	if err := checkHRP(hrp); err != nil {
		return "", err
	}
	if length := len(hrp) + 1 + len(data) + checksumLength; length > maxStringLength {
		return "", ErrInvalidLength(length)
	}
	if strings.ToUpper(hrp) != hrp && strings.ToLower(hrp) != hrp {
		return "", ErrMixedCase{}
	}
	lower := strings.ToLower(hrp) == hrp
	hrp = strings.ToLower(hrp)

	combined := make([]byte, 0, len(data)+checksumLength)
	combined = append(combined, data...)
	combined = append(combined, createChecksum(hrp, data)...)

	var ret strings.Builder
	ret.WriteString(hrp)
	ret.WriteByte(separator)
	for _, p := range combined {
		if int(p) >= len(charset) {
			return "", ErrInvalidDataByte(p)
		}
		ret.WriteByte(charset[p])
	}
	if lower {
		return ret.String(), nil
	}
	return strings.ToUpper(ret.String()), nil
}

// Decode decodes a bech32 encoded string, returning the hrp in its original
// case and the data part as 5-bit groups with the checksum stripped.
func Decode(bech string) (string, []byte, error) {
	if len(bech) > maxStringLength {
		return "", nil, ErrInvalidLength(len(bech))
	}
	if strings.ToLower(bech) != bech && strings.ToUpper(bech) != bech {
		return "", nil, ErrMixedCase{}
	}
	lowered := strings.ToLower(bech)
	pos := strings.LastIndexByte(lowered, separator)
	if pos < 1 || pos+checksumLength+1 > len(lowered) {
		return "", nil, ErrInvalidSeparatorIndex(pos)
	}
	hrp := lowered[:pos]
	if err := checkHRP(hrp); err != nil {
		return "", nil, err
	}
	data := make([]byte, 0, len(lowered)-pos-1)
	for i := pos + 1; i < len(lowered); i++ {
		d := strings.IndexByte(charset, lowered[i])
		if d == -1 {
			return "", nil, ErrNonCharsetChar(lowered[i])
		}
		data = append(data, byte(d))
	}
	if !verifyChecksum(hrp, data) {
		payload := data[:len(data)-checksumLength]
		var expected strings.Builder
		for _, p := range createChecksum(hrp, payload) {
			expected.WriteByte(charset[p])
		}
		return "", nil, ErrInvalidChecksum{
			Expected: expected.String(),
			Actual:   lowered[len(lowered)-checksumLength:],
		}
	}
	return bech[:pos], data[:len(data)-checksumLength], nil
}
