package bech32

import (
	"strings"

	"github.com/pkg/errors"
)

// VariantBech32 is the original bech32 checksum variant, the only one this
// package implements. An empty variant string is treated as its alias.
const VariantBech32 = "bech32"

func checkVariant(variant string) error {
	switch variant {
	case "", VariantBech32:
		return nil
	default:
		// "bech32m" and "nochecksum" fall through here on purpose:
		// rejecting them beats silently producing a bech32 checksum.
		return ErrUnsupportedVariant(variant)
	}
}

// EncodeBytes converts the given payload bytes into 5-bit groups and encodes
// them together with the hrp into a checksummed bech32 string. The output
// case follows the hrp case.
func EncodeBytes(hrp string, payload []byte, variant string) (string, error) {
	if err := checkVariant(variant); err != nil {
		return "", err
	}
	converted, err := ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "convert bits")
	}
	encoded, err := Encode(hrp, converted)
	if err != nil {
		return "", errors.Wrap(err, "bech32 encode")
	}
	return encoded, nil
}

// EncodeBytesLower is EncodeBytes with the hrp canonicalized to lowercase,
// so the result is always a lowercase string.
func EncodeBytesLower(hrp string, payload []byte, variant string) (string, error) {
	return EncodeBytes(strings.ToLower(hrp), payload, variant)
}

// DecodeBytes decodes a checksummed bech32 string into the hrp, in its
// original case, and the payload bytes. The trailing padding bits of the
// data part must be zero.
func DecodeBytes(bech string) (string, []byte, error) {
	hrp, data, err := Decode(bech)
	if err != nil {
		return "", nil, errors.Wrap(err, "bech32 decode")
	}
	payload, err := ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(err, "convert bits")
	}
	return hrp, payload, nil
}
