package bech32

// ConvertBits converts a byte slice where each byte is encoding fromBits bits
// to a byte slice where each byte is encoding toBits bits. Bits are
// accumulated MSB-first. When pad is true, leftover bits are left-shifted
// into one final group; when pad is false, a leftover bit count of fromBits
// or more, or leftover bits that are not all zero, is an error. This is the
// byte<->5-bit bridge used by both encoding (8->5, pad) and decoding (5->8,
// no pad).
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}

	// Plain accumulator state machine: acc holds the pending bits, bits
	// counts how many of them are valid.
	acc := 0
	bits := uint8(0)
	maxv := byte(1<<toBits - 1)
	ret := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	for _, value := range data {
		if value>>fromBits != 0 {
			return nil, ErrInvalidDataByte(value)
		}
		acc = acc<<fromBits | int(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte(acc>>bits)&maxv)
		}
	}
	if pad {
		if bits > 0 {
			ret = append(ret, byte(acc<<(toBits-bits))&maxv)
		}
	} else if bits >= fromBits {
		return nil, ErrInvalidIncompleteGroup{}
	} else if byte(acc<<(toBits-bits))&maxv != 0 {
		return nil, ErrInvalidPadding{}
	}
	return ret, nil
}
