// Package address implements witness address encoding on top of the bech32
// codec, following BIP 173.
package address

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/unionlabs/bech32"
)

var (
	// ErrUnknownAddressType describes an error where an address can not be
	// decoded as a known address type: its prefix does not match the segwit
	// prefix of the passed network.
	ErrUnknownAddressType = errors.New("unknown address type")

	// ErrUnsupportedWitnessVer describes an error where an address being
	// decoded or encoded has an unsupported witness version.
	ErrUnsupportedWitnessVer = errors.New("unsupported witness version")

	// ErrUnsupportedWitnessProgLen describes an error where an address
	// being decoded or encoded has an unsupported witness program length.
	ErrUnsupportedWitnessProgLen = errors.New("unsupported witness program length")
)

// Params store the address namespace config for a network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Bech32HRPSegwit is the human-readable part prefixed to the network's
	// segwit addresses.
	Bech32HRPSegwit string
}

// IsBech32SegwitPrefix returns whether the prefix is the known segwit address
// prefix for the passed network. This is used when decoding an address string
// into a specific address type.
func IsBech32SegwitPrefix(prefix string, params *Params) bool {
	prefix = strings.ToLower(prefix)
	return prefix == params.Bech32HRPSegwit+"1"
}

// Address is an interface type for any type of destination an output may
// spend to. Address is designed to be generic enough that other kinds of
// addresses may be added in the future without changing the decoding and
// encoding API.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.
	String() string

	// EncodeAddress returns the string encoding of the payment address
	// associated with the Address value.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used when
	// inserting the address into a txout's script.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed network.
	IsForNet(*Params) bool
}

// EncodeSegWit creates a bech32 encoded address string representation from
// the witness version and witness program. The witness version must be
// 0..16 and the program 2..40 bytes; version 0 programs must be exactly 20
// or 32 bytes.
func EncodeSegWit(hrp string, witnessVersion byte, witnessProgram []byte) (string, error) {
	if witnessVersion > 16 {
		return "", ErrUnsupportedWitnessVer
	}
	if len(witnessProgram) < 2 || len(witnessProgram) > 40 {
		return "", ErrUnsupportedWitnessProgLen
	}
	if witnessVersion == 0 && len(witnessProgram) != 20 && len(witnessProgram) != 32 {
		return "", ErrUnsupportedWitnessProgLen
	}

	// Group the program bytes into 5 bit groups, as this is what is used
	// to encode each character in the address string.
	converted, err := bech32.ConvertBits(witnessProgram, 8, 5, true)
	if err != nil {
		return "", err
	}

	// Concatenate the witness version and program, and encode the
	// resulting bytes using bech32 encoding.
	combined := make([]byte, len(converted)+1)
	combined[0] = witnessVersion
	copy(combined[1:], converted)
	bech, err := bech32.Encode(hrp, combined)
	if err != nil {
		return "", err
	}

	// Check validity by decoding the created address.
	version, program, err := DecodeSegWit(hrp, bech)
	if err != nil {
		return "", fmt.Errorf("invalid segwit address: %v", err)
	}
	if version != witnessVersion || !bytes.Equal(program, witnessProgram) {
		return "", fmt.Errorf("invalid segwit address")
	}

	return bech, nil
}

// DecodeSegWit parses a bech32 encoded segwit address string for the given
// hrp and returns the witness version and witness program byte
// representation.
func DecodeSegWit(hrp, addr string) (byte, []byte, error) {
	decHRP, data, err := bech32.Decode(addr)
	if err != nil {
		return 0, nil, err
	}
	if strings.ToLower(decHRP) != strings.ToLower(hrp) {
		return 0, nil, fmt.Errorf("invalid human-readable part: %s != %s", hrp, decHRP)
	}

	// The first group of the decoded address is the witness version, it
	// must exist.
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("no witness version")
	}
	version := data[0]
	if version > 16 {
		return 0, nil, ErrUnsupportedWitnessVer
	}

	// The remaining groups hold 5 bits each. In order to restore the
	// original witness program bytes, regroup them into 8 bit words.
	regrouped, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}

	// The regrouped data must be between 2 and 40 bytes.
	if len(regrouped) < 2 || len(regrouped) > 40 {
		return 0, nil, ErrUnsupportedWitnessProgLen
	}

	// For witness version 0, the address MUST be exactly 20 or 32 bytes.
	if version == 0 && len(regrouped) != 20 && len(regrouped) != 32 {
		return 0, nil, ErrUnsupportedWitnessProgLen
	}

	return version, regrouped, nil
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if addr is a valid encoding for a known address type on the passed
// network.
func DecodeAddress(addr string, params *Params) (Address, error) {
	// Bech32 encoded segwit addresses start with a human-readable part
	// followed by '1'. If the address string has a prefix that matches the
	// passed network, try to decode it as a segwit address.
	oneIndex := strings.LastIndexByte(addr, '1')
	if oneIndex > 1 {
		prefix := addr[:oneIndex+1]
		if IsBech32SegwitPrefix(prefix, params) {
			hrp := prefix[:len(prefix)-1]
			witnessVer, witnessProg, err := DecodeSegWit(hrp, addr)
			if err != nil {
				return nil, err
			}

			// Only P2WPKH and P2WSH are supported, which is witness
			// version 0.
			if witnessVer != 0 {
				return nil, ErrUnsupportedWitnessVer
			}

			switch len(witnessProg) {
			case 20:
				return newAddressWitnessPubKeyHash(hrp, witnessProg)
			case 32:
				return newAddressWitnessScriptHash(hrp, witnessProg)
			default:
				return nil, ErrUnsupportedWitnessProgLen
			}
		}
	}
	return nil, ErrUnknownAddressType
}

// AddressWitnessPubKeyHash is an Address for a pay-to-witness-pubkey-hash
// (P2WPKH) output. See BIP 173 for further details regarding native
// segregated witness address encoding:
// https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
type AddressWitnessPubKeyHash struct {
	hrp            string
	witnessVersion byte
	witnessProgram [20]byte
}

// NewAddressWitnessPubKeyHash returns a new AddressWitnessPubKeyHash.
func NewAddressWitnessPubKeyHash(witnessProg []byte, params *Params) (*AddressWitnessPubKeyHash, error) {
	return newAddressWitnessPubKeyHash(params.Bech32HRPSegwit, witnessProg)
}

// newAddressWitnessPubKeyHash is an internal helper function to create an
// AddressWitnessPubKeyHash with a known human-readable part, rather than
// looking it up through its parameters.
func newAddressWitnessPubKeyHash(hrp string, witnessProg []byte) (*AddressWitnessPubKeyHash, error) {
	// Check for valid program length for witness version 0, which is 20
	// for P2WPKH.
	if len(witnessProg) != 20 {
		return nil, errors.New("witness program must be 20 bytes for p2wpkh")
	}

	addr := &AddressWitnessPubKeyHash{
		hrp:            strings.ToLower(hrp),
		witnessVersion: 0x00,
	}
	copy(addr.witnessProgram[:], witnessProg)

	return addr, nil
}

// EncodeAddress returns the bech32 string encoding of an
// AddressWitnessPubKeyHash.
// Part of the Address interface.
func (a *AddressWitnessPubKeyHash) EncodeAddress() string {
	str, err := EncodeSegWit(a.hrp, a.witnessVersion, a.witnessProgram[:])
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the witness program for this address.
// Part of the Address interface.
func (a *AddressWitnessPubKeyHash) ScriptAddress() []byte {
	return a.witnessProgram[:]
}

// IsForNet returns whether or not the AddressWitnessPubKeyHash is associated
// with the passed network.
// Part of the Address interface.
func (a *AddressWitnessPubKeyHash) IsForNet(params *Params) bool {
	return a.hrp == params.Bech32HRPSegwit
}

// String returns a human-readable string for the AddressWitnessPubKeyHash.
// This is equivalent to calling EncodeAddress, but is provided so the type
// can be used as a fmt.Stringer.
// Part of the Address interface.
func (a *AddressWitnessPubKeyHash) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the bech32 encoded
// AddressWitnessPubKeyHash.
func (a *AddressWitnessPubKeyHash) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the AddressWitnessPubKeyHash.
func (a *AddressWitnessPubKeyHash) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns the witness program of the AddressWitnessPubKeyHash.
func (a *AddressWitnessPubKeyHash) WitnessProgram() []byte {
	return a.witnessProgram[:]
}

// Hash160 returns the witness program of the AddressWitnessPubKeyHash as a
// byte array.
func (a *AddressWitnessPubKeyHash) Hash160() *[20]byte {
	return &a.witnessProgram
}

// AddressWitnessScriptHash is an Address for a pay-to-witness-script-hash
// (P2WSH) output. See BIP 173 for further details regarding native
// segregated witness address encoding:
// https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
type AddressWitnessScriptHash struct {
	hrp            string
	witnessVersion byte
	witnessProgram [32]byte
}

// NewAddressWitnessScriptHash returns a new AddressWitnessScriptHash.
func NewAddressWitnessScriptHash(witnessProg []byte, params *Params) (*AddressWitnessScriptHash, error) {
	return newAddressWitnessScriptHash(params.Bech32HRPSegwit, witnessProg)
}

// newAddressWitnessScriptHash is an internal helper function to create an
// AddressWitnessScriptHash with a known human-readable part, rather than
// looking it up through its parameters.
func newAddressWitnessScriptHash(hrp string, witnessProg []byte) (*AddressWitnessScriptHash, error) {
	// Check for valid program length for witness version 0, which is 32
	// for P2WSH.
	if len(witnessProg) != 32 {
		return nil, errors.New("witness program must be 32 bytes for p2wsh")
	}

	addr := &AddressWitnessScriptHash{
		hrp:            strings.ToLower(hrp),
		witnessVersion: 0x00,
	}
	copy(addr.witnessProgram[:], witnessProg)

	return addr, nil
}

// EncodeAddress returns the bech32 string encoding of an
// AddressWitnessScriptHash.
// Part of the Address interface.
func (a *AddressWitnessScriptHash) EncodeAddress() string {
	str, err := EncodeSegWit(a.hrp, a.witnessVersion, a.witnessProgram[:])
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the witness program for this address.
// Part of the Address interface.
func (a *AddressWitnessScriptHash) ScriptAddress() []byte {
	return a.witnessProgram[:]
}

// IsForNet returns whether or not the AddressWitnessScriptHash is associated
// with the passed network.
// Part of the Address interface.
func (a *AddressWitnessScriptHash) IsForNet(params *Params) bool {
	return a.hrp == params.Bech32HRPSegwit
}

// String returns a human-readable string for the AddressWitnessScriptHash.
// This is equivalent to calling EncodeAddress, but is provided so the type
// can be used as a fmt.Stringer.
// Part of the Address interface.
func (a *AddressWitnessScriptHash) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the bech32 encoded
// AddressWitnessScriptHash.
func (a *AddressWitnessScriptHash) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the AddressWitnessScriptHash.
func (a *AddressWitnessScriptHash) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns the witness program of the AddressWitnessScriptHash.
func (a *AddressWitnessScriptHash) WitnessProgram() []byte {
	return a.witnessProgram[:]
}

// Sha256 returns the witness program of the AddressWitnessScriptHash as a
// byte array.
func (a *AddressWitnessScriptHash) Sha256() *[32]byte {
	return &a.witnessProgram
}
