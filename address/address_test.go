package address

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

type item struct {
	address string
	version byte
	program string
}

var validAddress = []item{
	{"BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4",
		0, "751e76e8199196d454941c45d1b3a323f1433bd6"},
	{"tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7",
		0, "1863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262"},
	{"bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3zarvary0c5xw7k7grplx",
		1, "751e76e8199196d454941c45d1b3a323f1433bd6751e76e8199196d454941c45d1b3a323f1433bd6"},
	{"BC1SW50QA3JX3S",
		16, "751e"},
	{"bc1zw508d6qejxtdg4y5r3zarvaryvg6kdaj",
		2, "751e76e8199196d454941c45d1b3a323"},
	{"tb1qqqqqp399et2xygdj5xreqhjjvcmzhxw4aywxecjdzew6hylgvsesrxh6hy",
		0, "000000c4a5cad46221b2a187905e5266362b99d5e91c6ce24d165dab93e86433"},
}

var invalidAddress = []string{
	"tc1qw508d6qejxtdg4y5r3zarvary0c5xw7kg3g4ty",
	"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t5",
	"BC13W508D6QEJXTDG4Y5R3ZARVARY0C5XW7KN40WF2",
	"bc1rw5uspcuh",
	"bc10w508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3zarvary0c5xw7kw5rljs90",
	"BC1QR508D6QEJXTDG4Y5R3ZARVARYV98GJ9P",
	"tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sL5k7",
	"tb1pw508d6qejxtdg4y5r3zarqfsj6c3",
	"tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3pjxtptv",
}

func TestValidSegWitAddress(t *testing.T) {
	for _, test := range validAddress {
		hrp := "bc"
		version, program, err := DecodeSegWit(hrp, test.address)
		if err != nil {
			hrp = "tb"
			version, program, err = DecodeSegWit(hrp, test.address)
		}
		if err != nil {
			t.Errorf("Valid address %v : FAIL / error %+v", test.address, err)
			continue
		}
		want, _ := hex.DecodeString(test.program)
		if version != test.version || !bytes.Equal(program, want) {
			t.Errorf("Valid address %v : FAIL / version %d program %x", test.address, version, program)
			continue
		}
		recreate, err := EncodeSegWit(hrp, version, program)
		if err != nil || recreate != strings.ToLower(test.address) {
			t.Errorf("Valid address %v : recreate FAIL / got %v, error %v", test.address, recreate, err)
		}
	}
}

func TestInvalidSegWitAddress(t *testing.T) {
	for _, test := range invalidAddress {
		_, _, bcErr := DecodeSegWit("bc", test)
		_, _, tbErr := DecodeSegWit("tb", test)
		if bcErr == nil || tbErr == nil {
			t.Errorf("Invalid address %v : FAIL", test)
		} else {
			t.Logf("Invalid address %v : ok / bc error : %v", test, bcErr)
		}
	}
}

func TestEncodeSegWitBounds(t *testing.T) {
	if _, err := EncodeSegWit("bc", 17, make([]byte, 20)); err != ErrUnsupportedWitnessVer {
		t.Errorf("version 17 : got %v", err)
	}
	if _, err := EncodeSegWit("bc", 1, make([]byte, 1)); err != ErrUnsupportedWitnessProgLen {
		t.Errorf("program 1 byte : got %v", err)
	}
	if _, err := EncodeSegWit("bc", 1, make([]byte, 41)); err != ErrUnsupportedWitnessProgLen {
		t.Errorf("program 41 bytes : got %v", err)
	}
	if _, err := EncodeSegWit("bc", 0, make([]byte, 26)); err != ErrUnsupportedWitnessProgLen {
		t.Errorf("version 0 program 26 bytes : got %v", err)
	}
	if _, err := EncodeSegWit("Bc", 0, make([]byte, 20)); err == nil {
		t.Errorf("mixed case hrp : expected error")
	}
}

func TestDecodeAddress(t *testing.T) {
	params := &Params{Name: "mainnet", Bech32HRPSegwit: "bc"}

	addr, err := DecodeAddress("BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4", params)
	if err != nil {
		t.Fatalf("decode p2wpkh: %v", err)
	}
	pkh, ok := addr.(*AddressWitnessPubKeyHash)
	if !ok {
		t.Fatalf("decode p2wpkh: got %T", addr)
	}
	if pkh.WitnessVersion() != 0 || !pkh.IsForNet(params) {
		t.Errorf("p2wpkh fields: version %d", pkh.WitnessVersion())
	}
	if pkh.EncodeAddress() != "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4" {
		t.Errorf("p2wpkh encode: got %v", pkh.EncodeAddress())
	}

	addr, err = DecodeAddress("tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7",
		&Params{Name: "testnet", Bech32HRPSegwit: "tb"})
	if err != nil {
		t.Fatalf("decode p2wsh: %v", err)
	}
	if _, ok := addr.(*AddressWitnessScriptHash); !ok {
		t.Fatalf("decode p2wsh: got %T", addr)
	}

	// Witness version 1 is not a known address type.
	if _, err = DecodeAddress("bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3zarvary0c5xw7k7grplx", params); err != ErrUnsupportedWitnessVer {
		t.Errorf("v1 address: got %v", err)
	}

	// Prefix of another network.
	if _, err = DecodeAddress("tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7", params); err != ErrUnknownAddressType {
		t.Errorf("foreign prefix: got %v", err)
	}
}

func TestNewWitnessAddresses(t *testing.T) {
	params := &Params{Name: "mainnet", Bech32HRPSegwit: "bc"}

	program, _ := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	pkh, err := NewAddressWitnessPubKeyHash(program, params)
	if err != nil {
		t.Fatalf("new p2wpkh: %v", err)
	}
	if pkh.String() != "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4" {
		t.Errorf("new p2wpkh: got %v", pkh.String())
	}
	if !bytes.Equal(pkh.ScriptAddress(), program) || !bytes.Equal(pkh.Hash160()[:], program) {
		t.Errorf("new p2wpkh: program mismatch")
	}
	if _, err := NewAddressWitnessPubKeyHash(program[:19], params); err == nil {
		t.Errorf("new p2wpkh short program: expected error")
	}

	script, _ := hex.DecodeString("1863143c14c5166804bd19203356da136c985678cd4d27a1b8c6329604903262")
	wsh, err := NewAddressWitnessScriptHash(script, &Params{Name: "testnet", Bech32HRPSegwit: "tb"})
	if err != nil {
		t.Fatalf("new p2wsh: %v", err)
	}
	if wsh.String() != "tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7" {
		t.Errorf("new p2wsh: got %v", wsh.String())
	}
	if wsh.IsForNet(params) {
		t.Errorf("new p2wsh: wrong network accepted")
	}
}
