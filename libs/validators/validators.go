package validators

import (
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
	"github.com/brave-intl/airdrop-go/libs/merkle"
)

func init() {
	govalidator.TagMap["ethaddressnochecksum"] = govalidator.Validator(IsETHAddressNoChecksum)
	govalidator.TagMap["ethaddress"] = govalidator.Validator(IsETHAddress)
	govalidator.TagMap["hexhash"] = govalidator.Validator(IsHexHash)
}

const (
	ethAddress     string = "^0x[0-9a-fA-F]{40}$"
	hexHash        string = "^0x[0-9a-fA-F]{64}$"
	zeroETHAddress string = "0x0000000000000000000000000000000000000000"
)

var (
	rxETHAddress = regexp.MustCompile(ethAddress)
	rxHexHash    = regexp.MustCompile(hexHash)
)

// IsETHAddressNoChecksum returns true if the string str is a ethereum address
func IsETHAddressNoChecksum(str string) bool {
	return rxETHAddress.MatchString(str)
}

// IsETHAddress returns true if the string str is a ethereum address
func IsETHAddress(str string) bool {
	if !IsETHAddressNoChecksum(str) {
		return false
	}
	return ToChecksumETHAddress(str) == str
}

// IsZeroETHAddress returns true if the string str is the all zero ethereum address
func IsZeroETHAddress(str string) bool {
	return strings.EqualFold(str, zeroETHAddress)
}

// IsHexHash returns true if the string str is a 0x prefixed 32 byte hex string
func IsHexHash(str string) bool {
	return rxHexHash.MatchString(str)
}

// IsZeroHexHash returns true if the string str is a 32 byte hex string of zeroes
func IsZeroHexHash(str string) bool {
	if !IsHexHash(str) {
		return false
	}
	for _, c := range str[2:] {
		if c != '0' {
			return false
		}
	}
	return true
}

// ToChecksumETHAddress returns the address str with a checksum encoded in the capitalization per EIP55
func ToChecksumETHAddress(str string) string {
	lower := strings.Replace(strings.ToLower(str), "0x", "", 1)
	lowerBytes := []byte(lower)
	hash := merkle.Keccak256([]byte(lower))
	hashHex := make([]byte, hex.EncodedLen(len(hash)))
	hex.Encode(hashHex, hash)

	for i, v := range lowerBytes {
		x, err := strconv.ParseUint(string([]byte{hashHex[i]}), 16, 8)
		if err != nil {
			panic(err)
		}
		if x >= 8 {
			lowerBytes[i] = byte(unicode.ToUpper(rune(v)))
		}
	}
	return "0x" + string(lowerBytes)
}
