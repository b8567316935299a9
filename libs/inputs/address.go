package inputs

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/brave-intl/airdrop-go/libs/validators"
)

var (
	// ErrAddressDecodeEmpty - the address was empty and should not be
	ErrAddressDecodeEmpty = errors.New("failed to decode address: address cannot be empty")
	// ErrAddressDecodeInvalid - the address is not a 20 byte hex string
	ErrAddressDecodeInvalid = errors.New("failed to decode address: address is not an ethereum address")
	// ErrAddressZero - the address is the zero address
	ErrAddressZero = errors.New("address cannot be the zero address")
)

// Address - an ethereum style address, normalized to its EIP55
// checksummed form on decode
type Address struct {
	checksummed string
	bytes       []byte
}

// String - return the EIP55 checksummed representation
func (a *Address) String() string {
	return a.checksummed
}

// Bytes - return the decoded 20 bytes
func (a *Address) Bytes() []byte {
	out := make([]byte, len(a.bytes))
	copy(out, a.bytes)
	return out
}

// Lower - return the lowercase hex representation, the canonical
// storage form
func (a *Address) Lower() string {
	return "0x" + hex.EncodeToString(a.bytes)
}

// IsZero - true when the address is the zero address
func (a *Address) IsZero() bool {
	return validators.IsZeroETHAddress(a.checksummed)
}

// Validate - implement Validatable, rejecting the zero address
func (a *Address) Validate(ctx context.Context) error {
	if a.IsZero() {
		return ErrAddressZero
	}
	return nil
}

// Decode - implement Decodable
func (a *Address) Decode(ctx context.Context, input []byte) error {
	if len(input) == 0 {
		return ErrAddressDecodeEmpty
	}
	raw := string(input)
	if !validators.IsETHAddressNoChecksum(raw) {
		return ErrAddressDecodeInvalid
	}
	b, err := hex.DecodeString(strings.ToLower(raw)[2:])
	if err != nil {
		return ErrAddressDecodeInvalid
	}
	a.checksummed = validators.ToChecksumETHAddress(raw)
	a.bytes = b
	return nil
}

// NewAddress - decode and validate an address from its string form
func NewAddress(ctx context.Context, input string) (*Address, error) {
	var a Address
	if err := DecodeAndValidateString(ctx, &a, input); err != nil {
		return nil, err
	}
	return &a, nil
}
