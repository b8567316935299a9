package inputs

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/brave-intl/airdrop-go/libs/validators"
)

var (
	// ErrHashDecodeEmpty - the hash was empty and should not be
	ErrHashDecodeEmpty = errors.New("failed to decode hash: hash cannot be empty")
	// ErrHashDecodeInvalid - the hash is not a 0x prefixed 32 byte hex string
	ErrHashDecodeInvalid = errors.New("failed to decode hash: hash is not a 32 byte hex string")
)

// Hash - a 0x prefixed 32 byte hex string, the form campaign ids,
// merkle roots and derived ledger keys take on the wire
type Hash struct {
	raw   string
	bytes []byte
}

// String - return the normalized 0x prefixed hex representation
func (h *Hash) String() string {
	return h.raw
}

// Bytes - return the decoded 32 bytes
func (h *Hash) Bytes() []byte {
	out := make([]byte, len(h.bytes))
	copy(out, h.bytes)
	return out
}

// IsZero - true when every byte is zero
func (h *Hash) IsZero() bool {
	for _, b := range h.bytes {
		if b != 0 {
			return false
		}
	}
	return true
}

// Validate - implement Validatable
func (h *Hash) Validate(ctx context.Context) error {
	return nil
}

// Decode - implement Decodable, normalizing to lowercase hex
func (h *Hash) Decode(ctx context.Context, input []byte) error {
	if len(input) == 0 {
		return ErrHashDecodeEmpty
	}
	raw := strings.ToLower(string(input))
	if !validators.IsHexHash(raw) {
		return ErrHashDecodeInvalid
	}
	b, err := hex.DecodeString(raw[2:])
	if err != nil {
		return ErrHashDecodeInvalid
	}
	h.raw = raw
	h.bytes = b
	return nil
}

// NewHash - decode and validate a hash from its string form
func NewHash(ctx context.Context, input string) (*Hash, error) {
	var h Hash
	if err := DecodeAndValidateString(ctx, &h, input); err != nil {
		return nil, err
	}
	return &h, nil
}
