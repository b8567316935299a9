// Package airdrop implements incremental merkle-drop campaigns: admins
// publish a merkle root committing to cumulative per-user token
// allocations, users claim the difference between their committed
// allocation and what they have already withdrawn, and admins can shut
// a campaign down and sweep whatever was never claimed.
package airdrop

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/brave-intl/airdrop-go/libs/merkle"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

// Campaign is a distribution round, keyed by a 32 byte id chosen by the
// admin. A row exists exactly while the campaign has a published root
// and has not been shut down.
type Campaign struct {
	ID         string    `json:"campaignId" db:"id"`
	MerkleRoot string    `json:"merkleRoot" db:"merkle_root"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// CampaignToken holds the running totals for one token within one
// campaign. TotalAllocated and TotalClaimed only ever grow; shutdown
// deletes the row outright.
type CampaignToken struct {
	ID             uuid.UUID       `json:"-" db:"id"`
	CampaignID     string          `json:"campaignId" db:"campaign_id"`
	TokenAddress   string          `json:"token" db:"token_address"`
	AirdropKey     string          `json:"airdropKey" db:"airdrop_key"`
	TotalAllocated decimal.Decimal `json:"totalAllocated" db:"total_allocated"`
	TotalClaimed   decimal.Decimal `json:"totalClaimed" db:"total_claimed"`
	CreatedAt      time.Time       `json:"-" db:"created_at"`
	UpdatedAt      time.Time       `json:"-" db:"updated_at"`
}

// Unclaimed returns the portion of the allocation not yet paid out.
func (ct *CampaignToken) Unclaimed() decimal.Decimal {
	return ct.TotalAllocated.Sub(ct.TotalClaimed)
}

// TokenAmount pairs a token contract address with an amount in the
// token's base unit. It is the element type for allocation lists,
// refill and payout results, and sweep results, which are always
// aligned index for index with the request that produced them.
type TokenAmount struct {
	Token  string          `json:"token"`
	Amount decimal.Decimal `json:"amount"`
}

// CampaignUpdate carries one updateCampaign call: the new root, the
// cumulative per token allocation totals, and the funder account the
// refill deltas are pulled from.
type CampaignUpdate struct {
	CampaignID  string
	MerkleRoot  string
	Funder      string
	Allocations []TokenAmount
}

// hexBytes decodes a 0x prefixed hex string, upper or lower case.
func hexBytes(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
}

// isZeroHex reports whether a hex string is empty or carries no
// nonzero digit, covering both the zero address and the zero root.
func isZeroHex(s string) bool {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if len(s) == 0 {
		return true
	}
	for _, c := range s {
		if c != '0' {
			return false
		}
	}
	return true
}

// encodeAmount renders an integral token amount as a 32 byte big
// endian word, the fixed width the merkle leaves commit to.
func encodeAmount(amount decimal.Decimal) []byte {
	buf := make([]byte, 32)
	amount.BigInt().FillBytes(buf)
	return buf
}

// AirdropKey derives the stable lookup key for a campaign's totals for
// one token, keccak-256 over the campaign id concatenated with the
// token address.
func AirdropKey(campaignID, token string) (string, error) {
	campaign, err := hexBytes(campaignID)
	if err != nil {
		return "", err
	}
	addr, err := hexBytes(token)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(merkle.Keccak256(campaign, addr)), nil
}

// ClaimKey derives the stable lookup key for a claimee's running claim
// total for one token in one campaign, keccak-256 over the campaign id,
// token address and claimee address concatenated.
func ClaimKey(campaignID, token, claimee string) (string, error) {
	campaign, err := hexBytes(campaignID)
	if err != nil {
		return "", err
	}
	addr, err := hexBytes(token)
	if err != nil {
		return "", err
	}
	user, err := hexBytes(claimee)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(merkle.Keccak256(campaign, addr, user)), nil
}
