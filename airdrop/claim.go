package airdrop

import (
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

// ClaimRecord tracks the cumulative amount one claimee has withdrawn
// for one token in one campaign. Records survive campaign shutdown so
// payout history stays auditable.
type ClaimRecord struct {
	ID            uuid.UUID       `json:"-" db:"id"`
	CampaignID    string          `json:"campaignId" db:"campaign_id"`
	TokenAddress  string          `json:"token" db:"token_address"`
	Claimee       string          `json:"claimee" db:"claimee"`
	ClaimKey      string          `json:"claimKey" db:"claim_key"`
	AmountClaimed decimal.Decimal `json:"amountClaimed" db:"amount_claimed"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// ClaimRequest carries one claim call: the allocation totals the root
// committed to for the claimee, the inclusion proof, and the account
// the owed difference should be paid to.
type ClaimRequest struct {
	CampaignID  string
	Claimee     string
	Recipient   string
	Allocations []TokenAmount
	Proof       []string
}

// EncodeLeaf renders the canonical leaf preimage a root commits to for
// one claimee: the claimee address followed by each (token address,
// 32 byte big endian amount) pair in the order given. Trees must be
// built and claims submitted with the same token order or the leaf
// hash will not match.
func EncodeLeaf(claimee string, allocations []TokenAmount) ([]byte, error) {
	user, err := hexBytes(claimee)
	if err != nil {
		return nil, err
	}
	leaf := make([]byte, 0, len(user)+len(allocations)*52)
	leaf = append(leaf, user...)
	for _, allocation := range allocations {
		addr, err := hexBytes(allocation.Token)
		if err != nil {
			return nil, err
		}
		leaf = append(leaf, addr...)
		leaf = append(leaf, encodeAmount(allocation.Amount)...)
	}
	return leaf, nil
}
