package airdrop

import "errors"

var (
	// ErrCampaignNotFound - the campaign has no published root, either
	// because it never existed or because it was shut down
	ErrCampaignNotFound = errors.New("campaign has no published merkle root")
	// ErrInvalidCampaign - the campaign id is malformed
	ErrInvalidCampaign = errors.New("invalid campaign id")
	// ErrInvalidMerkleRoot - a publish attempted with the zero root
	ErrInvalidMerkleRoot = errors.New("merkle root cannot be zero")
	// ErrInvalidTokenAmount - an allocation list is empty, carries a
	// non integral or negative amount, or tries to lower a total
	ErrInvalidTokenAmount = errors.New("invalid token amount")
	// ErrInvalidProof - the merkle proof does not connect the claim to
	// the campaign root
	ErrInvalidProof = errors.New("invalid merkle proof")
	// ErrAlreadyClaimed - every token in the claim has already been
	// paid out in full
	ErrAlreadyClaimed = errors.New("allocation has already been claimed in full")
	// ErrZeroAddress - a token, funder or recipient address is the
	// zero address
	ErrZeroAddress = errors.New("address cannot be the zero address")

	// errOverClaimed guards the books: paying a claim out would push a
	// token's claimed total past its allocated total
	errOverClaimed = errors.New("total claimed cannot exceed total allocated")
)
