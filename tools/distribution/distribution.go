// Package distribution builds the merkle tree for a campaign from a
// distribution report, a csv of cumulative per claimee token
// allocations. The resulting root is what an admin publishes and the
// per claimee proofs are what claimees submit with their claims.
package distribution

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/brave-intl/airdrop-go/airdrop"
	"github.com/brave-intl/airdrop-go/libs/merkle"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Row is one line of a distribution report: the cumulative allocation
// of one token for one claimee. A claimee's rows must be contiguous,
// their order fixes the token order the leaf commits to.
type Row struct {
	Claimee string          `csv:"claimee"`
	Token   string          `csv:"token"`
	Amount  decimal.Decimal `csv:"amount"`
}

// Entry is one claimee's assembled allocation list together with the
// inclusion proof for their leaf.
type Entry struct {
	Claimee     string                `json:"claimee"`
	Allocations []airdrop.TokenAmount `json:"allocations"`
	Proof       []string              `json:"proof"`
}

// Report is a fully built distribution: the root to publish and one
// entry per claimee, in report order.
type Report struct {
	MerkleRoot string  `json:"merkleRoot"`
	Entries    []Entry `json:"entries"`
}

// ReadRows reads a distribution report csv.
func ReadRows(reader io.Reader) ([]Row, error) {
	rows := []Row{}
	if err := gocsv.Unmarshal(reader, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Build assembles report rows into per claimee entries, builds the
// merkle tree over their leaf encodings and attaches each entry's
// proof. Addresses are normalized to lowercase, amounts must be whole
// and non negative, and a (claimee, token) pair may appear only once.
func Build(rows []Row) (*Report, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("distribution report is empty")
	}

	entries := []Entry{}
	index := map[string]int{}
	seen := map[string]bool{}
	for _, row := range rows {
		claimee := strings.ToLower(row.Claimee)
		token := strings.ToLower(row.Token)
		if row.Amount.IsNegative() || !row.Amount.Equal(row.Amount.Truncate(0)) {
			return nil, fmt.Errorf("allocation for %s of token %s is not a whole non negative amount", claimee, token)
		}
		pair := claimee + ":" + token
		if seen[pair] {
			return nil, fmt.Errorf("duplicate allocation for %s of token %s", claimee, token)
		}
		seen[pair] = true

		i, ok := index[claimee]
		if !ok {
			i = len(entries)
			index[claimee] = i
			entries = append(entries, Entry{Claimee: claimee})
		}
		entries[i].Allocations = append(entries[i].Allocations, airdrop.TokenAmount{
			Token:  token,
			Amount: row.Amount,
		})
	}

	leaves := make([][]byte, len(entries))
	for i, entry := range entries {
		leaf, err := airdrop.EncodeLeaf(entry.Claimee, entry.Allocations)
		if err != nil {
			return nil, fmt.Errorf("failed to encode leaf for %s: %w", entry.Claimee, err)
		}
		leaves[i] = leaf
	}

	tree, err := merkle.NewTree(leaves)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		proof, err := tree.Proof(i)
		if err != nil {
			return nil, err
		}
		nodes := make([]string, len(proof))
		for j, node := range proof {
			nodes[j] = "0x" + hex.EncodeToString(node)
		}
		entries[i].Proof = nodes
	}

	return &Report{
		MerkleRoot: "0x" + hex.EncodeToString(tree.Root()),
		Entries:    entries,
	}, nil
}

// VerifyEntry checks one claimee's entry of a built report against the
// report root, folding the proof exactly as the distributor will when
// the claim is submitted.
func VerifyEntry(report *Report, claimee string) error {
	claimee = strings.ToLower(claimee)

	var entry *Entry
	for i := range report.Entries {
		if report.Entries[i].Claimee == claimee {
			entry = &report.Entries[i]
			break
		}
	}
	if entry == nil {
		return fmt.Errorf("no entry for claimee %s", claimee)
	}

	leaf, err := airdrop.EncodeLeaf(entry.Claimee, entry.Allocations)
	if err != nil {
		return fmt.Errorf("failed to encode leaf for %s: %w", entry.Claimee, err)
	}

	root, err := decodeHex(report.MerkleRoot)
	if err != nil {
		return fmt.Errorf("malformed merkle root: %w", err)
	}

	proof := make([][]byte, len(entry.Proof))
	for i, node := range entry.Proof {
		proof[i], err = decodeHex(node)
		if err != nil {
			return fmt.Errorf("malformed proof node %d: %w", i, err)
		}
	}

	if !merkle.Verify(root, leaf, proof) {
		return fmt.Errorf("proof for %s does not verify against root %s", entry.Claimee, report.MerkleRoot)
	}
	return nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
